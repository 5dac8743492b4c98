package employee

import (
	"cloud.google.com/go/civil"
	"github.com/deppfellow/hr-validator/internal/validation"
)

// rule is a cross-field check run after every field has been read and
// range-checked. It is skipped when field or any of reads already failed;
// failed also holds violations from earlier rules.
type rule struct {
	field string
	reads []string
	check func(info *EmploymentInformation, today civil.Date, failed validation.FieldErrors) *validation.FieldError
}

// employmentRules run in this order. Later rules see earlier violations.
var employmentRules = []rule{
	{
		field: "contractStartDate",
		check: checkContractStartLeadTime,
	},
	{
		field: "employmentTerms",
		check: checkEmploymentTerms,
	},
	{
		field: "contractEndDate",
		reads: []string{"employmentTerms"},
		check: checkDefiniteContractEnd,
	},
	{
		field: "noticePeriodAfterProbation",
		reads: []string{"noticePeriodDuringProbation"},
		check: checkNoticePeriods,
	},
}

func checkContractStartLeadTime(info *EmploymentInformation, today civil.Date, _ validation.FieldErrors) *validation.FieldError {
	if info.ContractStartDate.Before(today.AddDays(MinimumStartLeadDays)) {
		return validation.NewBusinessRuleError("contractStartDate", MsgContractStartLeadTime)
	}
	return nil
}

func checkEmploymentTerms(info *EmploymentInformation, _ civil.Date, _ validation.FieldErrors) *validation.FieldError {
	if !info.EmploymentTerms.IsValid() {
		return validation.NewBusinessRuleError("employmentTerms", MsgEmploymentTerms)
	}
	return nil
}

// checkDefiniteContractEnd compares against the start date only when the
// start date itself was accepted.
func checkDefiniteContractEnd(info *EmploymentInformation, _ civil.Date, failed validation.FieldErrors) *validation.FieldError {
	if info.EmploymentTerms != TermsDefinite {
		return nil
	}

	if info.ContractEndDate == nil {
		return validation.NewBusinessRuleError("contractEndDate", MsgContractEndDateRequired)
	}

	if failed.Has("contractStartDate") {
		return nil
	}

	if !info.ContractEndDate.After(info.ContractStartDate) {
		return validation.NewBusinessRuleError("contractEndDate", MsgContractEndAfterStart)
	}
	return nil
}

func checkNoticePeriods(info *EmploymentInformation, _ civil.Date, _ validation.FieldErrors) *validation.FieldError {
	if info.NoticePeriodAfterProbation < info.NoticePeriodDuringProbation {
		return validation.NewBusinessRuleError("noticePeriodAfterProbation", MsgNoticeAfterBelowDuring)
	}
	return nil
}
