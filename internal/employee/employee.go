// Package employee holds the employee and employment-contract records and
// the rules a payload must satisfy to become one.
package employee

import (
	"cloud.google.com/go/civil"
)

// EmploymentTerms is the contract type.
type EmploymentTerms string

const (
	TermsDefinite   EmploymentTerms = "Definite"
	TermsIndefinite EmploymentTerms = "Indefinite"
)

// IsValid reports whether t is one of the known contract types.
func (t EmploymentTerms) IsValid() bool {
	return t == TermsDefinite || t == TermsIndefinite
}

// Country identifies a country by display name and ISO 3166-1 alpha-2 code.
type Country struct {
	Name string `json:"name"`
	ISO2 string `json:"iso2"`
}

// EmployeeGeneralInfo is the personal part of an employee record.
type EmployeeGeneralInfo struct {
	FirstName            string  `json:"firstName" validate:"required"`
	MiddleName           *string `json:"middleName,omitempty"`
	LastName             string  `json:"lastName" validate:"required"`
	Email                string  `json:"email" validate:"required,email"`
	CountryOfCitizenship Country `json:"countryOfCitizenship"`
	CountryOfWork        Country `json:"countryOfWork"`
	JobTitle             string  `json:"jobTitle" validate:"required"`
	ScopeOfWork          string  `json:"scopeOfWork"`
}

// EmploymentInformation is the contract part of an employee record.
// Periods and time off are in days.
type EmploymentInformation struct {
	VisaCompliance              bool            `json:"visaCompliance"`
	WorkHoursPerWeek            int             `json:"workHoursPerWeek" validate:"gte=40,lte=60"`
	ContractStartDate           civil.Date      `json:"contractStartDate"`
	EmploymentTerms             EmploymentTerms `json:"employmentTerms"`
	ContractEndDate             *civil.Date     `json:"contractEndDate,omitempty"`
	TimeOff                     int             `json:"timeOff" validate:"gte=9"`
	ProbationPeriod             int             `json:"probationPeriod" validate:"lte=30"`
	NoticePeriodDuringProbation int             `json:"noticePeriodDuringProbation" validate:"gte=0"`
	NoticePeriodAfterProbation  int             `json:"noticePeriodAfterProbation" validate:"gte=0"`
	Compensation                float64         `json:"compensation"`
}
