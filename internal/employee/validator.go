package employee

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/deppfellow/hr-validator/internal/validation"
	"github.com/go-playground/validator/v10"
)

// Validator turns raw payloads into employee records.
//
// It holds no per-call state and is safe for concurrent use. The only input
// besides the payload is the clock, read once per call to decide "today".
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces time.Now. Today is the calendar date of the returned
// time in its own location.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New builds a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validation.NewValidate(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Today returns the date cross-field rules are evaluated against.
func (v *Validator) Today() civil.Date {
	return civil.DateOf(v.now())
}

var generalInfoFields = []string{
	"firstName", "middleName", "lastName", "email",
	"countryOfCitizenship", "countryOfWork", "jobTitle", "scopeOfWork",
}

// ValidateEmployeeGeneralInfo checks presence, types, non-empty names, the
// email format and both nested countries. On failure the error is a
// validation.FieldErrors holding every problem found.
func (v *Validator) ValidateEmployeeGeneralInfo(payload validation.Payload) (*EmployeeGeneralInfo, error) {
	r := validation.NewReader(payload)

	info := &EmployeeGeneralInfo{
		FirstName:            r.String("firstName"),
		MiddleName:           r.OptionalString("middleName"),
		LastName:             r.String("lastName"),
		Email:                r.String("email"),
		CountryOfCitizenship: readCountry(r, "countryOfCitizenship"),
		CountryOfWork:        readCountry(r, "countryOfWork"),
		JobTitle:             r.String("jobTitle"),
		ScopeOfWork:          r.String("scopeOfWork"),
	}

	fieldErrors, err := v.checkTags(info, r.Errors(), nil)
	if err != nil {
		return nil, err
	}
	sortByField(fieldErrors, generalInfoFields)

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return info, nil
}

func readCountry(r *validation.Reader, key string) Country {
	obj := r.Object(key)
	if obj == nil {
		return Country{}
	}
	return Country{
		Name: obj.String("name"),
		ISO2: obj.String("iso2"),
	}
}

var employmentFields = []string{
	"visaCompliance", "workHoursPerWeek", "contractStartDate", "employmentTerms",
	"contractEndDate", "timeOff", "probationPeriod", "noticePeriodDuringProbation",
	"noticePeriodAfterProbation", "compensation",
}

// ValidateEmploymentInformation checks field types and ranges first, then
// the cross-field rules in employmentRules order. A rule is skipped when a
// field it reads already failed. On failure the error is a
// validation.FieldErrors: field errors in declaration order followed by rule
// violations in rule order.
func (v *Validator) ValidateEmploymentInformation(payload validation.Payload) (*EmploymentInformation, error) {
	r := validation.NewReader(payload)

	info := &EmploymentInformation{
		VisaCompliance:              r.Bool("visaCompliance"),
		WorkHoursPerWeek:            r.Int("workHoursPerWeek"),
		ContractStartDate:           r.Date("contractStartDate"),
		EmploymentTerms:             EmploymentTerms(r.String("employmentTerms")),
		ContractEndDate:             r.OptionalDate("contractEndDate"),
		TimeOff:                     r.Int("timeOff"),
		ProbationPeriod:             r.Int("probationPeriod"),
		NoticePeriodDuringProbation: r.Int("noticePeriodDuringProbation"),
		NoticePeriodAfterProbation:  r.Int("noticePeriodAfterProbation"),
		Compensation:                r.Float("compensation"),
	}

	fieldErrors, err := v.checkTags(info, r.Errors(), rangeMessages)
	if err != nil {
		return nil, err
	}
	sortByField(fieldErrors, employmentFields)

	today := v.Today()
	for _, rule := range employmentRules {
		if fieldErrors.Has(rule.field) || anyFailed(fieldErrors, rule.reads) {
			continue
		}
		if fe := rule.check(info, today, fieldErrors); fe != nil {
			fieldErrors = append(fieldErrors, fe)
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return info, nil
}

// checkTags runs the struct tags and merges their failures into structural
// ones. A field that could not be read is already reported, so its tag
// failures (caused by the zero value) are dropped.
func (v *Validator) checkTags(record any, structural validation.FieldErrors, messages map[string]string) (validation.FieldErrors, error) {
	tagErrors, err := validation.Translate(v.validate.Struct(record), messages)
	if err != nil {
		return nil, fmt.Errorf("failed to run struct validation: %w", err)
	}

	out := append(validation.FieldErrors{}, structural...)
	for _, fe := range tagErrors {
		if structural.Has(fe.Field) {
			continue
		}
		out = append(out, fe)
	}
	return out, nil
}

func anyFailed(fieldErrors validation.FieldErrors, fields []string) bool {
	for _, f := range fields {
		if fieldErrors.Has(f) {
			return true
		}
	}
	return false
}

// sortByField orders errors by the declaration order of their top-level field.
func sortByField(fieldErrors validation.FieldErrors, order []string) {
	index := make(map[string]int, len(order))
	for i, f := range order {
		index[f] = i
	}
	pos := func(field string) int {
		top, _, _ := strings.Cut(field, ".")
		if i, ok := index[top]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(fieldErrors, func(i, j int) bool {
		return pos(fieldErrors[i].Field) < pos(fieldErrors[j].Field)
	})
}
