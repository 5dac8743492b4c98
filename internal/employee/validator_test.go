package employee

import (
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/deppfellow/hr-validator/internal/validation"
)

// fixedNow is 2026-10-17; the earliest acceptable start date is 2026-10-22.
var fixedNow = time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func validEmploymentPayload() validation.Payload {
	return validation.Payload{
		"visaCompliance":              true,
		"workHoursPerWeek":            float64(40),
		"contractStartDate":           "2026-10-22",
		"employmentTerms":             "Definite",
		"contractEndDate":             "2027-10-22",
		"timeOff":                     float64(20),
		"probationPeriod":             float64(30),
		"noticePeriodDuringProbation": float64(7),
		"noticePeriodAfterProbation":  float64(30),
		"compensation":                5500.5,
	}
}

func validGeneralInfoPayload() validation.Payload {
	return validation.Payload{
		"firstName":            "Ada",
		"middleName":           "King",
		"lastName":             "Lovelace",
		"email":                "a@b.com",
		"countryOfCitizenship": map[string]any{"name": "United Kingdom", "iso2": "GB"},
		"countryOfWork":        map[string]any{"name": "Germany", "iso2": "DE"},
		"jobTitle":             "Engineer",
		"scopeOfWork":          "Analytical engines",
	}
}

func asFieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	var fieldErrors validation.FieldErrors
	if !errors.As(err, &fieldErrors) {
		t.Fatalf("expected validation.FieldErrors, got %T: %v", err, err)
	}
	return fieldErrors
}

func findField(fieldErrors validation.FieldErrors, field string) *validation.FieldError {
	for _, fe := range fieldErrors {
		if fe.Field == field {
			return fe
		}
	}
	return nil
}

func TestValidateEmploymentInformationValid(t *testing.T) {
	info, err := newTestValidator().ValidateEmploymentInformation(validEmploymentPayload())
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	end := civil.Date{Year: 2027, Month: time.October, Day: 22}
	want := &EmploymentInformation{
		VisaCompliance:              true,
		WorkHoursPerWeek:            40,
		ContractStartDate:           civil.Date{Year: 2026, Month: time.October, Day: 22},
		EmploymentTerms:             TermsDefinite,
		ContractEndDate:             &end,
		TimeOff:                     20,
		ProbationPeriod:             30,
		NoticePeriodDuringProbation: 7,
		NoticePeriodAfterProbation:  30,
		Compensation:                5500.5,
	}
	if !reflect.DeepEqual(info, want) {
		t.Fatalf("record mismatch:\n got %+v\nwant %+v", info, want)
	}
}

func TestValidateEmploymentInformationRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p validation.Payload)
		field   string
		kind    validation.Kind
		message string
	}{
		{"work hours 39", func(p validation.Payload) { p["workHoursPerWeek"] = float64(39) }, "workHoursPerWeek", validation.KindRange, MsgWorkHoursRange},
		{"work hours 40", func(p validation.Payload) { p["workHoursPerWeek"] = float64(40) }, "", "", ""},
		{"work hours 60", func(p validation.Payload) { p["workHoursPerWeek"] = float64(60) }, "", "", ""},
		{"work hours 61", func(p validation.Payload) { p["workHoursPerWeek"] = float64(61) }, "workHoursPerWeek", validation.KindRange, MsgWorkHoursRange},
		{"time off 8", func(p validation.Payload) { p["timeOff"] = float64(8) }, "timeOff", validation.KindRange, MsgTimeOffRange},
		{"time off 9", func(p validation.Payload) { p["timeOff"] = float64(9) }, "", "", ""},
		{"probation 30", func(p validation.Payload) { p["probationPeriod"] = float64(30) }, "", "", ""},
		{"probation 31", func(p validation.Payload) { p["probationPeriod"] = float64(31) }, "probationPeriod", validation.KindRange, MsgProbationRange},
		{"notice during negative", func(p validation.Payload) { p["noticePeriodDuringProbation"] = float64(-1) }, "noticePeriodDuringProbation", validation.KindRange, MsgNoticeDuringRange},
		{"notice after negative", func(p validation.Payload) { p["noticePeriodAfterProbation"] = float64(-1) }, "noticePeriodAfterProbation", validation.KindRange, MsgNoticeAfterRange},
		{"start in 5 days", func(p validation.Payload) { p["contractStartDate"] = "2026-10-22" }, "", "", ""},
		{"start in 4 days", func(p validation.Payload) { p["contractStartDate"] = "2026-10-21" }, "contractStartDate", validation.KindBusinessRule, MsgContractStartLeadTime},
		{"start today", func(p validation.Payload) { p["contractStartDate"] = "2026-10-17" }, "contractStartDate", validation.KindBusinessRule, MsgContractStartLeadTime},
		{"unknown terms", func(p validation.Payload) { p["employmentTerms"] = "Permanent" }, "employmentTerms", validation.KindBusinessRule, MsgEmploymentTerms},
		{"lowercase terms", func(p validation.Payload) { p["employmentTerms"] = "definite" }, "employmentTerms", validation.KindBusinessRule, MsgEmploymentTerms},
		{"definite without end", func(p validation.Payload) { delete(p, "contractEndDate") }, "contractEndDate", validation.KindBusinessRule, MsgContractEndDateRequired},
		{"definite with null end", func(p validation.Payload) { p["contractEndDate"] = nil }, "contractEndDate", validation.KindBusinessRule, MsgContractEndDateRequired},
		{"definite end equals start", func(p validation.Payload) { p["contractEndDate"] = "2026-10-22" }, "contractEndDate", validation.KindBusinessRule, MsgContractEndAfterStart},
		{"definite end before start", func(p validation.Payload) { p["contractEndDate"] = "2026-10-01" }, "contractEndDate", validation.KindBusinessRule, MsgContractEndAfterStart},
		{"definite end one day after", func(p validation.Payload) { p["contractEndDate"] = "2026-10-23" }, "", "", ""},
		{"indefinite without end", func(p validation.Payload) {
			p["employmentTerms"] = "Indefinite"
			delete(p, "contractEndDate")
		}, "", "", ""},
		{"indefinite end before start", func(p validation.Payload) {
			p["employmentTerms"] = "Indefinite"
			p["contractEndDate"] = "2026-10-01"
		}, "", "", ""},
		{"notice 10 then 5", func(p validation.Payload) {
			p["noticePeriodDuringProbation"] = float64(10)
			p["noticePeriodAfterProbation"] = float64(5)
		}, "noticePeriodAfterProbation", validation.KindBusinessRule, MsgNoticeAfterBelowDuring},
		{"notice 10 then 10", func(p validation.Payload) {
			p["noticePeriodDuringProbation"] = float64(10)
			p["noticePeriodAfterProbation"] = float64(10)
		}, "", "", ""},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validEmploymentPayload()
			tt.mutate(payload)

			info, err := v.ValidateEmploymentInformation(payload)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected acceptance, got %v", err)
				}
				if info == nil {
					t.Fatal("expected a record")
				}
				return
			}

			if info != nil {
				t.Fatalf("expected rejection, got record %+v", info)
			}
			fieldErrors := asFieldErrors(t, err)
			if len(fieldErrors) != 1 {
				t.Fatalf("expected exactly one error, got %v", fieldErrors)
			}
			got := fieldErrors.First()
			if got.Field != tt.field || got.Kind != tt.kind || got.Message != tt.message {
				t.Fatalf("got %s/%s/%q, want %s/%s/%q", got.Field, got.Kind, got.Message, tt.field, tt.kind, tt.message)
			}
		})
	}
}

func TestValidateEmploymentInformationMissingFields(t *testing.T) {
	required := []string{
		"visaCompliance", "workHoursPerWeek", "contractStartDate", "employmentTerms",
		"timeOff", "probationPeriod", "noticePeriodDuringProbation",
		"noticePeriodAfterProbation", "compensation",
	}

	v := newTestValidator()
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			payload := validEmploymentPayload()
			delete(payload, field)

			_, err := v.ValidateEmploymentInformation(payload)
			if !errors.Is(err, validation.ErrFieldRequired) {
				t.Fatalf("expected ErrFieldRequired, got %v", err)
			}

			fe := findField(asFieldErrors(t, err), field)
			if fe == nil || fe.Kind != validation.KindRequired {
				t.Fatalf("expected required error for %s, got %v", field, err)
			}
		})
	}
}

func TestValidateEmploymentInformationTypes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"non-numeric hours", "workHoursPerWeek", "forty"},
		{"fractional hours", "workHoursPerWeek", 40.5},
		{"boolean time off", "timeOff", true},
		{"bad date format", "contractStartDate", "22/10/2026"},
		{"impossible date", "contractStartDate", "2026-02-30"},
		{"numeric terms", "employmentTerms", float64(1)},
		{"bad end date", "contractEndDate", "soon"},
		{"non-boolean visa", "visaCompliance", "maybe"},
		{"non-numeric compensation", "compensation", "a lot"},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validEmploymentPayload()
			payload[tt.field] = tt.value

			_, err := v.ValidateEmploymentInformation(payload)
			if !errors.Is(err, validation.ErrFieldType) {
				t.Fatalf("expected ErrFieldType, got %v", err)
			}

			fieldErrors := asFieldErrors(t, err)
			if len(fieldErrors) != 1 || fieldErrors[0].Field != tt.field {
				t.Fatalf("expected a single error on %s, got %v", tt.field, fieldErrors)
			}
		})
	}
}

func TestValidateEmploymentInformationLargeIntegers(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"number", float64(3e9)},
		{"string", "3000000000"},
		{"json.Number", json.Number("3000000000")},
		{"negative number", float64(-3e9)},
		{"negative string", "-3000000000"},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validEmploymentPayload()
			payload["workHoursPerWeek"] = tt.value

			_, err := v.ValidateEmploymentInformation(payload)
			fieldErrors := asFieldErrors(t, err)
			if len(fieldErrors) != 1 {
				t.Fatalf("expected a single error, got %v", fieldErrors)
			}

			want := validation.FieldError{
				Kind:    validation.KindRange,
				Field:   "workHoursPerWeek",
				Message: MsgWorkHoursRange,
			}
			if *fieldErrors[0] != want {
				t.Fatalf("got %+v, want %+v", *fieldErrors[0], want)
			}
		})
	}
}

func TestValidateEmploymentInformationCoercion(t *testing.T) {
	payload := validEmploymentPayload()
	payload["workHoursPerWeek"] = "45"
	payload["visaCompliance"] = "false"
	payload["compensation"] = "1200.75"

	info, err := newTestValidator().ValidateEmploymentInformation(payload)
	if err != nil {
		t.Fatalf("expected coercible payload to pass, got %v", err)
	}
	if info.WorkHoursPerWeek != 45 || info.VisaCompliance || info.Compensation != 1200.75 {
		t.Fatalf("unexpected coerced values: %+v", info)
	}
}

func TestValidateEmploymentInformationCollectsInOrder(t *testing.T) {
	payload := validEmploymentPayload()
	payload["workHoursPerWeek"] = float64(70)
	payload["probationPeriod"] = float64(45)
	payload["contractStartDate"] = "2026-10-18"
	payload["employmentTerms"] = "Temporary"
	payload["noticePeriodDuringProbation"] = float64(14)
	payload["noticePeriodAfterProbation"] = float64(7)

	_, err := newTestValidator().ValidateEmploymentInformation(payload)
	fieldErrors := asFieldErrors(t, err)

	want := []string{
		MsgWorkHoursRange,
		MsgProbationRange,
		MsgContractStartLeadTime,
		MsgEmploymentTerms,
		MsgNoticeAfterBelowDuring,
	}
	if len(fieldErrors) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), fieldErrors)
	}
	for i, msg := range want {
		if fieldErrors[i].Message != msg {
			t.Errorf("error %d: got %q, want %q", i, fieldErrors[i].Message, msg)
		}
	}
	if fieldErrors.First().Message != MsgWorkHoursRange {
		t.Errorf("first error should be the first failing check, got %q", fieldErrors.First().Message)
	}
}

func TestValidateEmploymentInformationSkipsRulesOnFailedFields(t *testing.T) {
	t.Run("notice rule needs both periods", func(t *testing.T) {
		payload := validEmploymentPayload()
		payload["noticePeriodDuringProbation"] = float64(-1)
		payload["noticePeriodAfterProbation"] = float64(-5)

		_, err := newTestValidator().ValidateEmploymentInformation(payload)
		fieldErrors := asFieldErrors(t, err)
		if len(fieldErrors) != 2 {
			t.Fatalf("expected only the two range errors, got %v", fieldErrors)
		}
		if errors.Is(err, validation.ErrBusinessRule) {
			t.Fatalf("notice rule should have been skipped, got %v", err)
		}
	})

	t.Run("end date not compared to rejected start date", func(t *testing.T) {
		payload := validEmploymentPayload()
		payload["contractStartDate"] = "2026-10-20"
		payload["contractEndDate"] = "2026-10-20"

		_, err := newTestValidator().ValidateEmploymentInformation(payload)
		fieldErrors := asFieldErrors(t, err)
		if len(fieldErrors) != 1 || fieldErrors[0].Message != MsgContractStartLeadTime {
			t.Fatalf("expected only the lead time error, got %v", fieldErrors)
		}
	})

	t.Run("definite end still required with rejected start date", func(t *testing.T) {
		payload := validEmploymentPayload()
		payload["contractStartDate"] = "2026-10-20"
		delete(payload, "contractEndDate")

		_, err := newTestValidator().ValidateEmploymentInformation(payload)
		fieldErrors := asFieldErrors(t, err)
		if findField(fieldErrors, "contractEndDate") == nil {
			t.Fatalf("expected missing end date to be reported, got %v", fieldErrors)
		}
	})
}

func TestValidateEmploymentInformationUsesCurrentDate(t *testing.T) {
	payload := validEmploymentPayload()

	later := New(WithClock(func() time.Time { return fixedNow.AddDate(0, 0, 1) }))
	_, err := later.ValidateEmploymentInformation(payload)
	if !errors.Is(err, validation.ErrBusinessRule) {
		t.Fatalf("same payload a day later should be rejected, got %v", err)
	}

	if _, err := newTestValidator().ValidateEmploymentInformation(payload); err != nil {
		t.Fatalf("payload should be valid today, got %v", err)
	}
}

func TestValidateEmployeeGeneralInfoValid(t *testing.T) {
	info, err := newTestValidator().ValidateEmployeeGeneralInfo(validGeneralInfoPayload())
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	middle := "King"
	want := &EmployeeGeneralInfo{
		FirstName:            "Ada",
		MiddleName:           &middle,
		LastName:             "Lovelace",
		Email:                "a@b.com",
		CountryOfCitizenship: Country{Name: "United Kingdom", ISO2: "GB"},
		CountryOfWork:        Country{Name: "Germany", ISO2: "DE"},
		JobTitle:             "Engineer",
		ScopeOfWork:          "Analytical engines",
	}
	if !reflect.DeepEqual(info, want) {
		t.Fatalf("record mismatch:\n got %+v\nwant %+v", info, want)
	}
}

func TestValidateEmployeeGeneralInfoOptionalMiddleName(t *testing.T) {
	for _, value := range []any{nil, "absent"} {
		payload := validGeneralInfoPayload()
		if value == nil {
			payload["middleName"] = nil
		} else {
			delete(payload, "middleName")
		}

		info, err := newTestValidator().ValidateEmployeeGeneralInfo(payload)
		if err != nil {
			t.Fatalf("expected middle name to be optional, got %v", err)
		}
		if info.MiddleName != nil {
			t.Fatalf("expected nil middle name, got %q", *info.MiddleName)
		}
	}
}

func TestValidateEmployeeGeneralInfoFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p validation.Payload)
		field  string
		kind   validation.Kind
	}{
		{"missing first name", func(p validation.Payload) { delete(p, "firstName") }, "firstName", validation.KindRequired},
		{"empty first name", func(p validation.Payload) { p["firstName"] = "" }, "firstName", validation.KindRequired},
		{"missing last name", func(p validation.Payload) { delete(p, "lastName") }, "lastName", validation.KindRequired},
		{"empty job title", func(p validation.Payload) { p["jobTitle"] = "" }, "jobTitle", validation.KindRequired},
		{"missing scope", func(p validation.Payload) { delete(p, "scopeOfWork") }, "scopeOfWork", validation.KindRequired},
		{"missing email", func(p validation.Payload) { delete(p, "email") }, "email", validation.KindRequired},
		{"malformed email", func(p validation.Payload) { p["email"] = "not-an-email" }, "email", validation.KindType},
		{"numeric last name", func(p validation.Payload) { p["lastName"] = float64(7) }, "lastName", validation.KindType},
		{"numeric middle name", func(p validation.Payload) { p["middleName"] = float64(7) }, "middleName", validation.KindType},
		{"missing country of work", func(p validation.Payload) { delete(p, "countryOfWork") }, "countryOfWork", validation.KindRequired},
		{"country as string", func(p validation.Payload) { p["countryOfCitizenship"] = "GB" }, "countryOfCitizenship", validation.KindType},
		{"country without iso2", func(p validation.Payload) {
			p["countryOfWork"] = map[string]any{"name": "Germany"}
		}, "countryOfWork.iso2", validation.KindRequired},
		{"country with numeric name", func(p validation.Payload) {
			p["countryOfWork"] = map[string]any{"name": float64(49), "iso2": "DE"}
		}, "countryOfWork.name", validation.KindType},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validGeneralInfoPayload()
			tt.mutate(payload)

			info, err := v.ValidateEmployeeGeneralInfo(payload)
			if info != nil {
				t.Fatalf("expected rejection, got %+v", info)
			}

			fieldErrors := asFieldErrors(t, err)
			if len(fieldErrors) != 1 {
				t.Fatalf("expected one error, got %v", fieldErrors)
			}
			if got := fieldErrors.First(); got.Field != tt.field || got.Kind != tt.kind {
				t.Fatalf("got %s/%s, want %s/%s", got.Field, got.Kind, tt.field, tt.kind)
			}
		})
	}
}

func TestValidateEmployeeGeneralInfoEmptyCountryFieldsAccepted(t *testing.T) {
	payload := validGeneralInfoPayload()
	payload["countryOfWork"] = map[string]any{"name": "", "iso2": ""}

	if _, err := newTestValidator().ValidateEmployeeGeneralInfo(payload); err != nil {
		t.Fatalf("country fields only need to be strings, got %v", err)
	}
}

func TestValidateEmployeeGeneralInfoEmptyPayload(t *testing.T) {
	_, err := newTestValidator().ValidateEmployeeGeneralInfo(validation.Payload{})
	fieldErrors := asFieldErrors(t, err)

	want := []string{"firstName", "lastName", "email", "countryOfCitizenship", "countryOfWork", "jobTitle", "scopeOfWork"}
	if len(fieldErrors) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), fieldErrors)
	}
	for i, field := range want {
		if fieldErrors[i].Field != field {
			t.Errorf("error %d: got %s, want %s", i, fieldErrors[i].Field, field)
		}
	}
}

func TestValidatorConcurrentUse(t *testing.T) {
	v := newTestValidator()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := validEmploymentPayload()
			if i%2 == 1 {
				payload["probationPeriod"] = float64(31)
			}
			_, err := v.ValidateEmploymentInformation(payload)
			if (err != nil) != (i%2 == 1) {
				t.Errorf("goroutine %d: unexpected result %v", i, err)
			}
		}(i)
	}
	wg.Wait()
}
