// Package validation turns raw request payloads into typed values and
// reports every problem as a field-level error.
//
// Structural checks (presence, type) are done by Reader while walking the
// payload. Constraint checks are expressed as `validate` struct tags and run
// through go-playground/validator; Translate converts its errors into the
// same FieldError shape so callers get one consistent error list.
package validation

import (
	"errors"
	"strings"
)

// Kind classifies a FieldError.
type Kind string

const (
	KindRequired     Kind = "required"
	KindType         Kind = "type"
	KindRange        Kind = "range"
	KindBusinessRule Kind = "business_rule"
)

// Sentinels matched with errors.Is against a FieldError or FieldErrors.
var (
	ErrFieldRequired = errors.New("field required")
	ErrFieldType     = errors.New("field has invalid type")
	ErrFieldRange    = errors.New("field out of range")
	ErrBusinessRule  = errors.New("business rule violated")
)

func (k Kind) sentinel() error {
	switch k {
	case KindRequired:
		return ErrFieldRequired
	case KindRange:
		return ErrFieldRange
	case KindBusinessRule:
		return ErrBusinessRule
	default:
		return ErrFieldType
	}
}

// FieldError is one validation failure attributed to a single field.
type FieldError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind.sentinel()
}

// NewFieldRequiredError reports a missing field.
func NewFieldRequiredError(field string) *FieldError {
	return &FieldError{Kind: KindRequired, Field: field, Message: MsgRequired}
}

// NewFieldTypeError reports a value of the wrong type or shape.
func NewFieldTypeError(field, message string) *FieldError {
	return &FieldError{Kind: KindType, Field: field, Message: message}
}

// NewFieldRangeError reports a value outside its allowed range.
func NewFieldRangeError(field, message string) *FieldError {
	return &FieldError{Kind: KindRange, Field: field, Message: message}
}

// NewBusinessRuleError reports a failed cross-field rule.
func NewBusinessRuleError(field, message string) *FieldError {
	return &FieldError{Kind: KindBusinessRule, Field: field, Message: message}
}

// FieldErrors is the error returned when a payload is rejected.
type FieldErrors []*FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() []error {
	out := make([]error, 0, len(fe))
	for _, e := range fe {
		out = append(out, e)
	}
	return out
}

// First returns the first recorded failure, or nil.
func (fe FieldErrors) First() *FieldError {
	if len(fe) == 0 {
		return nil
	}
	return fe[0]
}

// Has reports whether field, or any field nested under it, already failed.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field || strings.HasPrefix(e.Field, field+".") {
			return true
		}
	}
	return false
}

// Err returns fe as an error, or nil when it is empty.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
