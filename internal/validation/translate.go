package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidate returns a validator that reports fields by their JSON names,
// so translated errors point at payload keys rather than Go field names.
func NewValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Translate converts go-playground/validator errors into FieldErrors.
//
// messages overrides the default text per field path; it applies to every
// failed tag on that field except `required`. Errors that are not
// validator.ValidationErrors are returned unchanged as the second value.
func Translate(err error, messages map[string]string) (FieldErrors, error) {
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	out := make(FieldErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fieldPath(fe)
		kind, msg := describe(fe)

		if custom, ok := messages[field]; ok && kind != KindRequired {
			msg = custom
		}

		out = append(out, &FieldError{Kind: kind, Field: field, Message: msg})
	}

	return out, nil
}

// fieldPath drops the root struct name from the namespace:
// "EmployeeGeneralInfo.countryOfWork.iso2" -> "countryOfWork.iso2".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) (Kind, string) {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return KindRequired, MsgRequired

	case "min", "gte":
		if isString {
			return KindRange, fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return KindRange, fmt.Sprintf("must be at least %s", fe.Param())

	case "max", "lte":
		if isString {
			return KindRange, fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return KindRange, fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return KindType, fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return KindType, MsgEmail

	default:
		if fe.Param() != "" {
			return KindType, fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
		}
		return KindType, fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
