package validation

import (
	"errors"

	"github.com/deppfellow/hr-validator/internal/errs"
	"github.com/labstack/echo/v4"
)

// BindPayload decodes the request body into a Payload.
//
// Only JSON objects are accepted; anything else is a 400 before any field
// is looked at.
func BindPayload(c echo.Context) (Payload, error) {
	var payload Payload
	if err := c.Echo().JSONSerializer.Deserialize(c, &payload); err != nil || payload == nil {
		return nil, errs.NewBadRequestError("Request body must be a JSON object", true, nil, nil, nil)
	}
	return payload, nil
}

// ToHTTPError maps a rejected payload to the 400 response body. Errors
// that are not FieldErrors are returned unchanged.
func ToHTTPError(err error) error {
	var fieldErrors FieldErrors
	if !errors.As(err, &fieldErrors) {
		var single *FieldError
		if !errors.As(err, &single) {
			return err
		}
		fieldErrors = FieldErrors{single}
	}

	out := make([]errs.FieldError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, errs.FieldError{
			Field: fe.Field,
			Error: fe.Message,
			Kind:  string(fe.Kind),
		})
	}

	return errs.NewValidationFailedError(out)
}
