package errs

import "strings"

// FieldError is a single field-level problem reported to the client.
//
//	{ "field": "workHoursPerWeek", "error": "Number of work hours per week must be between 40 and 60.", "kind": "range" }
type FieldError struct {
	// Field is the payload key, dotted for nested objects (e.g. "countryOfWork.iso2").
	Field string `json:"field"`

	// Error is the human-readable message.
	Error string `json:"error"`

	// Kind classifies the failure (required, type, range, business_rule).
	Kind string `json:"kind,omitempty"`
}

// ActionType tells the client what to do next.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional client instruction attached to an HTTPError.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the body of every error response.
//
// Override tells the error handler the message is safe to show as-is.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
