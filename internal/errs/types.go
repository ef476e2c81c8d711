package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the application error type returned by services and handlers.
//
//   - Code: machine-friendly error code (e.g. "USER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports true for any *HTTPError target, so errors.Is(err, &HTTPError{})
// answers "is this an application error at all".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Response is the JSON body written for every failed request.
//
// The "error" key carries the message so clients can rely on the
// {"error": "..."} shape; the remaining keys add machine-readable detail.
type Response struct {
	Error    string       `json:"error"`
	Code     string       `json:"code"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// ToResponse converts e into its wire representation.
func (e *HTTPError) ToResponse() Response {
	return Response{
		Error:    e.Message,
		Code:     e.Code,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
