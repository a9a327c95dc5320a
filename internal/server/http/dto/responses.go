package dto

// ErrorResponse is the uniform error payload. Fields is present only
// for validation failures, keyed by the offending form field.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
