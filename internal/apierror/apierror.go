// Package apierror defines the error envelopes returned by the API. Every
// 4xx/5xx body goes through here so clients can rely on one shape and so
// internal details (driver errors, stack traces) never leak out.
package apierror

// APIError carries a single user-facing message.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func (e *APIError) Error() string { return e.Detail }

// ValidationError adds per-field tags for form highlighting on the frontend.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "入力内容に誤りがあります", Fields: fields}
}
