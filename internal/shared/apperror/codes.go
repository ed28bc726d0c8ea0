package apperror

const (
	// Client errors (4xx)
	CodeValidation   = "VALIDATION_ERROR"
	CodeAuth         = "AUTH_FAILED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// Upstream / infrastructure errors
	CodeTransport = "TRANSPORT_ERROR"
	CodeServer    = "SERVER_ERROR"

	CodeInternalError = "INTERNAL_ERROR"
)
