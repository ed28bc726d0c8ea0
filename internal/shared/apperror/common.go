package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeValidation,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// Validation builds a client-side validation error that must never reach the
// transport layer.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// RequiredField menghasilkan error "<Field> is required"
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

// InvalidField menghasilkan error "<Field> is invalid"
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}
