package employeeerrors

import (
	"net/http"

	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

var (
	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidation,
		"Password must be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeValidation,
		"Passwords do not match",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
