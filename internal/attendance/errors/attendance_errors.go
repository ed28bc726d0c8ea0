package attendanceerrors

import (
	"net/http"

	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

var (
	ErrPhotoRequired = apperror.New(
		apperror.CodeValidation,
		"photo required",
		http.StatusBadRequest,
	)
	ErrLocationRequired = apperror.New(
		apperror.CodeValidation,
		"location required",
		http.StatusBadRequest,
	)
	ErrCameraNotOpen = apperror.New(
		apperror.CodeValidation,
		"camera is not open",
		http.StatusBadRequest,
	)
	ErrSubmissionInFlight = apperror.New(
		apperror.CodeConflict,
		"submission already in progress",
		http.StatusConflict,
	)
	ErrCameraUnavailable = apperror.New(
		apperror.CodeTransport,
		"Failed to capture photo. Please try again.",
		http.StatusBadGateway,
	)
	ErrLocationUnavailable = apperror.New(
		apperror.CodeTransport,
		"Failed to get location. Please enable location access.",
		http.StatusBadGateway,
	)
)
