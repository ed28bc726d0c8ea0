package leaveerrors

import (
	"net/http"

	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeValidation,
		"Please fill in all required fields",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeValidation,
		"End date must be after start date",
		http.StatusBadRequest,
	)
	ErrHalfDayMultiDay = apperror.New(
		apperror.CodeValidation,
		"Half-day leave must be for a single day only",
		http.StatusBadRequest,
	)
	ErrReasonTooShort = apperror.New(
		apperror.CodeValidation,
		"Reason must be at least 10 characters",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeValidation,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidHalfDayPeriod = apperror.New(
		apperror.CodeValidation,
		"invalid half day period",
		http.StatusBadRequest,
	)
	ErrEndDateLocked = apperror.New(
		apperror.CodeValidation,
		"End date follows start date while half-day is active",
		http.StatusBadRequest,
	)
	ErrAttachmentType = apperror.New(
		apperror.CodeValidation,
		"Only images (PNG, JPG, JPEG, GIF) and PDF files are allowed",
		http.StatusBadRequest,
	)
	ErrAttachmentTooLarge = apperror.New(
		apperror.CodeValidation,
		"File size must be less than 16MB",
		http.StatusBadRequest,
	)
	ErrNotEditable = apperror.New(
		apperror.CodeConflict,
		"Only pending leave requests can be edited",
		http.StatusConflict,
	)
	ErrSubmissionInFlight = apperror.New(
		apperror.CodeConflict,
		"submission already in progress",
		http.StatusConflict,
	)
)
