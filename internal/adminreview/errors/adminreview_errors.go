package adminreviewerrors

import (
	"net/http"

	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

var (
	ErrInvalidFilter = apperror.New(
		apperror.CodeValidation,
		"invalid status filter",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeValidation,
		"invalid review action",
		http.StatusBadRequest,
	)
	ErrRecordNotPending = apperror.New(
		apperror.CodeConflict,
		"only pending leave requests can be reviewed",
		http.StatusConflict,
	)
	ErrNoPendingAction = apperror.New(
		apperror.CodeConflict,
		"no review action awaiting confirmation",
		http.StatusConflict,
	)
	ErrCommitInFlight = apperror.New(
		apperror.CodeConflict,
		"review commit already in progress",
		http.StatusConflict,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found in current list",
		http.StatusNotFound,
	)
)
