package adminreview

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminreviewerrors "github.com/spcool555/leav-managment-fe/internal/adminreview/errors"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
	"github.com/spcool555/leav-managment-fe/internal/shared/response"
)

// ViewGateway adalah data tambahan layar admin di luar workflow review.
type ViewGateway interface {
	AdminStats(ctx context.Context) (gateway.AdminStats, error)
	AdminAttendance(ctx context.Context, f gateway.AttendanceLogFilter) ([]gateway.AttendanceLog, error)
	AdminAttendanceExport(ctx context.Context, f gateway.AttendanceLogFilter) (gateway.FileDownload, error)
}

type Handler struct {
	registry *Registry
	view     ViewGateway
	logger   *zap.Logger
}

func NewHandler(registry *Registry, view ViewGateway, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("adminreview.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adminreview.handler")
	}
	return &Handler{registry: registry, view: view, logger: l}
}

func (h *Handler) workflow(c *gin.Context) *Workflow {
	return h.registry.Get(middleware.SessionID(c))
}

// Home mengagregasi statistik admin + daftar cuti sesuai filter aktif.
func (h *Handler) Home(c *gin.Context) {
	w := h.workflow(c)

	view := HomeView{Filter: w.Filter()}
	if stats, err := h.view.AdminStats(c.Request.Context()); err == nil {
		view.Stats = stats
	} else {
		h.logger.Warn("fetch admin stats failed", zap.Error(err))
	}

	leaves, err := w.Refresh(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	view.Leaves = leaves

	response.Success(c, http.StatusOK, view)
}

// Leaves mengganti filter lalu fetch ulang; ?status= kosong memakai filter
// yang sedang aktif.
func (h *Handler) Leaves(c *gin.Context) {
	w := h.workflow(c)

	if status := c.Query("status"); status != "" {
		if err := w.SetFilter(status); err != nil {
			response.FromError(c, err)
			return
		}
	}

	leaves, err := w.Refresh(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ReviewView{Filter: w.Filter(), Leaves: leaves})
}

// BeginAction membuka dialog konfirmasi approve/reject. Belum ada network
// call di tahap ini.
func (h *Handler) BeginAction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.FromError(c, adminreviewerrors.ErrRecordNotFound)
		return
	}

	var req BeginActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}
	action := Action(req.Action)
	if action != ActionApprove && action != ActionReject {
		response.FromError(c, adminreviewerrors.ErrInvalidAction)
		return
	}

	w := h.workflow(c)
	if err := w.BeginAction(id, action); err != nil {
		response.FromError(c, err)
		return
	}

	record, pending, _ := w.Pending()
	response.Success(c, http.StatusOK, PendingActionView{
		Action: string(pending),
		Record: record,
	})
}

// CancelAction menutup dialog tanpa network call apa pun.
func (h *Handler) CancelAction(c *gin.Context) {
	h.workflow(c).CancelAction()
	response.Success(c, http.StatusOK, gin.H{"status": "cancelled"})
}

// ConfirmAction meng-commit aksi yang tertunda, lalu mengembalikan daftar
// hasil refresh server (bukan hasil mutasi lokal).
func (h *Handler) ConfirmAction(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	w := h.workflow(c)
	_, action, ok := w.Pending()
	if !ok {
		response.FromError(c, adminreviewerrors.ErrNoPendingAction)
		return
	}

	leaves, err := w.Confirm(c.Request.Context(), req.AdminComment)
	if err != nil {
		response.FromError(c, err)
		return
	}

	message := "Leave request approved"
	if action == ActionReject {
		message = "Leave request rejected"
	}
	response.Success(c, http.StatusOK, ConfirmResponse{
		Message: message,
		Filter:  w.Filter(),
		Leaves:  leaves,
	})
}

func (h *Handler) Attendance(c *gin.Context) {
	filter := gateway.AttendanceLogFilter{
		EmployeeID: c.Query("employee_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	logs, err := h.view.AdminAttendance(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, logs)
}

// AttendanceExport men-stream xlsx. Default passthrough export backend;
// ?source=portal membangun workbook dari log yang di-fetch portal sendiri.
func (h *Handler) AttendanceExport(c *gin.Context) {
	filter := gateway.AttendanceLogFilter{
		EmployeeID: c.Query("employee_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	if c.Query("source") == "portal" {
		logs, err := h.view.AdminAttendance(c.Request.Context(), filter)
		if err != nil {
			response.FromError(c, err)
			return
		}
		buf, name, err := BuildAttendanceWorkbook(logs)
		if err != nil {
			response.FromError(c, apperror.Wrap(err, apperror.CodeInternalError, "Failed to build export", http.StatusInternalServerError))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		return
	}

	file, err := h.view.AdminAttendanceExport(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
