package leave

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spcool555/leav-managment-fe/internal/gateway"
	leaveerrors "github.com/spcool555/leav-managment-fe/internal/leave/errors"
	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/shared/response"
)

// ViewGateway adalah data yang dibutuhkan layar dashboard employee.
type ViewGateway interface {
	AttendanceStatus(ctx context.Context, employeeID string) (gateway.AttendanceStatus, error)
	LeaveStats(ctx context.Context, employeeID string) (gateway.LeaveStats, error)
	EmployeeLeaves(ctx context.Context, employeeID string) ([]gateway.LeaveRecord, error)
}

type Handler struct {
	gw     Gateway
	view   ViewGateway
	logger *zap.Logger
}

func NewHandler(gw Gateway, view ViewGateway, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{gw: gw, view: view, logger: l}
}

// Dashboard mengagregasi status absensi + statistik & riwayat cuti untuk
// layar employee. refresh() eksplisit: data yang sama dipanggil ulang setelah
// operasi yang memutasi state.
func (h *Handler) Dashboard(c *gin.Context) {
	st := middleware.CurrentState(c)
	employeeID := st.Session.EmployeeID

	response.Success(c, http.StatusOK, h.refresh(c.Request.Context(), employeeID))
}

func (h *Handler) refresh(ctx context.Context, employeeID string) DashboardView {
	view := DashboardView{}

	if status, err := h.view.AttendanceStatus(ctx, employeeID); err == nil {
		view.AttendanceStatus = &status
	} else {
		h.logger.Warn("fetch attendance status failed", zap.Error(err))
	}
	if stats, err := h.view.LeaveStats(ctx, employeeID); err == nil {
		view.LeaveStats = &stats
	} else {
		h.logger.Warn("fetch leave stats failed", zap.Error(err))
	}
	if history, err := h.view.EmployeeLeaves(ctx, employeeID); err == nil {
		view.LeaveHistory = history
	} else {
		h.logger.Warn("fetch leave history failed", zap.Error(err))
	}
	return view
}

// SubmitLeave menerima form composer secara utuh, menjalankannya lewat
// state machine draft, lalu submit.
func (h *Handler) SubmitLeave(c *gin.Context) {
	st := middleware.CurrentState(c)
	employeeID := st.Session.EmployeeID

	w := NewWorkflow(employeeID, h.gw, nil)
	if err := h.applyForm(c, w); err != nil {
		response.FromError(c, err)
		return
	}

	msg, err := w.Submit(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Composer ditutup; parent di-refresh dari server, bukan mutasi lokal.
	response.Success(c, http.StatusOK, SubmitLeaveResponse{
		Message:   msg,
		Dashboard: h.refresh(c.Request.Context(), employeeID),
	})
}

// UpdateLeave mengedit record pending milik employee sendiri.
func (h *Handler) UpdateLeave(c *gin.Context) {
	st := middleware.CurrentState(c)
	employeeID := st.Session.EmployeeID

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.FromError(c, leaveerrors.ErrMissingFields)
		return
	}

	rec, err := h.findOwnRecord(c.Request.Context(), employeeID, id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	w := NewWorkflow(employeeID, h.gw, nil)
	if err := h.applyForm(c, w); err != nil {
		response.FromError(c, err)
		return
	}

	msg, err := w.Update(c.Request.Context(), rec)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, SubmitLeaveResponse{
		Message:   msg,
		Dashboard: h.refresh(c.Request.Context(), employeeID),
	})
}

func (h *Handler) findOwnRecord(ctx context.Context, employeeID string, id int) (gateway.LeaveRecord, error) {
	records, err := h.gw.EmployeeLeaves(ctx, employeeID)
	if err != nil {
		return gateway.LeaveRecord{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return gateway.LeaveRecord{}, leaveerrors.ErrNotEditable
}

// applyForm memindahkan field form ke state machine draft dengan urutan yang
// menjaga sinkronisasi half-day / end_date.
func (h *Handler) applyForm(c *gin.Context, w *Workflow) error {
	if err := w.SetLeaveType(c.PostForm("leave_type")); err != nil {
		return err
	}

	isHalfDay, _ := strconv.ParseBool(c.DefaultPostForm("is_half_day", "false"))
	if isHalfDay {
		if err := w.SetHalfDay(true, c.DefaultPostForm("half_day_period", PeriodFirstHalf)); err != nil {
			return err
		}
	}

	w.SetStartDate(c.PostForm("start_date"))
	if !isHalfDay {
		if err := w.SetEndDate(c.PostForm("end_date")); err != nil {
			return err
		}
	}
	w.SetReason(c.PostForm("reason"))

	if file, err := c.FormFile("supporting_document"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return leaveerrors.ErrAttachmentType
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return leaveerrors.ErrAttachmentType
		}

		mimeType := file.Header.Get("Content-Type")
		if err := w.Attach(file.Filename, mimeType, file.Size, data); err != nil {
			return err
		}
	}
	return nil
}
