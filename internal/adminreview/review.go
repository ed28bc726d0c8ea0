package adminreview

import (
	"context"
	"sync"

	"go.uber.org/zap"

	adminreviewerrors "github.com/spcool555/leav-managment-fe/internal/adminreview/errors"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/leave"
)

const (
	FilterPending  = "pending"
	FilterApproved = "approved"
	FilterRejected = "rejected"
	FilterAll      = "all"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

//go:generate mockgen -source=review.go -destination=mock/review_gateway_mock.go -package=mock
type Gateway interface {
	AdminLeaves(ctx context.Context, status string) ([]gateway.LeaveRecord, error)
	ApproveLeave(ctx context.Context, id int, adminComment string) error
	RejectLeave(ctx context.Context, id int, adminComment string) error
}

// pendingAction adalah langkah konfirmasi yang belum di-commit; batal berarti
// dibuang tanpa network call.
type pendingAction struct {
	action Action
	record gateway.LeaveRecord
}

// Workflow adalah state review admin: filter menentukan scope fetch di
// server, approve/reject selalu dua langkah (pilih lalu konfirmasi), dan
// daftar selalu di-refresh dari server setelah commit — tidak ada mutasi
// optimis lokal.
type Workflow struct {
	mu sync.Mutex

	filter     string
	leaves     []gateway.LeaveRecord
	pending    *pendingAction
	committing bool

	gw     Gateway
	logger *zap.Logger
}

func NewWorkflow(gw Gateway, logger ...*zap.Logger) *Workflow {
	l := zap.L().Named("adminreview.workflow")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adminreview.workflow")
	}
	return &Workflow{
		filter: FilterPending,
		gw:     gw,
		logger: l,
	}
}

func (w *Workflow) Filter() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filter
}

// SetFilter mengganti scope; pemanggil wajib Refresh setelahnya karena daftar
// lama tidak lagi mewakili scope baru.
func (w *Workflow) SetFilter(f string) error {
	switch f {
	case FilterPending, FilterApproved, FilterRejected, FilterAll:
	default:
		return adminreviewerrors.ErrInvalidFilter
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filter = f
	return nil
}

// Refresh mengambil daftar scoped server-side sesuai filter aktif.
func (w *Workflow) Refresh(ctx context.Context) ([]gateway.LeaveRecord, error) {
	w.mu.Lock()
	filter := w.filter
	w.mu.Unlock()

	status := filter
	if status == FilterAll {
		status = ""
	}
	records, err := w.gw.AdminLeaves(ctx, status)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.leaves = records
	w.mu.Unlock()
	return records, nil
}

// BeginAction membuka langkah konfirmasi untuk satu record pending dari
// daftar yang terakhir di-fetch. Belum ada network call di sini.
func (w *Workflow) BeginAction(id int, action Action) error {
	if action != ActionApprove && action != ActionReject {
		return adminreviewerrors.ErrInvalidAction
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, rec := range w.leaves {
		if rec.ID == id {
			if rec.Status != leave.StatusPending {
				return adminreviewerrors.ErrRecordNotPending
			}
			w.pending = &pendingAction{action: action, record: rec}
			return nil
		}
	}
	return adminreviewerrors.ErrRecordNotFound
}

// CancelAction membuang langkah konfirmasi beserta draft komentarnya.
// Tidak ada network call.
func (w *Workflow) CancelAction() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = nil
}

// Pending mengembalikan record dan aksi yang menunggu konfirmasi.
func (w *Workflow) Pending() (gateway.LeaveRecord, Action, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return gateway.LeaveRecord{}, "", false
	}
	return w.pending.record, w.pending.action, true
}

// Confirm meng-commit aksi yang menunggu dengan komentar opsional, lalu
// me-refresh daftar dari server agar status yang tampil otoritatif.
func (w *Workflow) Confirm(ctx context.Context, adminComment string) ([]gateway.LeaveRecord, error) {
	w.mu.Lock()
	if w.committing {
		w.mu.Unlock()
		return nil, adminreviewerrors.ErrCommitInFlight
	}
	if w.pending == nil {
		w.mu.Unlock()
		return nil, adminreviewerrors.ErrNoPendingAction
	}
	act := *w.pending
	w.committing = true
	w.mu.Unlock()

	var err error
	switch act.action {
	case ActionApprove:
		err = w.gw.ApproveLeave(ctx, act.record.ID, adminComment)
	case ActionReject:
		err = w.gw.RejectLeave(ctx, act.record.ID, adminComment)
	}

	w.mu.Lock()
	w.committing = false
	if err != nil {
		// Langkah konfirmasi tetap terbuka supaya admin bisa coba lagi.
		w.mu.Unlock()
		w.logger.Warn("review commit failed",
			zap.Int("leave_id", act.record.ID),
			zap.String("action", string(act.action)),
			zap.Error(err),
		)
		return nil, err
	}
	w.pending = nil
	w.mu.Unlock()

	w.logger.Info("review committed",
		zap.Int("leave_id", act.record.ID),
		zap.String("action", string(act.action)),
	)
	return w.Refresh(ctx)
}
