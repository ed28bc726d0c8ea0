package leave

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spcool555/leav-managment-fe/internal/gateway"
	leaveerrors "github.com/spcool555/leav-managment-fe/internal/leave/errors"
)

const (
	TypeCasual = "casual"
	TypeSick   = "sick"
	TypeAnnual = "annual"

	PeriodFirstHalf  = "first_half"
	PeriodSecondHalf = "second_half"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const dateLayout = "2006-01-02"

const minReasonLength = 10

// MaxAttachmentSize adalah batas dokumen pendukung (16 MiB).
const MaxAttachmentSize = 16 << 20

var allowedAttachmentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// Draft adalah komposisi pengajuan cuti sebelum dikirim.
type Draft struct {
	LeaveType     string
	StartDate     string
	EndDate       string
	Reason        string
	IsHalfDay     bool
	HalfDayPeriod string
	Attachment    *gateway.Attachment
}

func NewDraft() Draft {
	return Draft{
		LeaveType:     TypeCasual,
		HalfDayPeriod: PeriodFirstHalf,
	}
}

//go:generate mockgen -source=draft.go -destination=mock/leave_gateway_mock.go -package=mock
type Gateway interface {
	SubmitLeave(ctx context.Context, sub gateway.LeaveSubmission) (string, error)
	UpdateLeave(ctx context.Context, id int, sub gateway.LeaveSubmission) (string, error)
	EmployeeLeaves(ctx context.Context, employeeID string) ([]gateway.LeaveRecord, error)
}

// Workflow menjaga invariant draft cuti: end_date mengikuti start_date selama
// half-day aktif, lampiran ditolak tanpa menghapus pilihan valid sebelumnya,
// dan submit hanya lolos setelah seluruh gate validasi.
type Workflow struct {
	mu sync.Mutex

	employeeID string
	draft      Draft
	submitting bool

	gw          Gateway
	onSubmitted func()
	logger      *zap.Logger
}

func NewWorkflow(employeeID string, gw Gateway, onSubmitted func(), logger ...*zap.Logger) *Workflow {
	l := zap.L().Named("leave.workflow")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.workflow")
	}
	return &Workflow{
		employeeID:  employeeID,
		draft:       NewDraft(),
		gw:          gw,
		onSubmitted: onSubmitted,
		logger:      l,
	}
}

func (w *Workflow) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *Workflow) SetLeaveType(t string) error {
	if t != TypeCasual && t != TypeSick && t != TypeAnnual {
		return leaveerrors.ErrInvalidLeaveType
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.LeaveType = t
	return nil
}

func (w *Workflow) SetReason(reason string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Reason = reason
}

// SetHalfDay menyalakan/mematikan half-day; saat menyala, end_date langsung
// disinkronkan ke start_date.
func (w *Workflow) SetHalfDay(on bool, period string) error {
	if on && period != PeriodFirstHalf && period != PeriodSecondHalf {
		return leaveerrors.ErrInvalidHalfDayPeriod
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.IsHalfDay = on
	if on {
		w.draft.HalfDayPeriod = period
		w.draft.EndDate = w.draft.StartDate
	}
	return nil
}

func (w *Workflow) SetStartDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.StartDate = date
	if w.draft.IsHalfDay {
		w.draft.EndDate = date
	}
}

// SetEndDate ditolak selama half-day aktif: end_date dikunci mengikuti
// start_date.
func (w *Workflow) SetEndDate(date string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.IsHalfDay {
		return leaveerrors.ErrEndDateLocked
	}
	w.draft.EndDate = date
	return nil
}

// Attach menerima kandidat dokumen pendukung. Kandidat yang ditolak (tipe
// atau ukuran) TIDAK menghapus lampiran valid yang sudah terpilih.
func (w *Workflow) Attach(name, mimeType string, size int64, data []byte) error {
	if !allowedAttachmentTypes[strings.ToLower(mimeType)] {
		return leaveerrors.ErrAttachmentType
	}
	if size > MaxAttachmentSize {
		return leaveerrors.ErrAttachmentTooLarge
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Attachment = &gateway.Attachment{
		Name: name,
		MIME: mimeType,
		Size: size,
		Data: data,
	}
	return nil
}

func (w *Workflow) ClearAttachment() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Attachment = nil
}

// Days menghitung tampilan jumlah hari: 0.5 untuk half-day, selain itu
// hitungan inklusif (end - start) + 1.
func (w *Workflow) Days() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return draftDays(w.draft)
}

func draftDays(d Draft) float64 {
	if d.StartDate == "" || d.EndDate == "" {
		return 0
	}
	if d.IsHalfDay {
		return 0.5
	}
	start, err1 := time.Parse(dateLayout, d.StartDate)
	end, err2 := time.Parse(dateLayout, d.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return end.Sub(start).Hours()/24 + 1
}

// Validate adalah gate sebelum submit; error di sini tidak pernah sampai ke
// transport.
func (w *Workflow) Validate() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return validateDraft(w.draft)
}

func validateDraft(d Draft) error {
	if d.StartDate == "" || d.EndDate == "" || strings.TrimSpace(d.Reason) == "" {
		return leaveerrors.ErrMissingFields
	}

	start, err := time.Parse(dateLayout, d.StartDate)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, d.EndDate)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}

	if start.After(end) {
		return leaveerrors.ErrEndBeforeStart
	}
	if d.IsHalfDay && d.StartDate != d.EndDate {
		return leaveerrors.ErrHalfDayMultiDay
	}
	if len(strings.TrimSpace(d.Reason)) < minReasonLength {
		return leaveerrors.ErrReasonTooShort
	}
	return nil
}

// Submit memvalidasi lalu mengirim pengajuan baru. Sukses: draft kembali ke
// default dan hook refresh parent dipanggil.
func (w *Workflow) Submit(ctx context.Context) (string, error) {
	return w.send(ctx, func(ctx context.Context, sub gateway.LeaveSubmission) (string, error) {
		return w.gw.SubmitLeave(ctx, sub)
	})
}

// Update mengedit record pending milik employee sendiri dengan gate validasi
// yang sama.
func (w *Workflow) Update(ctx context.Context, rec gateway.LeaveRecord) (string, error) {
	if rec.Status != StatusPending {
		return "", leaveerrors.ErrNotEditable
	}
	return w.send(ctx, func(ctx context.Context, sub gateway.LeaveSubmission) (string, error) {
		return w.gw.UpdateLeave(ctx, rec.ID, sub)
	})
}

func (w *Workflow) send(ctx context.Context, do func(context.Context, gateway.LeaveSubmission) (string, error)) (string, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return "", leaveerrors.ErrSubmissionInFlight
	}
	if err := validateDraft(w.draft); err != nil {
		w.mu.Unlock()
		return "", err
	}
	w.submitting = true
	sub := gateway.LeaveSubmission{
		EmployeeID:    w.employeeID,
		LeaveType:     w.draft.LeaveType,
		StartDate:     w.draft.StartDate,
		EndDate:       w.draft.EndDate,
		Reason:        w.draft.Reason,
		IsHalfDay:     w.draft.IsHalfDay,
		HalfDayPeriod: w.draft.HalfDayPeriod,
		Document:      w.draft.Attachment,
	}
	w.mu.Unlock()

	msg, err := do(ctx, sub)

	w.mu.Lock()
	w.submitting = false
	if err != nil {
		w.mu.Unlock()
		w.logger.Warn("leave submission failed",
			zap.String("employee_id", w.employeeID),
			zap.Error(err),
		)
		return "", err
	}
	// Sukses: tutup composer dengan draft bersih.
	w.draft = NewDraft()
	w.mu.Unlock()

	w.logger.Info("leave submitted", zap.String("employee_id", w.employeeID))
	if w.onSubmitted != nil {
		w.onSubmitted()
	}
	if msg == "" {
		msg = "Leave request submitted successfully"
	}
	return msg, nil
}
