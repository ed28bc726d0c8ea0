package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	attendanceerrors "github.com/spcool555/leav-managment-fe/internal/attendance/errors"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureCameraOpen
	CapturePhotoCaptured
)

func (s CaptureState) String() string {
	switch s {
	case CaptureIdle:
		return "idle"
	case CaptureCameraOpen:
		return "camera_open"
	case CapturePhotoCaptured:
		return "photo_captured"
	}
	return "unknown"
}

type LocationState int

const (
	LocationPending LocationState = iota
	LocationAcquired
	LocationFailed
)

func (s LocationState) String() string {
	switch s {
	case LocationPending:
		return "pending"
	case LocationAcquired:
		return "acquired"
	case LocationFailed:
		return "failed"
	}
	return "unknown"
}

// Camera dan Locator adalah capability device asinkron yang di-inject supaya
// workflow bisa diuji tanpa hardware. Di wiring web, implementasinya membaca
// foto dan koordinat yang dikirim browser.
type Camera interface {
	Capture(ctx context.Context) ([]byte, error)
}

type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

//go:generate mockgen -source=capture.go -destination=mock/capture_gateway_mock.go -package=mock
type Gateway interface {
	AttendanceStatus(ctx context.Context, employeeID string) (gateway.AttendanceStatus, error)
	CheckIn(ctx context.Context, sub gateway.AttendanceSubmission) (gateway.SubmitResult, error)
	CheckOut(ctx context.Context, sub gateway.AttendanceSubmission) (gateway.SubmitResult, error)
}

// Workflow adalah state machine capture absensi satu employee:
// Idle -> CameraOpen -> PhotoCaptured (retake kembali ke CameraOpen), dipasangkan
// dengan LocationState yang berjalan independen. Submit hanya boleh saat
// PhotoCaptured DAN LocationAcquired.
type Workflow struct {
	mu sync.Mutex

	employeeID string

	capture CaptureState
	photo   []byte

	location       LocationState
	lat, lon       float64
	locationReason string

	status     *gateway.AttendanceStatus
	submitting bool
	closed     bool

	gw     Gateway
	logger *zap.Logger
}

func NewWorkflow(employeeID string, gw Gateway, logger ...*zap.Logger) *Workflow {
	l := zap.L().Named("attendance.capture")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.capture")
	}
	return &Workflow{
		employeeID: employeeID,
		capture:    CaptureIdle,
		location:   LocationPending,
		gw:         gw,
		logger:     l,
	}
}

// Snapshot adalah pandangan read-only untuk layer render.
type Snapshot struct {
	EmployeeID     string                    `json:"employee_id"`
	CaptureState   string                    `json:"capture_state"`
	LocationState  string                    `json:"location_state"`
	Location       string                    `json:"location,omitempty"`
	LocationReason string                    `json:"location_reason,omitempty"`
	CheckingIn     bool                      `json:"checking_in"`
	Status         *gateway.AttendanceStatus `json:"status,omitempty"`
	Submitting     bool                      `json:"submitting"`
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := Snapshot{
		EmployeeID:     w.employeeID,
		CaptureState:   w.capture.String(),
		LocationState:  w.location.String(),
		LocationReason: w.locationReason,
		CheckingIn:     w.checkingInLocked(),
		Status:         w.status,
		Submitting:     w.submitting,
	}
	if w.location == LocationAcquired {
		s.Location = formatLocation(w.lat, w.lon)
	}
	return s
}

// RefreshStatus mengambil status absensi terbaru; diskriminator check-in vs
// check-out diturunkan dari hasil fetch terakhir ini.
func (w *Workflow) RefreshStatus(ctx context.Context) (gateway.AttendanceStatus, error) {
	st, err := w.gw.AttendanceStatus(ctx, w.employeeID)
	if err != nil {
		return gateway.AttendanceStatus{}, err
	}

	w.mu.Lock()
	if !w.closed {
		w.status = &st
	}
	w.mu.Unlock()
	return st, nil
}

func (w *Workflow) OpenCamera() {
	w.mu.Lock()
	defer w.mu.Unlock()
	// Dari Idle maupun PhotoCaptured (retake); foto lama dibuang saat retake.
	w.capture = CaptureCameraOpen
	w.photo = nil
}

func (w *Workflow) CancelCamera() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.capture == CaptureCameraOpen {
		w.capture = CaptureIdle
	}
}

// CapturePhoto mengambil gambar dari camera capability. Hanya sah dari
// CameraOpen; kegagalan device tidak mengubah state (user bisa coba lagi).
func (w *Workflow) CapturePhoto(ctx context.Context, cam Camera) error {
	w.mu.Lock()
	if w.capture != CaptureCameraOpen {
		w.mu.Unlock()
		return attendanceerrors.ErrCameraNotOpen
	}
	w.mu.Unlock()

	img, err := cam.Capture(ctx)
	if err != nil || len(img) == 0 {
		w.logger.Warn("photo capture failed", zap.Error(err))
		return attendanceerrors.ErrCameraUnavailable
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.capture != CaptureCameraOpen {
		// Hasil terlambat setelah user menutup workflow: dibuang.
		return nil
	}
	w.photo = img
	w.capture = CapturePhotoCaptured
	return nil
}

// AcquireLocation menjalankan locator; retry mengembalikan state ke Pending
// dulu sebelum resolve ke Acquired/Failed.
func (w *Workflow) AcquireLocation(ctx context.Context, loc Locator) error {
	w.mu.Lock()
	w.location = LocationPending
	w.locationReason = ""
	w.mu.Unlock()

	lat, lon, err := loc.Locate(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	if err != nil {
		w.location = LocationFailed
		w.locationReason = err.Error()
		w.logger.Warn("location acquisition failed", zap.Error(err))
		return attendanceerrors.ErrLocationUnavailable
	}
	w.location = LocationAcquired
	w.lat, w.lon = lat, lon
	return nil
}

// Submit memvalidasi precondition, lalu mengirim check-in atau check-out
// sesuai status terakhir. Saat gagal, CaptureState tidak berubah sehingga user
// bisa retry tanpa capture ulang. Guard in-flight memastikan aktivasi ganda
// hanya menghasilkan satu network call.
func (w *Workflow) Submit(ctx context.Context, userMessage string) (gateway.SubmitResult, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return gateway.SubmitResult{}, attendanceerrors.ErrSubmissionInFlight
	}
	if w.capture != CapturePhotoCaptured {
		w.mu.Unlock()
		return gateway.SubmitResult{}, attendanceerrors.ErrPhotoRequired
	}
	if w.location != LocationAcquired {
		w.mu.Unlock()
		return gateway.SubmitResult{}, attendanceerrors.ErrLocationRequired
	}

	w.submitting = true
	checkingIn := w.checkingInLocked()
	sub := gateway.AttendanceSubmission{
		EmployeeID:  w.employeeID,
		Location:    formatLocation(w.lat, w.lon),
		UserMessage: userMessage,
		PhotoName:   fmt.Sprintf("%s_%d.jpg", w.employeeID, time.Now().UnixMilli()),
		Photo:       w.photo,
	}
	w.mu.Unlock()

	var (
		res gateway.SubmitResult
		err error
	)
	if checkingIn {
		res, err = w.gw.CheckIn(ctx, sub)
	} else {
		res, err = w.gw.CheckOut(ctx, sub)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if w.closed {
		// User sudah pergi; hasil dibuang tanpa menyentuh state lain.
		return gateway.SubmitResult{}, apperror.New(apperror.CodeConflict, "workflow closed", 409)
	}
	if err != nil {
		// State capture dibiarkan utuh untuk retry.
		w.logger.Warn("attendance submission failed",
			zap.String("employee_id", w.employeeID),
			zap.Bool("checking_in", checkingIn),
			zap.Error(err),
		)
		return gateway.SubmitResult{}, err
	}

	w.logger.Info("attendance submitted",
		zap.String("employee_id", w.employeeID),
		zap.Bool("checking_in", checkingIn),
	)
	return res, nil
}

// Close menandai workflow ditinggalkan; response yang masih dalam perjalanan
// tidak akan memutasi state lagi.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

func (w *Workflow) checkingInLocked() bool {
	return w.status == nil || !w.status.CheckedIn
}

func formatLocation(lat, lon float64) string {
	return fmt.Sprintf("%v,%v", lat, lon)
}
