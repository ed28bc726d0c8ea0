package attendance_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spcool555/leav-managment-fe/internal/attendance"
	attendanceerrors "github.com/spcool555/leav-managment-fe/internal/attendance/errors"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
)

type fakeGateway struct {
	mu       sync.Mutex
	statusFn func() (gateway.AttendanceStatus, error)
	checkIn  int
	checkOut int
	submitFn func(sub gateway.AttendanceSubmission) (gateway.SubmitResult, error)
}

func (f *fakeGateway) AttendanceStatus(ctx context.Context, employeeID string) (gateway.AttendanceStatus, error) {
	if f.statusFn != nil {
		return f.statusFn()
	}
	return gateway.AttendanceStatus{}, nil
}

func (f *fakeGateway) CheckIn(ctx context.Context, sub gateway.AttendanceSubmission) (gateway.SubmitResult, error) {
	f.mu.Lock()
	f.checkIn++
	f.mu.Unlock()
	if f.submitFn != nil {
		return f.submitFn(sub)
	}
	return gateway.SubmitResult{Success: true, Message: "Checked in successfully"}, nil
}

func (f *fakeGateway) CheckOut(ctx context.Context, sub gateway.AttendanceSubmission) (gateway.SubmitResult, error) {
	f.mu.Lock()
	f.checkOut++
	f.mu.Unlock()
	if f.submitFn != nil {
		return f.submitFn(sub)
	}
	return gateway.SubmitResult{Success: true, Message: "Checked out successfully"}, nil
}

func (f *fakeGateway) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkIn, f.checkOut
}

type stubCamera struct {
	img []byte
	err error
}

func (s stubCamera) Capture(ctx context.Context) ([]byte, error) { return s.img, s.err }

type stubLocator struct {
	lat, lon float64
	err      error
}

func (s stubLocator) Locate(ctx context.Context) (float64, float64, error) {
	return s.lat, s.lon, s.err
}

func readyWorkflow(t *testing.T, gw *fakeGateway) *attendance.Workflow {
	t.Helper()
	w := attendance.NewWorkflow("EMP001", gw)
	w.OpenCamera()
	assert.NoError(t, w.CapturePhoto(context.Background(), stubCamera{img: []byte{0xff, 0xd8}}))
	assert.NoError(t, w.AcquireLocation(context.Background(), stubLocator{lat: -6.2, lon: 106.8}))
	return w
}

func TestWorkflowCaptureStates(t *testing.T) {
	ctx := context.Background()

	t.Run("capture requires camera open", func(t *testing.T) {
		w := attendance.NewWorkflow("EMP001", &fakeGateway{})
		err := w.CapturePhoto(ctx, stubCamera{img: []byte{1}})
		assert.ErrorIs(t, err, attendanceerrors.ErrCameraNotOpen)
	})

	t.Run("device failure keeps camera open", func(t *testing.T) {
		w := attendance.NewWorkflow("EMP001", &fakeGateway{})
		w.OpenCamera()

		err := w.CapturePhoto(ctx, stubCamera{err: errors.New("no device")})
		assert.ErrorIs(t, err, attendanceerrors.ErrCameraUnavailable)
		assert.Equal(t, "Failed to capture photo. Please try again.", err.Error())
		assert.Equal(t, "camera_open", w.Snapshot().CaptureState)

		// Percobaan kedua langsung bisa tanpa membuka kamera lagi.
		assert.NoError(t, w.CapturePhoto(ctx, stubCamera{img: []byte{1}}))
		assert.Equal(t, "photo_captured", w.Snapshot().CaptureState)
	})

	t.Run("retake discards previous photo", func(t *testing.T) {
		w := attendance.NewWorkflow("EMP001", &fakeGateway{})
		w.OpenCamera()
		assert.NoError(t, w.CapturePhoto(ctx, stubCamera{img: []byte{1}}))

		w.OpenCamera()
		snap := w.Snapshot()
		assert.Equal(t, "camera_open", snap.CaptureState)
	})

	t.Run("cancel returns to idle only from camera open", func(t *testing.T) {
		w := attendance.NewWorkflow("EMP001", &fakeGateway{})
		w.OpenCamera()
		w.CancelCamera()
		assert.Equal(t, "idle", w.Snapshot().CaptureState)
	})
}

func TestWorkflowLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("success acquires coordinates", func(t *testing.T) {
		w := attendance.NewWorkflow("EMP001", &fakeGateway{})
		assert.NoError(t, w.AcquireLocation(ctx, stubLocator{lat: -6.2, lon: 106.8}))

		snap := w.Snapshot()
		assert.Equal(t, "acquired", snap.LocationState)
		assert.Equal(t, "-6.2,106.8", snap.Location)
	})

	t.Run("failure keeps reason and allows retry", func(t *testing.T) {
		w := attendance.NewWorkflow("EMP001", &fakeGateway{})

		err := w.AcquireLocation(ctx, stubLocator{err: errors.New("permission denied")})
		assert.ErrorIs(t, err, attendanceerrors.ErrLocationUnavailable)

		snap := w.Snapshot()
		assert.Equal(t, "failed", snap.LocationState)
		assert.Equal(t, "permission denied", snap.LocationReason)

		assert.NoError(t, w.AcquireLocation(ctx, stubLocator{lat: 1, lon: 2}))
		assert.Equal(t, "acquired", w.Snapshot().LocationState)
	})
}

func TestWorkflowSubmitPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("photo required", func(t *testing.T) {
		gw := &fakeGateway{}
		w := attendance.NewWorkflow("EMP001", gw)
		assert.NoError(t, w.AcquireLocation(ctx, stubLocator{lat: 1, lon: 2}))

		_, err := w.Submit(ctx, "")
		assert.ErrorIs(t, err, attendanceerrors.ErrPhotoRequired)
		assert.Equal(t, "photo required", err.Error())

		in, out := gw.calls()
		assert.Zero(t, in+out)
	})

	t.Run("location required", func(t *testing.T) {
		gw := &fakeGateway{}
		w := attendance.NewWorkflow("EMP001", gw)
		w.OpenCamera()
		assert.NoError(t, w.CapturePhoto(ctx, stubCamera{img: []byte{1}}))

		_, err := w.Submit(ctx, "")
		assert.ErrorIs(t, err, attendanceerrors.ErrLocationRequired)
		assert.Equal(t, "location required", err.Error())

		in, out := gw.calls()
		assert.Zero(t, in+out)
	})
}

func TestWorkflowSubmitDiscriminator(t *testing.T) {
	ctx := context.Background()

	t.Run("no status means check-in", func(t *testing.T) {
		gw := &fakeGateway{}
		w := readyWorkflow(t, gw)

		res, err := w.Submit(ctx, "good morning")
		assert.NoError(t, err)
		assert.Equal(t, "Checked in successfully", res.Message)

		in, out := gw.calls()
		assert.Equal(t, 1, in)
		assert.Zero(t, out)
	})

	t.Run("already checked in means check-out", func(t *testing.T) {
		gw := &fakeGateway{statusFn: func() (gateway.AttendanceStatus, error) {
			return gateway.AttendanceStatus{CheckedIn: true}, nil
		}}
		w := readyWorkflow(t, gw)
		_, err := w.RefreshStatus(ctx)
		assert.NoError(t, err)

		res, err := w.Submit(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, "Checked out successfully", res.Message)

		in, out := gw.calls()
		assert.Zero(t, in)
		assert.Equal(t, 1, out)
	})
}

func TestWorkflowSubmitInFlightGuard(t *testing.T) {
	ctx := context.Background()

	release := make(chan struct{})
	gw := &fakeGateway{submitFn: func(sub gateway.AttendanceSubmission) (gateway.SubmitResult, error) {
		<-release
		return gateway.SubmitResult{Success: true, Message: "ok"}, nil
	}}
	w := readyWorkflow(t, gw)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(ctx, "")
		done <- err
	}()

	// Tunggu submit pertama masuk network call, lalu aktivasi kedua.
	assert.Eventually(t, func() bool {
		return w.Snapshot().Submitting
	}, time.Second, 5*time.Millisecond)

	_, err := w.Submit(ctx, "")
	assert.ErrorIs(t, err, attendanceerrors.ErrSubmissionInFlight)

	close(release)
	assert.NoError(t, <-done)

	in, out := gw.calls()
	assert.Equal(t, 1, in+out)
}

func TestWorkflowSubmitFailureKeepsState(t *testing.T) {
	ctx := context.Background()

	gw := &fakeGateway{submitFn: func(sub gateway.AttendanceSubmission) (gateway.SubmitResult, error) {
		return gateway.SubmitResult{}, errors.New("backend down")
	}}
	w := readyWorkflow(t, gw)

	_, err := w.Submit(ctx, "")
	assert.Error(t, err)

	// Foto dan lokasi masih utuh: retry tanpa capture ulang.
	snap := w.Snapshot()
	assert.Equal(t, "photo_captured", snap.CaptureState)
	assert.Equal(t, "acquired", snap.LocationState)
	assert.False(t, snap.Submitting)
}

func TestWorkflowCloseDiscardsLateResult(t *testing.T) {
	ctx := context.Background()

	release := make(chan struct{})
	gw := &fakeGateway{submitFn: func(sub gateway.AttendanceSubmission) (gateway.SubmitResult, error) {
		<-release
		return gateway.SubmitResult{Success: true, Message: "ok"}, nil
	}}
	w := readyWorkflow(t, gw)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(ctx, "")
		done <- err
	}()

	assert.Eventually(t, func() bool {
		return w.Snapshot().Submitting
	}, time.Second, 5*time.Millisecond)

	w.Close()
	close(release)

	// Hasil yang tiba setelah Close tidak dipakai.
	assert.Error(t, <-done)
}

func TestWorkflowSubmitPhotoName(t *testing.T) {
	ctx := context.Background()

	var got gateway.AttendanceSubmission
	gw := &fakeGateway{submitFn: func(sub gateway.AttendanceSubmission) (gateway.SubmitResult, error) {
		got = sub
		return gateway.SubmitResult{Success: true}, nil
	}}
	w := readyWorkflow(t, gw)

	_, err := w.Submit(ctx, "note")
	assert.NoError(t, err)
	assert.Equal(t, "EMP001", got.EmployeeID)
	assert.Equal(t, "-6.2,106.8", got.Location)
	assert.Equal(t, "note", got.UserMessage)
	assert.Regexp(t, `^EMP001_\d+\.jpg$`, got.PhotoName)
	assert.NotEmpty(t, got.Photo)
}
