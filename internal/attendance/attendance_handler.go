package attendance

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
	"github.com/spcool555/leav-managment-fe/internal/shared/response"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) workflow(c *gin.Context) *Workflow {
	st := middleware.CurrentState(c)
	return h.registry.Get(middleware.SessionID(c), st.Session.EmployeeID)
}

// View membuka layar absensi: refresh status dulu supaya diskriminator
// check-in/check-out selalu dari fetch terbaru.
func (h *Handler) View(c *gin.Context) {
	w := h.workflow(c)
	if _, err := w.RefreshStatus(c.Request.Context()); err != nil {
		response.Error(c, http.StatusBadGateway, apperror.CodeTransport, "Failed to fetch attendance status", nil)
		return
	}
	response.Success(c, http.StatusOK, w.Snapshot())
}

func (h *Handler) OpenCamera(c *gin.Context) {
	w := h.workflow(c)
	w.OpenCamera()
	response.Success(c, http.StatusOK, w.Snapshot())
}

func (h *Handler) CancelCamera(c *gin.Context) {
	w := h.workflow(c)
	w.CancelCamera()
	response.Success(c, http.StatusOK, w.Snapshot())
}

func (h *Handler) CapturePhoto(c *gin.Context) {
	w := h.workflow(c)

	file, err := c.FormFile("photo")
	if err != nil {
		// Browser gagal menyertakan frame kamera: jalur error device.
		file = nil
	}

	if err := w.CapturePhoto(c.Request.Context(), &formCamera{file: file}); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, w.Snapshot())
}

func (h *Handler) Retake(c *gin.Context) {
	w := h.workflow(c)
	w.OpenCamera()
	response.Success(c, http.StatusOK, w.Snapshot())
}

func (h *Handler) Location(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	w := h.workflow(c)
	if err := w.AcquireLocation(c.Request.Context(), &formLocator{req: req}); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, w.Snapshot())
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	w := h.workflow(c)
	res, err := w.Submit(c.Request.Context(), req.UserMessage)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Sukses: workflow selesai, kembali ke dashboard dengan pesan server.
	h.registry.Drop(middleware.SessionID(c))
	response.Success(c, http.StatusOK, SubmitResponse{
		Message:  res.Message,
		Redirect: routeguard.PathDashboard,
	})
}

// Leave menutup workflow saat user meninggalkan layar absensi; response yang
// masih in-flight akan dibuang tanpa memutasi state.
func (h *Handler) Leave(c *gin.Context) {
	h.registry.Drop(middleware.SessionID(c))
	response.Success(c, http.StatusOK, gin.H{"redirect": routeguard.PathDashboard})
}

// formCamera membaca frame yang dikirim browser sebagai capability Camera.
type formCamera struct {
	file *multipart.FileHeader
}

func (f *formCamera) Capture(ctx context.Context) ([]byte, error) {
	if f.file == nil {
		return nil, errors.New("no camera frame supplied")
	}
	src, err := f.file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// formLocator meneruskan hasil geolocation browser sebagai capability Locator.
type formLocator struct {
	req LocationRequest
}

func (f *formLocator) Locate(ctx context.Context) (float64, float64, error) {
	if f.req.Error != "" {
		return 0, 0, errors.New(f.req.Error)
	}
	if f.req.Latitude == nil || f.req.Longitude == nil {
		return 0, 0, errors.New("location unavailable")
	}
	return *f.req.Latitude, *f.req.Longitude, nil
}
