package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL, srv.Client())
}

func TestClientLogin(t *testing.T) {
	t.Run("success returns employee", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"employee":{"id":"EMP001","full_name":"Budi Santoso","email":"budi@example.com","phone":"0812","is_admin":false}}`))
		})

		emp, err := c.Login(context.Background(), "EMP001", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "EMP001", emp.ID)
		assert.Equal(t, "Budi Santoso", emp.FullName)
	})

	t.Run("rejection surfaces server message", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid employee ID or password"}`))
		})

		_, err := c.Login(context.Background(), "EMP001", "wrong")
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, apperror.CodeAuth, appErr.Code)
			assert.Equal(t, "Invalid employee ID or password", appErr.Message)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
		}
	})

	t.Run("transport failure falls back to generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		client := srv.Client()
		srv.Close()
		c := gateway.New(srv.URL, client)

		_, err := c.Login(context.Background(), "EMP001", "secret123")
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, apperror.CodeAuth, appErr.Code)
			assert.Equal(t, "Login failed", appErr.Message)
		}
	})
}

func TestClientCheckInEncodesMultipart(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attendance/check-in", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(32<<20))

		assert.Equal(t, "EMP001", r.FormValue("employee_id"))
		assert.Equal(t, "-6.2,106.8", r.FormValue("location"))
		assert.Equal(t, "on time", r.FormValue("user_message"))

		file, header, err := r.FormFile("photo")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "EMP001_1.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Checked in successfully"}`))
	})

	res, err := c.CheckIn(context.Background(), gateway.AttendanceSubmission{
		EmployeeID:  "EMP001",
		Location:    "-6.2,106.8",
		UserMessage: "on time",
		PhotoName:   "EMP001_1.jpg",
		Photo:       []byte{0xff, 0xd8, 0xff},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Checked in successfully", res.Message)
}

func TestClientSubmitLeaveEncodesMultipart(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/leave/request", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(32<<20))

		assert.Equal(t, "EMP001", r.FormValue("employee_id"))
		assert.Equal(t, "casual", r.FormValue("leave_type"))
		assert.Equal(t, "2026-09-01", r.FormValue("start_date"))
		assert.Equal(t, "2026-09-01", r.FormValue("end_date"))
		assert.Equal(t, "true", r.FormValue("is_half_day"))
		assert.Equal(t, "first_half", r.FormValue("half_day_period"))

		file, header, err := r.FormFile("supporting_document")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "note.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Leave request submitted successfully"}`))
	})

	msg, err := c.SubmitLeave(context.Background(), gateway.LeaveSubmission{
		EmployeeID:    "EMP001",
		LeaveType:     "casual",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-01",
		Reason:        "family matter at home",
		IsHalfDay:     true,
		HalfDayPeriod: "first_half",
		Document: &gateway.Attachment{
			Name: "note.pdf",
			MIME: "application/pdf",
			Size: 4,
			Data: []byte("%PDF"),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Leave request submitted successfully", msg)
}

func TestClientAdminLeavesFilter(t *testing.T) {
	var gotQuery string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := c.AdminLeaves(context.Background(), "pending")
	assert.NoError(t, err)
	assert.Equal(t, "status=pending", gotQuery)

	_, err = c.AdminLeaves(context.Background(), "all")
	assert.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestClientErrorNormalization(t *testing.T) {
	t.Run("not found maps to taxonomy", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Employee not found"}`))
		})

		_, err := c.AdminEmployee(context.Background(), "GHOST")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("server error keeps backend message", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"database unavailable"}`))
		})

		_, err := c.AdminStats(context.Background())
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, apperror.CodeServer, appErr.Code)
			assert.Equal(t, "database unavailable", appErr.Message)
		}
	})

	t.Run("unparseable body falls back to generic message", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		})

		_, err := c.AdminStats(context.Background())
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, "Request failed", appErr.Message)
		}
	})
}

func TestClientFileDownload(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads/photo.jpg", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Disposition", `attachment; filename="EMP001_photo.jpg"`)
		w.Write([]byte{0xff, 0xd8})
	})

	file, err := c.File(context.Background(), "photo.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "EMP001_photo.jpg", file.Name)
	assert.Equal(t, "image/jpeg", file.ContentType)
	assert.Equal(t, []byte{0xff, 0xd8}, file.Data)
}
