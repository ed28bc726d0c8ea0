package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

// Client adalah satu-satunya jalur komunikasi portal ke REST API backend HR.
// Error dinormalisasi ke apperror: kegagalan jaringan jadi TRANSPORT_ERROR,
// respon non-2xx jadi SERVER_ERROR dengan pesan dari server bila ada.
type Client struct {
	base   string
	http   *http.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func New(baseURL string, httpClient *http.Client, logger ...*zap.Logger) *Client {
	l := zap.L().Named("gateway")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   httpClient,
		logger: l,
	}
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, employeeID, password string) (Employee, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", LoginRequest{
		EmployeeID: employeeID,
		Password:   password,
	}, &out)
	if err != nil {
		// Login gagal tampil inline sebagai AuthError, pesan server menang.
		var appErr *apperror.AppError
		if asAppError(err, &appErr) && appErr.Code != apperror.CodeTransport && appErr.Message != "" {
			return Employee{}, apperror.New(apperror.CodeAuth, appErr.Message, http.StatusUnauthorized)
		}
		return Employee{}, apperror.New(apperror.CodeAuth, "Login failed", http.StatusUnauthorized)
	}
	if !out.Success {
		return Employee{}, apperror.New(apperror.CodeAuth, "Login failed", http.StatusUnauthorized)
	}
	return out.Employee, nil
}

// --- Attendance ---

func (c *Client) AttendanceStatus(ctx context.Context, employeeID string) (AttendanceStatus, error) {
	// Coalesce fetch status yang datang bersamaan untuk employee yang sama.
	v, err, _ := c.sf.Do("status:"+employeeID, func() (any, error) {
		var out AttendanceStatus
		if err := c.doJSON(ctx, http.MethodGet, "/attendance/status/"+url.PathEscape(employeeID), nil, &out); err != nil {
			return AttendanceStatus{}, err
		}
		return out, nil
	})
	if err != nil {
		return AttendanceStatus{}, err
	}
	return v.(AttendanceStatus), nil
}

func (c *Client) CheckIn(ctx context.Context, sub AttendanceSubmission) (SubmitResult, error) {
	return c.submitAttendance(ctx, "/attendance/check-in", sub)
}

func (c *Client) CheckOut(ctx context.Context, sub AttendanceSubmission) (SubmitResult, error) {
	return c.submitAttendance(ctx, "/attendance/check-out", sub)
}

func (c *Client) submitAttendance(ctx context.Context, endpoint string, sub AttendanceSubmission) (SubmitResult, error) {
	body, contentType, err := buildAttendanceForm(sub)
	if err != nil {
		return SubmitResult{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to encode attendance", http.StatusInternalServerError)
	}

	var out SubmitResult
	if err := c.doRaw(ctx, http.MethodPost, endpoint, body, contentType, &out); err != nil {
		return SubmitResult{}, err
	}
	return out, nil
}

// --- Admin: attendance logs ---

func (c *Client) AdminAttendance(ctx context.Context, f AttendanceLogFilter) ([]AttendanceLog, error) {
	var out []AttendanceLog
	if err := c.doJSON(ctx, http.MethodGet, "/admin/attendance?"+logQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminAttendanceExport(ctx context.Context, f AttendanceLogFilter) (FileDownload, error) {
	return c.download(ctx, "/admin/attendance/export?"+logQuery(f))
}

func logQuery(f AttendanceLogFilter) string {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employee_id", f.EmployeeID)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q.Encode()
}

// --- Admin: employees ---

func (c *Client) AdminEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.doJSON(ctx, http.MethodGet, "/admin/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	var out CreateEmployeeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/admin/employees", req, &out); err != nil {
		return Employee{}, err
	}
	return out.Employee, nil
}

func (c *Client) AdminEmployee(ctx context.Context, id string) (Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, http.MethodGet, "/admin/employee/"+url.PathEscape(id), nil, &out); err != nil {
		var appErr *apperror.AppError
		if asAppError(err, &appErr) && appErr.HTTPStatus == http.StatusNotFound {
			return Employee{}, apperror.ErrNotFound
		}
		return Employee{}, err
	}
	return out, nil
}

func (c *Client) UpdatePassword(ctx context.Context, id, newPassword string) error {
	return c.doJSON(ctx, http.MethodPut, "/admin/employee/"+url.PathEscape(id)+"/password",
		map[string]string{"new_password": newPassword}, nil)
}

func (c *Client) AdminStats(ctx context.Context) (AdminStats, error) {
	var out AdminStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return AdminStats{}, err
	}
	return out, nil
}

// --- Leave ---

func (c *Client) LeaveStats(ctx context.Context, employeeID string) (LeaveStats, error) {
	v, err, _ := c.sf.Do("leave-stats:"+employeeID, func() (any, error) {
		var out LeaveStats
		if err := c.doJSON(ctx, http.MethodGet, "/leave/stats/"+url.PathEscape(employeeID), nil, &out); err != nil {
			return LeaveStats{}, err
		}
		return out, nil
	})
	if err != nil {
		return LeaveStats{}, err
	}
	return v.(LeaveStats), nil
}

func (c *Client) EmployeeLeaves(ctx context.Context, employeeID string) ([]LeaveRecord, error) {
	var out []LeaveRecord
	if err := c.doJSON(ctx, http.MethodGet, "/leave/employee/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitLeave(ctx context.Context, sub LeaveSubmission) (string, error) {
	return c.sendLeave(ctx, http.MethodPost, "/leave/request", sub)
}

func (c *Client) UpdateLeave(ctx context.Context, id int, sub LeaveSubmission) (string, error) {
	return c.sendLeave(ctx, http.MethodPut, fmt.Sprintf("/leave/request/%d", id), sub)
}

func (c *Client) sendLeave(ctx context.Context, method, endpoint string, sub LeaveSubmission) (string, error) {
	body, contentType, err := buildLeaveForm(sub)
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Failed to encode leave request", http.StatusInternalServerError)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.doRaw(ctx, method, endpoint, body, contentType, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) AdminLeaves(ctx context.Context, status string) ([]LeaveRecord, error) {
	endpoint := "/admin/leaves"
	if status != "" && status != "all" {
		endpoint += "?status=" + url.QueryEscape(status)
	}
	var out []LeaveRecord
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveLeave(ctx context.Context, id int, adminComment string) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/leave/%d/approve", id),
		map[string]string{"admin_comment": adminComment}, nil)
}

func (c *Client) RejectLeave(ctx context.Context, id int, adminComment string) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/leave/%d/reject", id),
		map[string]string{"admin_comment": adminComment}, nil)
}

// --- Files ---

func (c *Client) File(ctx context.Context, name string) (FileDownload, error) {
	return c.download(ctx, "/uploads/"+url.PathEscape(name))
}

// --- plumbing ---

func (c *Client) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "Failed to encode request", http.StatusInternalServerError)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.doRaw(ctx, method, endpoint, body, contentType, out)
}

func (c *Client) doRaw(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+endpoint, body)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to build request", http.StatusInternalServerError)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeTransport, "Request failed", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeTransport, "Request failed", http.StatusBadGateway)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(raw)
		c.logger.Warn("backend returned error",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return apperror.New(CodeFromStatus(resp.StatusCode), msg, resp.StatusCode)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.Wrap(err, apperror.CodeServer, "Unexpected response from server", http.StatusBadGateway)
	}
	return nil
}

func (c *Client) download(ctx context.Context, endpoint string) (FileDownload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+endpoint, nil)
	if err != nil {
		return FileDownload{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to build request", http.StatusInternalServerError)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return FileDownload{}, apperror.Wrap(err, apperror.CodeTransport, "Request failed", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return FileDownload{}, apperror.Wrap(err, apperror.CodeTransport, "Request failed", http.StatusBadGateway)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FileDownload{}, apperror.New(CodeFromStatus(resp.StatusCode), serverMessage(raw), resp.StatusCode)
	}

	name := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			name = params["filename"]
		}
	}
	if name == "" {
		name = path.Base(endpoint)
	}
	return FileDownload{
		Name:        name,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        raw,
	}, nil
}

// serverMessage mengambil pesan error dari body backend ({"error": ...} atau
// {"message": ...}); fallback ke pesan generik.
func serverMessage(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "Request failed"
}

// CodeFromStatus memetakan status non-2xx ke kode taxonomy.
func CodeFromStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return apperror.CodeUnauthorized
	case http.StatusForbidden:
		return apperror.CodeForbidden
	case http.StatusNotFound:
		return apperror.CodeNotFound
	default:
		return apperror.CodeServer
	}
}

func asAppError(err error, target **apperror.AppError) bool {
	if e, ok := err.(*apperror.AppError); ok {
		*target = e
		return true
	}
	return false
}
