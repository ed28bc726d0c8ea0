package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

func buildAttendanceForm(sub AttendanceSubmission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"employee_id":  sub.EmployeeID,
		"location":     sub.Location,
		"user_message": sub.UserMessage,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	name := sub.PhotoName
	if name == "" {
		name = sub.EmployeeID + ".jpg"
	}
	part, err := createFilePart(w, "photo", name, "image/jpeg")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(sub.Photo); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func buildLeaveForm(sub LeaveSubmission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"employee_id":     sub.EmployeeID,
		"leave_type":      sub.LeaveType,
		"start_date":      sub.StartDate,
		"end_date":        sub.EndDate,
		"reason":          sub.Reason,
		"is_half_day":     strconv.FormatBool(sub.IsHalfDay),
		"half_day_period": sub.HalfDayPeriod,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if sub.Document != nil {
		part, err := createFilePart(w, "supporting_document", sub.Document.Name, sub.Document.MIME)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(sub.Document.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// createFilePart seperti CreateFormFile tapi dengan Content-Type file asli,
// bukan application/octet-stream.
func createFilePart(w *multipart.Writer, field, filename, contentType string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(field), escapeQuotes(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
