package session

import "context"

// CookieName adalah storage key sesi di sisi browser.
const CookieName = "portal_session"

// Session adalah identitas login yang dipegang portal selama satu sesi.
// Either fully present or absent: record parsial dianggap corrupt dan dibuang.
type Session struct {
	EmployeeID string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsAdmin    bool   `json:"is_admin"`
}

// Valid memastikan semua field identitas terisi.
func (s Session) Valid() bool {
	return s.EmployeeID != "" && s.FullName != "" && s.Email != "" && s.Phone != ""
}

//go:generate mockgen -source=session.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	// Restore membaca record sesi. (nil, nil) berarti tidak ada sesi; record
	// corrupt dibersihkan di sini dan tidak pernah naik sebagai error parse.
	Restore(ctx context.Context, sid string) (*Session, error)
	Persist(ctx context.Context, sid string, s Session) error
	Clear(ctx context.Context, sid string) error
}
