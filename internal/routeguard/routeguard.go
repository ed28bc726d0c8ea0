package routeguard

import (
	"github.com/spcool555/leav-managment-fe/internal/session"
)

const (
	PathRoot       = "/"
	PathLogin      = "/login"
	PathDashboard  = "/dashboard"
	PathAttendance = "/attendance"
	PathAdmin      = "/admin"
)

type Role int

const (
	AnyRole Role = iota
	AdminOnly
	EmployeeOnly
)

// Policy dilekatkan per route dan menjadi input murni keputusan guard.
type Policy struct {
	RequiresAuth bool
	Role         Role
}

// Decision: Redirect kosong berarti render; Waiting true berarti render
// indikator tunggu selama AuthState masih Loading.
type Decision struct {
	Redirect string
	Waiting  bool
}

func Render() Decision { return Decision{} }

func RedirectTo(path string) Decision { return Decision{Redirect: path} }

// Landing mengembalikan route pendaratan sesuai role.
func Landing(isAdmin bool) string {
	if isAdmin {
		return PathAdmin
	}
	return PathDashboard
}

// Decide adalah fungsi murni (state, policy, path) -> keputusan. Tidak ada
// caching: dievaluasi ulang pada setiap perubahan state maupun route.
func Decide(st session.AuthState, p Policy, path string) Decision {
	// 1. Masih restore dari store: render indikator tunggu, jangan redirect.
	if st.Phase == session.PhaseLoading {
		return Decision{Waiting: true}
	}

	// 2. Route terproteksi tanpa login.
	if p.RequiresAuth && st.Phase == session.PhaseAnonymous {
		return RedirectTo(PathLogin)
	}

	// 3. Route khusus admin, user bukan admin.
	if p.Role == AdminOnly && !st.IsAdmin() {
		return RedirectTo(PathDashboard)
	}

	// 4. Route khusus employee, user adalah admin.
	if p.Role == EmployeeOnly && st.IsAdmin() {
		return RedirectTo(PathAdmin)
	}

	// 5. Sudah login tapi membuka halaman login: lempar ke landing sesuai role.
	if path == PathLogin && st.Authenticated() {
		return RedirectTo(Landing(st.IsAdmin()))
	}

	// 6. Render konten yang diminta.
	return Render()
}
