package session

// Phase adalah tagged variant status autentikasi. Loading hanya muncul sebelum
// Restore selesai dan tidak pernah dikunjungi lagi setelah resolve.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// AuthState memegang snapshot immutable dari status login.
// Session hanya terisi pada PhaseAuthenticated.
type AuthState struct {
	Phase   Phase
	Session *Session
}

func Loading() AuthState {
	return AuthState{Phase: PhaseLoading}
}

func Anonymous() AuthState {
	return AuthState{Phase: PhaseAnonymous}
}

func Authenticated(s Session) AuthState {
	return AuthState{Phase: PhaseAuthenticated, Session: &s}
}

func (st AuthState) Authenticated() bool {
	return st.Phase == PhaseAuthenticated && st.Session != nil
}

func (st AuthState) IsAdmin() bool {
	return st.Authenticated() && st.Session.IsAdmin
}
