package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/session"
	"github.com/spcool555/leav-managment-fe/internal/shared/contextutil"
)

const (
	authStateKey = "auth_state"
	sessionIDKey = "session_id"
)

type CookieDecoder interface {
	Decode(token string) (sid string, err error)
}

type StateResolver func(ctx context.Context, sid string) session.AuthState

// Session me-resolve AuthState dari cookie sesi sebelum guard jalan.
// Cookie hilang/invalid berarti Anonymous; tidak pernah menolak request di sini.
func Session(codec CookieDecoder, resolve StateResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(session.CookieName); err == nil && raw != "" {
			if decoded, err := codec.Decode(raw); err == nil {
				sid = decoded
			}
		}

		st := resolve(c.Request.Context(), sid)

		c.Set(sessionIDKey, sid)
		c.Set(authStateKey, st)

		ctx := c.Request.Context()
		if sid != "" {
			ctx = contextutil.WithSessionID(ctx, sid)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// CurrentState mengambil AuthState hasil middleware Session.
// Tanpa middleware, state dianggap masih Loading.
func CurrentState(c *gin.Context) session.AuthState {
	if v, ok := c.Get(authStateKey); ok {
		if st, ok := v.(session.AuthState); ok {
			return st
		}
	}
	return session.Loading()
}

// SessionID mengambil sid yang sudah terverifikasi dari cookie.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
