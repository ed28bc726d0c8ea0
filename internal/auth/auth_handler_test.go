package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/spcool555/leav-managment-fe/internal/auth"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/session"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

func setupAuthRouter(gw auth.Gateway, store session.Store) (*gin.Engine, *auth.CookieCodec) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	codec := auth.NewCookieCodec("test-secret", false)
	ctl := auth.NewController(store, gw)

	r := gin.New()
	r.Use(middleware.Session(codec, ctl.Resolve))
	auth.RegisterRoutes(r, auth.NewHandler(ctl, codec))
	return r, codec
}

func TestAuthHandler_Login(t *testing.T) {
	gw := &fakeGateway{LoginFn: func(ctx context.Context, employeeID, password string) (gateway.Employee, error) {
		if password != "secret123" {
			return gateway.Employee{}, apperror.New(apperror.CodeAuth, "Invalid employee ID or password", http.StatusUnauthorized)
		}
		return gateway.Employee{
			ID:       "EMP001",
			FullName: "Budi Santoso",
			Email:    "budi@example.com",
			Phone:    "0812345678",
		}, nil
	}}
	router, _ := setupAuthRouter(gw, session.NewMemoryStore())

	t.Run("success sets session cookie and redirect", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"employee_id":"EMP001","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var cookie *http.Cookie
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == session.CookieName {
				cookie = ck
			}
		}
		if assert.NotNil(t, cookie) {
			assert.True(t, cookie.HttpOnly)
			assert.NotEmpty(t, cookie.Value)
		}

		var body struct {
			Ok   bool `json:"ok"`
			Data struct {
				Redirect string `json:"redirect"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, "/dashboard", body.Data.Redirect)
	})

	t.Run("rejection surfaces server message without cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"employee_id":"EMP001","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
		assert.Contains(t, rec.Body.String(), "Invalid employee ID or password")
	})

	t.Run("missing fields rejected before any network call", func(t *testing.T) {
		called := false
		gw := &fakeGateway{LoginFn: func(ctx context.Context, employeeID, password string) (gateway.Employee, error) {
			called = true
			return gateway.Employee{}, nil
		}}
		router, _ := setupAuthRouter(gw, session.NewMemoryStore())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"employee_id":"","password":""}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})
}

func TestAuthHandler_LogoutClearsCookieAndCache(t *testing.T) {
	store := session.NewMemoryStore()
	sess := session.Session{EmployeeID: "EMP001", FullName: "Budi", Email: "b@e.com", Phone: "08"}
	assert.NoError(t, store.Persist(context.Background(), "sid-1", sess))

	router, codec := setupAuthRouter(&fakeGateway{}, store)
	token, err := codec.Issue("sid-1")
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "/login")

	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)

	// Record sesi ikut dibuang dari store.
	restored, err := store.Restore(context.Background(), "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, restored)
}

func TestAuthHandler_Me(t *testing.T) {
	store := session.NewMemoryStore()
	sess := session.Session{EmployeeID: "EMP001", FullName: "Budi", Email: "b@e.com", Phone: "08"}
	assert.NoError(t, store.Persist(context.Background(), "sid-1", sess))

	router, codec := setupAuthRouter(&fakeGateway{}, store)

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("authenticated gets identity", func(t *testing.T) {
		token, err := codec.Issue("sid-1")
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "EMP001")
	})
}
