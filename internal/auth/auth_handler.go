package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
	"github.com/spcool555/leav-managment-fe/internal/shared/response"
)

type Handler struct {
	controller *Controller
	cookies    *CookieCodec
}

func NewHandler(controller *Controller, cookies *CookieCodec) *Handler {
	return &Handler{controller: controller, cookies: cookies}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		response.FromError(c, mapped)
		return
	}

	sid, sess, redirect, err := h.controller.Login(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := h.cookies.Issue(sid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "An unexpected error occurred", nil)
		return
	}
	h.cookies.Set(c, token)

	response.Success(c, http.StatusOK, LoginResponse{
		Employee: sess,
		Redirect: redirect,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	sid := middleware.SessionID(c)
	redirect := h.controller.Logout(c.Request.Context(), sid)

	h.cookies.Clear(c)
	// Replace semantics: konten terproteksi tidak boleh muncul lewat tombol back.
	c.Header("Cache-Control", "no-store")

	response.Success(c, http.StatusOK, gin.H{"redirect": redirect})
}

func (h *Handler) Me(c *gin.Context) {
	st := middleware.CurrentState(c)
	if !st.Authenticated() {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication is required", nil)
		return
	}
	response.Success(c, http.StatusOK, st.Session)
}
