package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST(routeguard.PathLogin, middleware.RateLimitByIP(0.5, 5), handler.Login)
	r.POST("/logout", handler.Logout)
	r.GET("/me", handler.Me)
}
