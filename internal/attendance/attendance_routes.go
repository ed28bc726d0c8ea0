package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	grp := r.Group(routeguard.PathAttendance,
		middleware.Guard(routeguard.PolicyFor(routeguard.PathAttendance)))
	{
		grp.GET("", handler.View)
		grp.POST("/camera/open", handler.OpenCamera)
		grp.POST("/camera/cancel", handler.CancelCamera)
		grp.POST("/photo", handler.CapturePhoto)
		grp.POST("/retake", handler.Retake)
		grp.POST("/location", handler.Location)
		grp.POST("/submit", handler.Submit)
		grp.POST("/leave", handler.Leave)
	}
}
