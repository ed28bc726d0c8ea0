package adminreview

import (
	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	grp := r.Group(routeguard.PathAdmin,
		middleware.Guard(routeguard.PolicyFor(routeguard.PathAdmin)))
	{
		grp.GET("", handler.Home)
		grp.GET("/leaves", handler.Leaves)
		grp.POST("/leaves/:id/action", handler.BeginAction)
		grp.POST("/leaves/action/cancel", handler.CancelAction)
		grp.POST("/leaves/action/confirm", handler.ConfirmAction)
		grp.GET("/attendance", handler.Attendance)
		grp.GET("/attendance/export", handler.AttendanceExport)
	}
}
