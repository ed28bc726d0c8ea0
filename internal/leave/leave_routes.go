package leave

import (
	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	grp := r.Group(routeguard.PathDashboard,
		middleware.Guard(routeguard.PolicyFor(routeguard.PathDashboard)))
	{
		grp.GET("", handler.Dashboard)
		grp.POST("/leaves", handler.SubmitLeave)
		grp.PUT("/leaves/:id", handler.UpdateLeave)
	}
}
