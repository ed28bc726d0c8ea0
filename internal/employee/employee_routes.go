package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	grp := r.Group(routeguard.PathAdmin+"/employees",
		middleware.Guard(routeguard.PolicyFor(routeguard.PathAdmin)))
	{
		grp.GET("", handler.GetAll)
		grp.POST("", handler.Create)
		grp.GET("/:id", handler.GetByID)
		grp.PUT("/:id/password", handler.ChangePassword)
	}
}
