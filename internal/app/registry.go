package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/spcool555/leav-managment-fe/internal/adminreview"
	"github.com/spcool555/leav-managment-fe/internal/attendance"
	"github.com/spcool555/leav-managment-fe/internal/auth"
	"github.com/spcool555/leav-managment-fe/internal/employee"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/leave"
	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
	"github.com/spcool555/leav-managment-fe/internal/shared/response"
)

func registerModules(
	router *gin.Engine,
	rdb *redis.Client,
	gw *gateway.Client,
	codec *auth.CookieCodec,
	controller *auth.Controller,
) {
	// --- Registries & Services ---
	attendanceRegistry := attendance.NewRegistry(gw)
	reviewRegistry := adminreview.NewRegistry(gw)
	employeeService := employee.NewService(gw, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(controller, codec)
	attendanceHandler := attendance.NewHandler(attendanceRegistry)
	leaveHandler := leave.NewHandler(gw, gw)
	adminHandler := adminreview.NewHandler(reviewRegistry, gw)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	auth.RegisterRoutes(router, authHandler)
	attendance.RegisterRoutes(router, attendanceHandler)
	leave.RegisterRoutes(router, leaveHandler)
	adminreview.RegisterRoutes(router, adminHandler)
	employee.RegisterRoutes(router, employeeHandler)

	registerPortalRoutes(router, gw)
}

// registerPortalRoutes memasang route lintas-modul: root, halaman login, dan
// proxy file upload backend.
func registerPortalRoutes(router *gin.Engine, gw *gateway.Client) {
	// Root melempar user yang sudah login ke landing sesuai role; guard
	// sudah mengurus yang anonymous.
	router.GET(routeguard.PathRoot,
		middleware.Guard(routeguard.PolicyFor(routeguard.PathRoot)),
		func(c *gin.Context) {
			st := middleware.CurrentState(c)
			c.Redirect(http.StatusFound, routeguard.Landing(st.IsAdmin()))
		})

	// Halaman login publik; user yang sudah login di-redirect oleh guard.
	router.GET(routeguard.PathLogin,
		middleware.Guard(routeguard.PolicyFor(routeguard.PathLogin)),
		func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{"page": "login"})
		})

	// Proxy file upload (foto absensi, dokumen cuti) supaya browser tidak
	// perlu akses langsung ke backend.
	router.GET("/files/:name",
		middleware.Guard(routeguard.Policy{RequiresAuth: true, Role: routeguard.AnyRole}),
		func(c *gin.Context) {
			file, err := gw.File(c.Request.Context(), c.Param("name"))
			if err != nil {
				response.FromError(c, err)
				return
			}
			c.Data(http.StatusOK, file.ContentType, file.Data)
		})
}
