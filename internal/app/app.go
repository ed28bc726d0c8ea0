package app

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spcool555/leav-managment-fe/internal/auth"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/middleware"
	"github.com/spcool555/leav-managment-fe/internal/session"
	"github.com/spcool555/leav-managment-fe/internal/shared/connection"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	var rdb *redis.Client
	var store session.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		zap.L().Info("Redis connection established")
		rdb = client
		store = session.NewRedisStore(rdb)
	} else {
		// Tanpa Redis session hilang saat restart; cukup untuk dev lokal.
		zap.L().Warn("REDIS_ADDR empty, falling back to in-memory session store")
		store = session.NewMemoryStore()
	}

	baseURL := os.Getenv("HR_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000/api"
	}
	gw := gateway.New(baseURL, &http.Client{Timeout: 15 * time.Second})

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	isProd := os.Getenv("APP_ENV") == "production"
	codec := auth.NewCookieCodec(secret, isProd)

	controller := auth.NewController(store, gw)

	// 2. Global middleware: request id + logger, lalu restore session per request
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.Session(codec, controller.Resolve))

	// 3. Register Modules & Routes
	registerModules(router, rdb, gw, codec, controller)

	return nil
}
