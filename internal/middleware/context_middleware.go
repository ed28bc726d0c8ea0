package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spcool555/leav-managment-fe/internal/shared/contextutil"
)

func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Handle Request ID
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		// 2. Scoped logger yang sudah ditempeli metadata request
		reqLogger := logger.With(
			zap.String("request_id", rid),
		)

		// 3. Propagasi ke standard context agar layer workflow/gateway bisa
		// ambil via contextutil tanpa tahu Gin
		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
