package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/logging"
)

// RequestLogger writes one structured line per completed request. Only the
// URL path is logged, never the query string: the list endpoint carries the
// caller's token as a query parameter and it must not reach the logs.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if rid := c.GetString(RequestIDKey); rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}
		logger.Info("request completed", fields...)
	}
}
