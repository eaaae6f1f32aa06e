package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hiroshi-tamura/file-agent/internal/shared/id"
)

// RequestIDKey is the gin context key the logger middleware reads.
const RequestIDKey = "request_id"

// RequestIDHeader carries the generated ID back to the caller.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a fresh correlation ID and echoes it in
// the response headers so a caller can quote it when reporting a problem.
func RequestID() gin.HandlerFunc {
	gen := id.NewGenerator()
	return func(c *gin.Context) {
		rid := gen.NewRequest().String()
		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
