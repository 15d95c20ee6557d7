package middlewares

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger writes one access log line per request. Metrics scrapes and health
// checks are logged at debug.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		log := zap.S().Named("http")
		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("request", fields...)
		case path == "/metrics" || strings.HasSuffix(path, "/health"):
			log.Debugw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}
