package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextLogger = "logger"

// RequestLogger tags every request with an id and writes one structured
// line per request. The request-scoped logger is stored in the context
// for handlers via Logger.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)
		c.Set(contextLogger, logger.With(slog.String("request_id", requestID)))

		start := time.Now()
		c.Next()

		Logger(c).Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// Logger returns the request-scoped logger, or the default logger when
// the middleware did not run (tests wiring handlers directly).
func Logger(c *gin.Context) *slog.Logger {
	if v, exists := c.Get(contextLogger); exists {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
