package middleware

import (
	"draftroom/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one entry per request once the handlers are done.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(RequestIDKey)),
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			if len(c.Errors) > 0 {
				fields = append(fields, logger.String("errors", c.Errors.String()))
			}
			log.Error(c.Request.Context(), "request failed", fields...)
			return
		}

		log.Info(c.Request.Context(), "request", fields...)
	}
}
