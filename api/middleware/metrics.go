package middleware

import (
	"draftroom/pkg/metrics"
	"time"

	"github.com/gin-gonic/gin"
)

// Route label for requests that matched no route.
const unmatchedRoute = "unmatched"

// Metrics records the count and duration of each request by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
