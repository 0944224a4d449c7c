package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"anonboard/pkg/metrics"
)

// RequestCounter records one http_requests_total sample per request, keyed
// by method, matched route and status.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
