package middleware

import (
	"strconv"
	"time"

	"yelpcamp/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records the latency of every request by route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequestDuration(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
