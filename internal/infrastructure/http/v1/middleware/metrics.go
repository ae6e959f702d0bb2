package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taproom/internal/infrastructure/metrics"
)

// statusAborted labels requests whose handler panicked past Recovery,
// such as a stream dropped with http.ErrAbortHandler.
const statusAborted = "aborted"

// Metrics records request counts and latencies per matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			rec := recover()

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request.Method
			status := strconv.Itoa(c.Writer.Status())
			if rec != nil {
				status = statusAborted
			}

			metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			metrics.HTTPRequests.WithLabelValues(method, route, status).Inc()

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
