package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"taproom/pkg/logger"
)

// Logger logs every request with its status and latency. A request whose
// handler panicked past Recovery is logged with aborted=true and the panic
// is passed on.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

		defer func() {
			rec := recover()

			fields := []any{
				"method", c.Request.Method,
				"path", path,
				"status", c.Writer.Status(),
				"latency_ms", time.Since(start).Milliseconds(),
				"bytes", c.Writer.Size(),
				"client_ip", c.ClientIP(),
			}
			if query != "" {
				fields = append(fields, "query", query)
			}
			if errs := c.Errors.String(); errs != "" {
				fields = append(fields, "error", errs)
			}
			if rec != nil {
				fields = append(fields, "aborted", true)
			}

			log.WithContext(c.Request.Context()).Infow("http request", fields...)

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
