package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLabel formats the timing label for a request, e.g. "[GET] /projects?title=Alp".
func RequestLabel(method, url string) string {
	return "[" + strings.ToUpper(method) + "] " + url
}

// RequestLogger times every request. The rest of the chain runs exactly once
// between the start and end timestamps; the response is not touched.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		label := RequestLabel(c.Request.Method, c.Request.URL.RequestURI())
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := strconv.Itoa(status)
		RequestDuration.WithLabelValues(c.Request.Method, route, code).Observe(elapsed.Seconds())
		RequestsTotal.WithLabelValues(c.Request.Method, route, code).Inc()

		logger.Info("request completed",
			zap.String("label", label),
			zap.Duration("elapsed", elapsed),
			zap.Int("status", status),
			zap.String("request_id", c.GetString(requestIDCtxKey)),
		)
	}
}
