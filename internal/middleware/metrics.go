package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type httpObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Metrics records per-request counters and latency. The route template
// is used as the label so path parameters do not explode cardinality.
func Metrics(observer httpObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
