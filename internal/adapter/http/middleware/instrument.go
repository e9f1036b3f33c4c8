package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver receives the latency of every finished request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Instrument reports request latency labelled by the matched route
// template, so /countries/TR and /countries/GB share one series.
func Instrument(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
