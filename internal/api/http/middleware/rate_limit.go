package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond rps (with the given burst) with 429.
// A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return Stage(func(c *gin.Context) Decision {
		if !limiter.Allow() {
			RateLimitedTotal.Inc()
			return ShortCircuit(http.StatusTooManyRequests, gin.H{"error": "Too many requests."})
		}
		return Continue()
	})
}
