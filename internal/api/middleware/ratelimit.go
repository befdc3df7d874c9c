package middleware

import (
	"net/http"

	apperrors "yelpcamp/internal/errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ErrTooManyRequests is attached when the rate limit is exceeded
var ErrTooManyRequests = apperrors.NewHTTPError(http.StatusTooManyRequests, "Too many requests")

// RateLimit admits at most rps requests per second with the given burst,
// shared by all clients.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			_ = c.Error(ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
