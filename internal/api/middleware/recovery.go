package middleware

import (
	"fmt"
	"runtime/debug"

	"yelpcamp/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 error for the error handler
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c.Request.Context()).
					WithField("panic", r).
					WithField("stack", string(debug.Stack())).
					Error("recovered from panic")
				_ = c.Error(fmt.Errorf("panic: %v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}
