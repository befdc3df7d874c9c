package middleware

import (
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/render"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the error page for the last error attached to the
// request. It must run before every middleware that can attach errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperrors.StatusCode(err)
		message := apperrors.Message(err)

		log := logger.WithContext(c.Request.Context()).WithError(err).WithField("status", status)
		if status >= 500 {
			log.Error("request error")
		} else {
			log.Debug("request error")
		}

		c.HTML(status, render.PageError, gin.H{
			"PageTitle": "Error",
			"Status":    status,
			"Message":   message,
			"RequestID": c.GetString(RequestIDKey),
		})
	}
}

// NotFound reports an unmatched route
func NotFound(c *gin.Context) {
	_ = c.Error(apperrors.ErrPageNotFound)
}
