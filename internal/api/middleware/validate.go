package middleware

import (
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	campgroundInputKey = "campground_input"
	reviewInputKey     = "review_input"
)

// ValidateCampground rejects an invalid campground[...] form with a 400
// and otherwise stores the typed input for the handler.
func ValidateCampground(v *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validation.CampgroundForm
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			abortWith(c, apperrors.NewValidationError(err.Error()))
			return
		}
		in, err := v.Campground(form)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.Set(campgroundInputKey, in)
		c.Next()
	}
}

// ValidateReview rejects an invalid review[...] form with a 400 and
// otherwise stores the typed input for the handler.
func ValidateReview(v *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validation.ReviewForm
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			abortWith(c, apperrors.NewValidationError(err.Error()))
			return
		}
		in, err := v.Review(form)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.Set(reviewInputKey, in)
		c.Next()
	}
}

// CampgroundInput returns the input stored by ValidateCampground
func CampgroundInput(c *gin.Context) (*validation.CampgroundInput, bool) {
	in, ok := c.Get(campgroundInputKey)
	if !ok {
		return nil, false
	}
	typed, ok := in.(*validation.CampgroundInput)
	return typed, ok
}

// ReviewInput returns the input stored by ValidateReview
func ReviewInput(c *gin.Context) (*validation.ReviewInput, bool) {
	in, ok := c.Get(reviewInputKey)
	if !ok {
		return nil, false
	}
	typed, ok := in.(*validation.ReviewInput)
	return typed, ok
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
