package handlers

import (
	"net/http"

	"yelpcamp/internal/api/middleware"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for campground reviews
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create handles POST /campgrounds/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	campgroundID, ok := pathID(c, "id", apperrors.ErrCampgroundNotFound)
	if !ok {
		return
	}
	in, ok := middleware.ReviewInput(c)
	if !ok {
		_ = c.Error(apperrors.NewValidationError(`"review" is required`))
		return
	}

	if _, err := h.reviewService.Create(c.Request.Context(), campgroundID, in); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, campgroundPath(campgroundID))
}

// Delete handles DELETE /campgrounds/:id/reviews/:reviewId
func (h *ReviewHandler) Delete(c *gin.Context) {
	campgroundID, ok := pathID(c, "id", apperrors.ErrCampgroundNotFound)
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "reviewId", apperrors.ErrReviewNotFound)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), campgroundID, reviewID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, campgroundPath(campgroundID))
}
