package handlers

import (
	"net/http"

	"yelpcamp/internal/api/middleware"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/render"
	"yelpcamp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampgroundHandler handles HTTP requests for campground pages
type CampgroundHandler struct {
	campgroundService service.CampgroundServiceInterface
}

// NewCampgroundHandler creates a new campground handler
func NewCampgroundHandler(campgroundService service.CampgroundServiceInterface) *CampgroundHandler {
	return &CampgroundHandler{
		campgroundService: campgroundService,
	}
}

// Index handles GET /campgrounds
func (h *CampgroundHandler) Index(c *gin.Context) {
	campgrounds, err := h.campgroundService.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, render.PageCampgroundIndex, gin.H{
		"PageTitle":   "All Campgrounds",
		"Campgrounds": campgrounds,
	})
}

// New handles GET /campgrounds/new
func (h *CampgroundHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, render.PageCampgroundNew, gin.H{"PageTitle": "New Campground"})
}

// Create handles POST /campgrounds
func (h *CampgroundHandler) Create(c *gin.Context) {
	in, ok := middleware.CampgroundInput(c)
	if !ok {
		_ = c.Error(apperrors.NewValidationError(`"campground" is required`))
		return
	}

	campground, err := h.campgroundService.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, campgroundPath(campground.ID))
}

// Show handles GET /campgrounds/:id
func (h *CampgroundHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrCampgroundNotFound)
	if !ok {
		return
	}

	detail, err := h.campgroundService.GetWithReviews(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, render.PageCampgroundShow, gin.H{
		"PageTitle":  detail.Campground.Title,
		"Campground": detail.Campground,
		"Reviews":    detail.Reviews,
	})
}

// Edit handles GET /campgrounds/:id/edit
func (h *CampgroundHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrCampgroundNotFound)
	if !ok {
		return
	}

	campground, err := h.campgroundService.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, render.PageCampgroundEdit, gin.H{
		"PageTitle":  "Edit " + campground.Title,
		"Campground": campground,
	})
}

// Update handles PUT /campgrounds/:id
func (h *CampgroundHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrCampgroundNotFound)
	if !ok {
		return
	}
	in, ok := middleware.CampgroundInput(c)
	if !ok {
		_ = c.Error(apperrors.NewValidationError(`"campground" is required`))
		return
	}

	campground, err := h.campgroundService.Update(c.Request.Context(), id, in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, campgroundPath(campground.ID))
}

// Delete handles DELETE /campgrounds/:id
func (h *CampgroundHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrCampgroundNotFound)
	if !ok {
		return
	}

	if err := h.campgroundService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/campgrounds")
}

// pathID parses a UUID path parameter. A malformed id cannot match any
// record, so it is reported as notFound.
func pathID(c *gin.Context, param string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		_ = c.Error(notFound)
		return uuid.Nil, false
	}
	return id, true
}

func campgroundPath(id uuid.UUID) string {
	return "/campgrounds/" + id.String()
}
