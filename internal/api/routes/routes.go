package routes

import (
	"fmt"
	"net/http"

	"yelpcamp/internal/api/handlers"
	"yelpcamp/internal/api/middleware"
	"yelpcamp/internal/config"
	"yelpcamp/internal/render"
	"yelpcamp/internal/service"
	"yelpcamp/internal/store"
	"yelpcamp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(st *store.Store, cfg *config.Config) (*gin.Engine, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	// Create router
	router := gin.New()
	router.HTMLRender = renderer

	// Add middleware. ErrorHandler sits inside Logger and Metrics so they
	// see the rendered status, and outside Recovery so panics get a page.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.Use(middleware.Secure(cfg))
	if cfg.RateLimitRPS > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Initialize validator
	v := validation.New()

	// Initialize services
	campgroundService := service.NewCampgroundService(st.Campgrounds, st.Reviews, st.Tx)
	reviewService := service.NewReviewService(st.Tx)

	// Initialize handlers
	campgroundHandler := handlers.NewCampgroundHandler(campgroundService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	healthHandler := handlers.NewHealthHandler(st, st.Driver, Version)

	// Health and metrics
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", handlers.Home)

	campgrounds := router.Group("/campgrounds")
	{
		campgrounds.GET("", campgroundHandler.Index)
		campgrounds.GET("/new", campgroundHandler.New)
		campgrounds.POST("", middleware.ValidateCampground(v), campgroundHandler.Create)
		campgrounds.GET("/:id", campgroundHandler.Show)
		campgrounds.GET("/:id/edit", campgroundHandler.Edit)
		campgrounds.PUT("/:id", middleware.ValidateCampground(v), campgroundHandler.Update)
		campgrounds.DELETE("/:id", campgroundHandler.Delete)

		campgrounds.POST("/:id/reviews", middleware.ValidateReview(v), reviewHandler.Create)
		campgrounds.DELETE("/:id/reviews/:reviewId", reviewHandler.Delete)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(middleware.NotFound)

	return router, nil
}

// NewHandler returns the application as an http.Handler, with HTML form
// method override applied ahead of routing.
func NewHandler(st *store.Store, cfg *config.Config) (http.Handler, error) {
	router, err := SetupRoutes(st, cfg)
	if err != nil {
		return nil, err
	}
	return middleware.MethodOverride(router), nil
}
