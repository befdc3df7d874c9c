package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// storePingTimeout bounds a single health probe of the store
const storePingTimeout = 3 * time.Second

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the JSON probes used by orchestrators
type HealthHandler struct {
	store   Pinger
	driver  string
	version string
}

// NewHealthHandler creates a new health handler. driver names the store in
// the probe output.
func NewHealthHandler(store Pinger, driver, version string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		driver:  driver,
		version: version,
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	err := h.probe(c.Request.Context())

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{h.driver: "healthy"},
	}
	if err != nil {
		resp.Status = "unhealthy"
		resp.Services[h.driver] = "error: " + err.Error()
	}
	c.JSON(statusFor(err), resp)
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	err := h.probe(c.Request.Context())

	state := "ready"
	if err != nil {
		state = "not ready: " + err.Error()
	}
	c.JSON(statusFor(err), gin.H{
		"ready":     err == nil,
		"timestamp": time.Now(),
		"services":  map[string]string{h.driver: state},
	})
}

// Live handles GET /health/live. It never touches the store.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	return h.store.Ping(ctx)
}

func statusFor(err error) int {
	if err != nil {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
