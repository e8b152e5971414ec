package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/typesense/typesense-go/v3/typesense"

	"github.com/amarupazila/app-local-info/internal/services"
)

// HealthHandler serves the health check endpoints.
type HealthHandler struct {
	typesenseClient *typesense.Client
	feedService     *services.FeedService
}

// NewHealthHandler creates a health check handler.
func NewHealthHandler(client *typesense.Client, feedService *services.FeedService) *HealthHandler {
	return &HealthHandler{
		typesenseClient: client,
		feedService:     feedService,
	}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Confirms the process is alive, without checking external dependencies
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Checks the app is ready to serve traffic (validates Typesense and the feed mirror)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkTypesense(ctx) {
		response.Checks["typesense"] = "ok"
	} else {
		response.Checks["typesense"] = "failed"
		response.Status = "not_ready"
		response.Error = "Typesense not available"
	}

	// The feed can serve seed data while the backend is down, but the first
	// snapshot must have arrived.
	if h.feedService.Loading() {
		response.Checks["feed"] = "loading"
		response.Status = "not_ready"
		response.Error = "feed snapshot not loaded yet"
	} else {
		response.Checks["feed"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Full application health for external uptime monitoring
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkTypesense(ctx) {
		response.Checks["typesense"] = "ok"
	} else {
		response.Checks["typesense"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Typesense connectivity check failed"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

func (h *HealthHandler) checkTypesense(ctx context.Context) bool {
	_, err := h.typesenseClient.Health(ctx, 2*time.Second)
	return err == nil
}
