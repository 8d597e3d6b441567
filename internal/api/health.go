package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /health and /healthz: liveness (always 200 OK).
//   - /readyz: readiness (depends on the storage backend probe).
type HealthHandler struct {
	probe func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler. probe checks the storage
// backend (a database ping or a stat of the data set); nil means always ready.
func NewHealthHandler(probe func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /health, GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if probe succeeds, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /health [get]
	r.GET("/health", h.live)
	r.GET("/healthz", h.live)

	// @Summary      Readiness probe
	// @Description  Returns ready if the storage backend is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.probe != nil && h.probe(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}

func (h *HealthHandler) live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
