package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/s3"
)

type HealthHandler struct {
	store s3.ObjectStore
}

func NewHealthHandler(store s3.ObjectStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// GET /health
func (hh *HealthHandler) Health(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok"})
}

// GET /health/ready
// Readiness includes the object store so a dead bucket fails the probe.
func (hh *HealthHandler) Ready(c *gin.Context) {
	if err := hh.store.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": err.Error()})
		return
	}
	RespondOK(c, gin.H{"status": "ready"})
}
