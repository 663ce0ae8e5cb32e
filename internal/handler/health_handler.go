package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxwise/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	completer port.Completer
}

// NewHealthHandler creates a new HealthHandler. completer may be nil.
func NewHealthHandler(completer port.Completer) *HealthHandler {
	return &HealthHandler{completer: completer}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"llm_configured": h.completer != nil && h.completer.Available(),
	})
}
