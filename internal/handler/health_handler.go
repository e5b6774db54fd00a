package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports whether the AI provider has a credential.
type ReadinessChecker interface {
	Configured() bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	ai ReadinessChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ai ReadinessChecker) *HealthHandler {
	return &HealthHandler{ai: ai}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The server stays ready without an AI credential
// because extraction still works; ai_configured tells operators which mode it is in.
func (h *HealthHandler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ai_configured": h.ai.Configured()})
}
