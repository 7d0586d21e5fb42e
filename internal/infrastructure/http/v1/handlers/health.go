package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"khata/internal/infrastructure/storage/sqlite"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	store *sqlite.Store
}

func NewHealthHandler(store *sqlite.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Live reports process liveness.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the store answers queries.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.store.DB().PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
