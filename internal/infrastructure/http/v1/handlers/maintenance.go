package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/pkg/logger"
)

// maxBackupSize caps restore uploads at 256 MiB.
const maxBackupSize = 256 << 20

// MaintenanceHandler handles backup and restore. Admin only.
type MaintenanceHandler struct {
	*BaseHandler
	store *sqlite.Store
}

func NewMaintenanceHandler(store *sqlite.Store) *MaintenanceHandler {
	return &MaintenanceHandler{BaseHandler: NewBaseHandler(), store: store}
}

// Backup streams a gzip snapshot of the database file.
func (h *MaintenanceHandler) Backup(c *gin.Context) {
	filename := fmt.Sprintf("khata-backup-%s.db.gz", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Type", "application/gzip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.store.Backup(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; log and abort the stream.
		logger.Error(c.Request.Context(), "backup failed", "error", err)
		c.Abort()
		return
	}
}

// Restore replaces the live database with an uploaded gzip snapshot.
func (h *MaintenanceHandler) Restore(c *gin.Context) {
	file, err := c.FormFile("backup")
	if err != nil {
		h.Error(c, apperror.NewValidation("backup file is required"))
		return
	}
	if file.Size > maxBackupSize {
		h.Error(c, apperror.NewValidation("backup exceeds maximum size").
			WithDetail("maxBytes", maxBackupSize))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.Error(c, apperror.NewInternal(fmt.Errorf("open upload: %w", err)))
		return
	}
	defer src.Close()

	if err := h.store.Restore(c.Request.Context(), src); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "database restored")
}
