package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/service"
)

type BackupHandler struct {
	svc *service.BackupService
}

func NewBackupHandler(svc *service.BackupService) *BackupHandler {
	return &BackupHandler{svc: svc}
}

func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Export failed"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// Import bulk-inserts the posted dataset. Strictly additive: repeating an
// import duplicates records.
func (h *BackupHandler) Import(c *gin.Context) {
	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid import payload"})
		return
	}
	result, err := h.svc.Import(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Import failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data imported successfully", "imported": result})
}

// SyncDatabase acknowledges the legacy sync button. There is no external
// database to reconcile against anymore.
func (h *BackupHandler) SyncDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database synced successfully"})
}
