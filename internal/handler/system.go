package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/pkg/db"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

// SystemHandler serves liveness probes. The legacy client polls two probe
// paths; both check the single live storage backend.
type SystemHandler struct {
	db       *gorm.DB
	programs *repository.ProgramRepository
}

func NewSystemHandler(gormDB *gorm.DB, programs *repository.ProgramRepository) *SystemHandler {
	return &SystemHandler{db: gormDB, programs: programs}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "programs"})
}

// DatabaseHealth pings the connection pool.
func (h *SystemHandler) DatabaseHealth(c *gin.Context) {
	if err := db.Ping(h.db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "disconnected", "error": "Database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// StoreHealth runs a real query against the store, like the legacy probe did.
func (h *SystemHandler) StoreHealth(c *gin.Context) {
	if _, err := h.programs.Count(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "disconnected", "error": "Storage backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
