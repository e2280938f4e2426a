package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	catalogue *catalogue.Catalogue
}

func NewHealthHandler(db *gorm.DB, cat *catalogue.Catalogue) *HealthHandler {
	return &HealthHandler{db: db, catalogue: cat}
}

// HealthCheck returns the health status of the API.
// The history database is optional, so a failing ping degrades the status without failing the check.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	dbStatus := "disabled"

	if h.db != nil {
		dbStatus = "connected"
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			dbStatus = "unreachable"
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"catalogue": gin.H{
			"moods": h.catalogue.Len(),
		},
		"database": gin.H{
			"status": dbStatus,
		},
	})
}
