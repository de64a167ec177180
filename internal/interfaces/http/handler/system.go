package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ongcloud/backend/internal/infrastructure/persistence"
	"github.com/ongcloud/backend/internal/interfaces/http/dto"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Health reports service liveness including a database ping.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.db.Ping(); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
