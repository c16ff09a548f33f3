package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/services"
)

// HealthHandler reports the status of the service's subsystems.
type HealthHandler struct {
	hub *services.NotificationHub
}

func NewHealthHandler(hub *services.NotificationHub) *HealthHandler {
	return &HealthHandler{hub: hub}
}

// CheckHealth returns the health status of all subsystems.
// GET /health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	c.JSON(200, gin.H{
		"status":      overall,
		"database":    dbStatus,
		"queue":       queueMode,
		"sse_clients": h.hub.ClientCount(),
	})
}
