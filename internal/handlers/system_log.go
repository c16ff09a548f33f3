package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"gorm.io/gorm"
)

type SystemLogHandler struct {
	systemLogService *services.SystemLogService
}

func NewSystemLogHandler(db *gorm.DB) *SystemLogHandler {
	return &SystemLogHandler{
		systemLogService: services.NewSystemLogService(db),
	}
}

// List returns filtered, paginated system logs
// GET /api/admin/system-logs
func (h *SystemLogHandler) List(c *gin.Context) {
	var req services.SystemLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.systemLogService.List(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetModules returns the distinct module names seen in the logs
// GET /api/admin/system-logs/modules
func (h *SystemLogHandler) GetModules(c *gin.Context) {
	modules, err := h.systemLogService.GetModules()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

// GetRetention returns the current log retention window in days
// GET /api/admin/system-logs/retention
func (h *SystemLogHandler) GetRetention(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"retention_days": h.systemLogService.GetRetentionDays()})
}

// SetRetention updates the log retention window
// PUT /api/admin/system-logs/retention
func (h *SystemLogHandler) SetRetention(c *gin.Context) {
	var req struct {
		RetentionDays int `json:"retention_days" binding:"required,min=1,max=365"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.systemLogService.SetRetentionDays(req.RetentionDays); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"retention_days": req.RetentionDays})
}

// Cleanup deletes logs older than the retention window right away
// POST /api/admin/system-logs/cleanup
func (h *SystemLogHandler) Cleanup(c *gin.Context) {
	deleted, err := h.systemLogService.CleanupOldLogs(h.systemLogService.GetRetentionDays())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
