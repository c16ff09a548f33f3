package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/pkg/response"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats returns the admin dashboard counters
// GET /api/admin/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	response.Success(c, h.dashboard.Stats())
}
