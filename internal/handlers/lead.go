package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
	"github.com/obaspub/scholarsite/backend/pkg/response"
)

// LeadHandler takes contact-form submissions and lists them for the admin.
type LeadHandler struct {
	site      *services.SiteService
	scheduler *services.ResponseScheduler
}

func NewLeadHandler(site *services.SiteService, scheduler *services.ResponseScheduler) *LeadHandler {
	return &LeadHandler{site: site, scheduler: scheduler}
}

// Create records a new lead and queues the team alert
// POST /api/site/leads
func (h *LeadHandler) Create(c *gin.Context) {
	var req services.LeadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lead, err := h.site.AddLead(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	expected := h.scheduler.ExpectedResponseDate(time.Now())

	if queue := services.GetTaskQueue(); queue != nil {
		task := &services.LeadTask{Lead: lead, ExpectedResponse: expected}
		if err := queue.Enqueue(task); err != nil {
			logger.Warnf("[Leads] failed to enqueue alert for lead %s: %v", lead.ID, err)
		}
	}

	response.Created(c, gin.H{
		"lead":              lead,
		"expected_response": expected,
	})
}

// List returns all leads, newest first
// GET /api/admin/leads
func (h *LeadHandler) List(c *gin.Context) {
	response.Success(c, h.site.Leads())
}
