package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/pkg/response"
)

// SiteHandler serves the public site content and the admin edits to it.
type SiteHandler struct {
	site *services.SiteService
}

func NewSiteHandler(site *services.SiteService) *SiteHandler {
	return &SiteHandler{site: site}
}

// GetConfig returns the site branding and contact details
// GET /api/site/config
func (h *SiteHandler) GetConfig(c *gin.Context) {
	response.Success(c, h.site.Config())
}

// GetServices returns the service packages
// GET /api/site/services
func (h *SiteHandler) GetServices(c *gin.Context) {
	response.Success(c, h.site.Services())
}

// GetTestimonials returns the client testimonials
// GET /api/site/testimonials
func (h *SiteHandler) GetTestimonials(c *gin.Context) {
	response.Success(c, h.site.Testimonials())
}

// GetBlog returns the published blog posts, newest first
// GET /api/site/blog
func (h *SiteHandler) GetBlog(c *gin.Context) {
	response.Success(c, h.site.BlogPosts())
}

// UpdateConfig merges the provided fields into the site config
// PUT /api/admin/config
func (h *SiteHandler) UpdateConfig(c *gin.Context) {
	var req services.SiteConfigUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cfg, err := h.site.UpdateConfig(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, cfg)
}

// UpdateService merges the provided fields into one service package
// PUT /api/admin/services/:id
func (h *SiteHandler) UpdateService(c *gin.Context) {
	var req services.ServicePackageUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.site.UpdateService(c.Param("id"), &req); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, h.site.Services())
}

// CreateBlogPost publishes a new post
// POST /api/admin/blog
func (h *SiteHandler) CreateBlogPost(c *gin.Context) {
	var req services.BlogPostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.site.AddBlogPost(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, post)
}

// DeleteBlogPost removes a post; deleting an unknown id is a no-op
// DELETE /api/admin/blog/:id
func (h *SiteHandler) DeleteBlogPost(c *gin.Context) {
	if err := h.site.DeleteBlogPost(c.Param("id")); err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
