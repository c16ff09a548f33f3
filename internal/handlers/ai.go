package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/pkg/response"
)

// AIHandler exposes the writing suggestion endpoints.
type AIHandler struct {
	suggestions *services.SuggestionService
}

func NewAIHandler(suggestions *services.SuggestionService) *AIHandler {
	return &AIHandler{suggestions: suggestions}
}

// SuggestTitles returns optimized alternatives for a manuscript title
// POST /api/ai/titles
func (h *AIHandler) SuggestTitles(c *gin.Context) {
	var req struct {
		DraftTitle string `json:"draft_title" binding:"required"`
		Abstract   string `json:"abstract"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	titles, err := h.suggestions.GenerateOptimizedTitles(c.Request.Context(), req.DraftTitle, req.Abstract)
	if err != nil {
		response.BadGateway(c, "suggestion service unavailable")
		return
	}

	response.Success(c, gin.H{"titles": titles})
}

// SuggestTopics returns blog topic ideas for a theme
// POST /api/ai/topics
func (h *AIHandler) SuggestTopics(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	topics, err := h.suggestions.GenerateBlogTopics(c.Request.Context(), req.Theme)
	if err != nil {
		response.BadGateway(c, "suggestion service unavailable")
		return
	}

	response.Success(c, gin.H{"topics": topics})
}
