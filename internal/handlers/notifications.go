package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/internal/utils"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
	"github.com/obaspub/scholarsite/backend/pkg/response"
)

// NotificationHandler streams transient admin notifications over SSE and
// exposes the active set for clients that prefer polling.
type NotificationHandler struct {
	hub *services.NotificationHub
}

func NewNotificationHandler(hub *services.NotificationHub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// Stream pushes added/removed notification events to the admin panel
// GET /api/events/notifications
func (h *NotificationHandler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if token == "" {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if _, err := utils.ParseToken(token); err != nil {
		response.Unauthorized(c, "Invalid token")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Header("Access-Control-Allow-Origin", "*")

	clientID := uuid.New().String()
	events := h.hub.Subscribe(clientID)
	defer h.hub.Unsubscribe(clientID)

	logger.Info().Str("client_id", clientID).Int("total", h.hub.ClientCount()).Msg("notification stream connected")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			data, err := json.Marshal(event)
			if err != nil {
				logger.Error().Err(err).Msg("notification marshal error")
				return true
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			c.Writer.Flush()
			return true
		case <-c.Request.Context().Done():
			logger.Info().Str("client_id", clientID).Msg("notification stream disconnected")
			return false
		}
	})
}

// Active returns the notifications currently visible
// GET /api/admin/notifications
func (h *NotificationHandler) Active(c *gin.Context) {
	response.Success(c, h.hub.Active())
}

// Dismiss removes a notification before its timeout; unknown ids are
// no-ops since the timeout may have fired already
// DELETE /api/admin/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.hub.Remove(c.Param("id"))
	response.Success(c, gin.H{"message": "dismissed"})
}
