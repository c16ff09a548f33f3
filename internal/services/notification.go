package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/obaspub/scholarsite/backend/internal/models"
)

// DefaultNotificationTTL is how long a notification stays visible before
// it is dismissed automatically.
const DefaultNotificationTTL = 5 * time.Second

// NotificationEvent is pushed to SSE subscribers whenever the
// notification list changes.
type NotificationEvent struct {
	Action       string              `json:"action"` // added, removed
	Notification models.Notification `json:"notification"`
}

// NotificationHub keeps the ephemeral notification list and broadcasts
// changes to connected admin clients. Notifications are never persisted.
type NotificationHub struct {
	mu      sync.RWMutex
	active  []models.Notification
	timers  map[string]*time.Timer
	clients map[string]chan NotificationEvent
	ttl     time.Duration
}

// NewNotificationHub creates a hub with the default auto-dismiss delay.
func NewNotificationHub() *NotificationHub {
	return NewNotificationHubTTL(DefaultNotificationTTL)
}

// NewNotificationHubTTL creates a hub with a custom auto-dismiss delay.
func NewNotificationHubTTL(ttl time.Duration) *NotificationHub {
	return &NotificationHub{
		timers:  make(map[string]*time.Timer),
		clients: make(map[string]chan NotificationEvent),
		ttl:     ttl,
	}
}

// Add appends a notification, schedules its auto-dismissal and returns
// its assigned id.
func (h *NotificationHub) Add(message, ntype string) string {
	n := models.Notification{
		ID:      uuid.New().String(),
		Message: message,
		Type:    ntype,
	}

	h.mu.Lock()
	h.active = append(h.active, n)
	h.timers[n.ID] = time.AfterFunc(h.ttl, func() {
		h.Remove(n.ID)
	})
	h.mu.Unlock()

	h.broadcast(NotificationEvent{Action: "added", Notification: n})
	return n.ID
}

// Remove dismisses a notification immediately. Removing an id that is
// absent (already expired or never existed) is a no-op.
func (h *NotificationHub) Remove(id string) {
	h.mu.Lock()
	if timer, ok := h.timers[id]; ok {
		timer.Stop()
		delete(h.timers, id)
	}

	var removed *models.Notification
	for i, n := range h.active {
		if n.ID == id {
			removed = &n
			h.active = append(h.active[:i], h.active[i+1:]...)
			break
		}
	}
	h.mu.Unlock()

	if removed != nil {
		h.broadcast(NotificationEvent{Action: "removed", Notification: *removed})
	}
}

// Active returns a snapshot of the current notification list.
func (h *NotificationHub) Active() []models.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.Notification, len(h.active))
	copy(out, h.active)
	return out
}

// Subscribe registers an SSE client and returns its event channel.
func (h *NotificationHub) Subscribe(clientID string) <-chan NotificationEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Buffered so a slow client cannot block mutations
	ch := make(chan NotificationEvent, 100)
	h.clients[clientID] = ch
	return ch
}

// Unsubscribe removes a client from the hub.
func (h *NotificationHub) Unsubscribe(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.clients[clientID]; ok {
		close(ch)
		delete(h.clients, clientID)
	}
}

// ClientCount returns the number of connected clients.
func (h *NotificationHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *NotificationHub) broadcast(event NotificationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.clients {
		select {
		case ch <- event:
		default:
			// Client buffer full, skip this event
		}
	}
}
