package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/services"
)

func newNotificationTestRouter(t *testing.T) (*gin.Engine, *services.NotificationHub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := services.NewNotificationHubTTL(time.Second)
	h := NewNotificationHandler(hub)

	r := gin.New()
	r.GET("/api/admin/notifications", h.Active)
	r.DELETE("/api/admin/notifications/:id", h.Dismiss)
	return r, hub
}

func TestNotificationsActive(t *testing.T) {
	r, hub := newNotificationTestRouter(t)

	hub.Add("Settings saved", models.NotificationSuccess)

	w, env := doJSON(t, r, "GET", "/api/admin/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	var active []models.Notification
	if err := json.Unmarshal(env.Data, &active); err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].Message != "Settings saved" {
		t.Error("active notifications not returned")
	}
}

func TestNotificationsDismiss(t *testing.T) {
	r, hub := newNotificationTestRouter(t)

	id := hub.Add("dismiss me", models.NotificationInfo)

	w, _ := doJSON(t, r, "DELETE", "/api/admin/notifications/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
	if len(hub.Active()) != 0 {
		t.Error("notification should be removed")
	}

	// Dismissing again is fine; the timeout may have beaten the client
	w, _ = doJSON(t, r, "DELETE", "/api/admin/notifications/"+id, nil)
	if w.Code != http.StatusOK {
		t.Errorf("repeat dismiss status = %d, expected 200", w.Code)
	}
}
