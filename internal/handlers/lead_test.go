package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/internal/store"
)

func newLeadTestRouter(t *testing.T) (*gin.Engine, *services.SiteService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := services.NewNotificationHubTTL(time.Second)
	site := services.NewSiteService(store.NewMemoryStore(), hub)
	h := NewLeadHandler(site, services.NewResponseScheduler())

	r := gin.New()
	r.POST("/api/site/leads", h.Create)
	r.GET("/api/admin/leads", h.List)
	return r, site
}

func TestCreateLead(t *testing.T) {
	r, site := newLeadTestRouter(t)

	w, env := doJSON(t, r, "POST", "/api/site/leads", map[string]string{
		"name":            "Dr. Okafor",
		"email":           "okafor@example.com",
		"serviceInterest": "Publication-Ready",
		"message":         "Need help with my manuscript.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, expected 201, body=%s", w.Code, w.Body.String())
	}

	var payload struct {
		Lead             models.Lead `json:"lead"`
		ExpectedResponse string      `json:"expected_response"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatal(err)
	}

	if payload.Lead.ID == "" {
		t.Error("lead should be assigned an id")
	}
	if _, err := time.Parse("2006-01-02", payload.ExpectedResponse); err != nil {
		t.Errorf("expected_response %q is not a date", payload.ExpectedResponse)
	}

	if len(site.Leads()) != 1 {
		t.Error("lead not recorded")
	}
}

func TestCreateLead_MissingEmail(t *testing.T) {
	r, site := newLeadTestRouter(t)

	w, _ := doJSON(t, r, "POST", "/api/site/leads", map[string]string{"name": "No Email"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", w.Code)
	}
	if len(site.Leads()) != 0 {
		t.Error("invalid submission must not be recorded")
	}
}

func TestListLeads_NewestFirst(t *testing.T) {
	r, site := newLeadTestRouter(t)

	site.AddLead(&services.LeadInput{Name: "First", Email: "f@x.com"})
	site.AddLead(&services.LeadInput{Name: "Second", Email: "s@x.com"})

	w, env := doJSON(t, r, "GET", "/api/admin/leads", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	var leads []models.Lead
	if err := json.Unmarshal(env.Data, &leads); err != nil {
		t.Fatal(err)
	}
	if len(leads) != 2 || leads[0].Name != "Second" {
		t.Error("leads should list newest first")
	}
}
