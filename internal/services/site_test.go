package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/store"
)

func newTestSite(t *testing.T) (*SiteService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	hub := NewNotificationHubTTL(50 * time.Millisecond)
	return NewSiteService(st, hub), st
}

func TestAddLead_PrependsAndDatesToday(t *testing.T) {
	site, _ := newTestSite(t)

	first, err := site.AddLead(&LeadInput{Name: "Dr. A", Email: "a@x.com", ServiceInterest: "Essential Editing", Message: "hi"})
	if err != nil {
		t.Fatalf("AddLead() error = %v", err)
	}
	second, err := site.AddLead(&LeadInput{Name: "Dr. B", Email: "b@x.com"})
	if err != nil {
		t.Fatalf("AddLead() error = %v", err)
	}

	leads := site.Leads()
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0].ID != second.ID {
		t.Error("newest lead should be at index 0")
	}
	if leads[1].ID != first.ID {
		t.Error("older lead should follow the newest")
	}

	today := time.Now().Format("2006-01-02")
	if leads[0].Date != today {
		t.Errorf("lead date = %q, expected today %q", leads[0].Date, today)
	}
	if leads[0].Name != "Dr. B" || leads[1].Email != "a@x.com" {
		t.Error("lead fields not preserved")
	}
}

func TestAddLead_WritesThrough(t *testing.T) {
	site, st := newTestSite(t)

	lead, err := site.AddLead(&LeadInput{Name: "Dr. A", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("AddLead() error = %v", err)
	}

	raw, err := st.Load(store.KeyLeads)
	if err != nil {
		t.Fatalf("store should hold the leads document: %v", err)
	}

	var persisted []models.Lead
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted leads unparseable: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != lead.ID {
		t.Error("persisted document does not match in-memory state")
	}
}

func TestAddLead_UniqueIDs(t *testing.T) {
	site, _ := newTestSite(t)

	a, _ := site.AddLead(&LeadInput{Name: "A", Email: "a@x.com"})
	b, _ := site.AddLead(&LeadInput{Name: "B", Email: "b@x.com"})
	if a.ID == b.ID {
		t.Error("lead ids must be unique")
	}
}

func TestUpdateService_TargetedMerge(t *testing.T) {
	site, _ := newTestSite(t)

	before := site.Services()

	price := "₦200,000"
	if err := site.UpdateService("1", &ServicePackageUpdate{Price: &price}); err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}

	after := site.Services()
	if after[0].Price != "₦200,000" {
		t.Errorf("price = %q, expected updated value", after[0].Price)
	}
	if after[0].Title != before[0].Title || after[0].Description != before[0].Description {
		t.Error("untargeted fields of the updated package changed")
	}

	// Sibling packages must be untouched
	for i := 1; i < len(after); i++ {
		beforeJSON, _ := json.Marshal(before[i])
		afterJSON, _ := json.Marshal(after[i])
		if string(beforeJSON) != string(afterJSON) {
			t.Errorf("package %s changed by update of package 1", after[i].ID)
		}
	}
}

func TestUpdateService_UnknownIDIsNoOp(t *testing.T) {
	site, _ := newTestSite(t)

	before, _ := json.Marshal(site.Services())

	price := "₦1"
	if err := site.UpdateService("no-such-id", &ServicePackageUpdate{Price: &price}); err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}

	after, _ := json.Marshal(site.Services())
	if string(before) != string(after) {
		t.Error("updating an unknown id must leave the collection unchanged")
	}
}

func TestAddBlogPost_Prepends(t *testing.T) {
	site, _ := newTestSite(t)

	post, err := site.AddBlogPost(&BlogPostInput{Title: "New Post", Author: "Edit Team", Tags: []string{"News"}})
	if err != nil {
		t.Fatalf("AddBlogPost() error = %v", err)
	}

	posts := site.BlogPosts()
	if posts[0].ID != post.ID {
		t.Error("new post should be at index 0")
	}
	if posts[0].Date != time.Now().Format("2006-01-02") {
		t.Errorf("post date = %q, expected today", posts[0].Date)
	}
}

func TestDeleteBlogPost(t *testing.T) {
	site, _ := newTestSite(t)

	post, _ := site.AddBlogPost(&BlogPostInput{Title: "Short-lived"})
	countBefore := len(site.BlogPosts())

	if err := site.DeleteBlogPost(post.ID); err != nil {
		t.Fatalf("DeleteBlogPost() error = %v", err)
	}

	posts := site.BlogPosts()
	if len(posts) != countBefore-1 {
		t.Errorf("expected %d posts after delete, got %d", countBefore-1, len(posts))
	}
	for _, p := range posts {
		if p.ID == post.ID {
			t.Error("deleted post still present")
		}
	}
}

func TestDeleteBlogPost_AbsentIDIsNoOp(t *testing.T) {
	site, _ := newTestSite(t)

	before, _ := json.Marshal(site.BlogPosts())

	if err := site.DeleteBlogPost("no-such-id"); err != nil {
		t.Fatalf("DeleteBlogPost() error = %v", err)
	}

	after, _ := json.Marshal(site.BlogPosts())
	if string(before) != string(after) {
		t.Error("deleting an absent id must leave the collection unchanged")
	}
}

func TestUpdateConfig_PartialMerge(t *testing.T) {
	site, st := newTestSite(t)

	name := "Renamed Publications"
	updated, err := site.UpdateConfig(&SiteConfigUpdate{SiteName: &name})
	if err != nil {
		t.Fatalf("UpdateConfig() error = %v", err)
	}

	if updated.SiteName != "Renamed Publications" {
		t.Errorf("SiteName = %q, expected updated value", updated.SiteName)
	}
	defaults := models.DefaultSiteConfig()
	if updated.HeroHeadline != defaults.HeroHeadline {
		t.Error("unset fields must keep their current value")
	}

	if _, err := st.Load(store.KeyConfig); err != nil {
		t.Errorf("config should be persisted after update: %v", err)
	}
}

func TestNewSiteService_SeedsFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	stored := []models.Lead{{ID: "x1", Name: "Stored", Email: "s@x.com", Date: "2024-01-01"}}
	raw, _ := json.Marshal(stored)
	if err := st.Save(store.KeyLeads, raw); err != nil {
		t.Fatal(err)
	}

	site := NewSiteService(st, NewNotificationHubTTL(50*time.Millisecond))

	leads := site.Leads()
	if len(leads) != 1 || leads[0].ID != "x1" {
		t.Error("provider should seed leads from the store")
	}
}

func TestNewSiteService_CorruptDocumentFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax error", `{not json`},
		{"type mismatch mid-document", `{"siteName":123,"heroHeadline":"INJECTED"}`},
	}

	defaults := models.DefaultSiteConfig()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			if err := st.Save(store.KeyConfig, json.RawMessage(tt.doc)); err != nil {
				t.Fatal(err)
			}

			site := NewSiteService(st, NewNotificationHubTTL(50*time.Millisecond))

			cfg := site.Config()
			if cfg.SiteName != defaults.SiteName {
				t.Errorf("SiteName = %q, expected default %q", cfg.SiteName, defaults.SiteName)
			}
			// No field of a bad document may leak through, even those
			// decoded before the failure
			if cfg.HeroHeadline != defaults.HeroHeadline {
				t.Errorf("HeroHeadline = %q, expected default %q", cfg.HeroHeadline, defaults.HeroHeadline)
			}
		})
	}
}

func TestTestimonials_Static(t *testing.T) {
	site, _ := newTestSite(t)

	testimonials := site.Testimonials()
	if len(testimonials) != 3 {
		t.Errorf("expected 3 testimonials, got %d", len(testimonials))
	}
}

func TestDashboardStats(t *testing.T) {
	site, _ := newTestSite(t)
	dash := NewDashboardService(site)

	site.AddLead(&LeadInput{Name: "A", Email: "a@x.com"})
	site.AddLead(&LeadInput{Name: "B", Email: "b@x.com"})

	stats := dash.Stats()
	if stats.TotalLeads != 2 {
		t.Errorf("TotalLeads = %d, expected 2", stats.TotalLeads)
	}
	if stats.LeadsThisWeek != 2 {
		t.Errorf("LeadsThisWeek = %d, expected 2 (both dated today)", stats.LeadsThisWeek)
	}
	if stats.ServicePackages != 3 {
		t.Errorf("ServicePackages = %d, expected 3", stats.ServicePackages)
	}
}
