package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/internal/store"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newSiteTestRouter(t *testing.T) (*gin.Engine, *services.SiteService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := services.NewNotificationHubTTL(time.Second)
	site := services.NewSiteService(store.NewMemoryStore(), hub)
	h := NewSiteHandler(site)

	r := gin.New()
	r.GET("/api/site/config", h.GetConfig)
	r.GET("/api/site/services", h.GetServices)
	r.GET("/api/site/testimonials", h.GetTestimonials)
	r.GET("/api/site/blog", h.GetBlog)
	r.PUT("/api/admin/config", h.UpdateConfig)
	r.PUT("/api/admin/services/:id", h.UpdateService)
	r.POST("/api/admin/blog", h.CreateBlogPost)
	r.DELETE("/api/admin/blog/:id", h.DeleteBlogPost)
	return r, site
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("response not an envelope: %v, body=%s", err, w.Body.String())
		}
	}
	return w, env
}

func TestGetConfig(t *testing.T) {
	r, _ := newSiteTestRouter(t)

	w, env := doJSON(t, r, "GET", "/api/site/config", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	var cfg models.SiteConfig
	if err := json.Unmarshal(env.Data, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.SiteName == "" {
		t.Error("config should carry the default site name")
	}
}

func TestGetServices(t *testing.T) {
	r, _ := newSiteTestRouter(t)

	w, env := doJSON(t, r, "GET", "/api/site/services", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	var packages []models.ServicePackage
	if err := json.Unmarshal(env.Data, &packages); err != nil {
		t.Fatal(err)
	}
	if len(packages) != 3 {
		t.Errorf("expected 3 default packages, got %d", len(packages))
	}
}

func TestUpdateConfig_PartialBody(t *testing.T) {
	r, site := newSiteTestRouter(t)

	w, _ := doJSON(t, r, "PUT", "/api/admin/config", map[string]string{"siteName": "Renamed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	if site.Config().SiteName != "Renamed" {
		t.Error("config update not applied")
	}
	if site.Config().HeroHeadline == "" {
		t.Error("omitted fields must survive a partial update")
	}
}

func TestUpdateService_ByID(t *testing.T) {
	r, site := newSiteTestRouter(t)

	w, _ := doJSON(t, r, "PUT", "/api/admin/services/2", map[string]interface{}{"isPopular": false})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	for _, p := range site.Services() {
		if p.ID == "2" && p.IsPopular {
			t.Error("isPopular should be cleared on package 2")
		}
	}
}

func TestBlogLifecycle(t *testing.T) {
	r, site := newSiteTestRouter(t)

	w, env := doJSON(t, r, "POST", "/api/admin/blog", map[string]interface{}{
		"title": "New Post", "excerpt": "...", "author": "Team", "tags": []string{"News"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, expected 201", w.Code)
	}

	var post models.BlogPost
	if err := json.Unmarshal(env.Data, &post); err != nil {
		t.Fatal(err)
	}

	w, _ = doJSON(t, r, "DELETE", "/api/admin/blog/"+post.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, expected 200", w.Code)
	}

	for _, p := range site.BlogPosts() {
		if p.ID == post.ID {
			t.Error("post still present after delete")
		}
	}
}

func TestCreateBlogPost_MissingTitle(t *testing.T) {
	r, _ := newSiteTestRouter(t)

	w, _ := doJSON(t, r, "POST", "/api/admin/blog", map[string]string{"excerpt": "no title"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", w.Code)
	}
}
