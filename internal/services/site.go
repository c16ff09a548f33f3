package services

import (
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/store"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
)

// SiteService is the single source of truth for mutable site content.
// State is held in memory, seeded from the content store at startup, and
// every mutation writes through to the store before returning. All
// mutations run under one mutex, so concurrent admin requests serialize
// into last-write-wins order.
type SiteService struct {
	mu       sync.RWMutex
	config   models.SiteConfig
	leads    []models.Lead
	blogs    []models.BlogPost
	services []models.ServicePackage

	store store.Store
	hub   *NotificationHub
}

// NewSiteService seeds the provider from the store. Missing keys fall
// back to the hardcoded defaults; a corrupt document is logged and reset
// to defaults rather than aborting startup.
func NewSiteService(st store.Store, hub *NotificationHub) *SiteService {
	s := &SiteService{
		config:   models.DefaultSiteConfig(),
		blogs:    models.DefaultBlogPosts(),
		services: models.DefaultServices(),
		store:    st,
		hub:      hub,
	}

	loadDocument(st, store.KeyConfig, &s.config)
	loadDocument(st, store.KeyLeads, &s.leads)
	loadDocument(st, store.KeyBlogs, &s.blogs)
	loadDocument(st, store.KeyServices, &s.services)

	return s
}

// loadDocument overwrites dst with the stored document for key, if one
// exists and parses. dst keeps its prior (default) value otherwise.
// Decoding goes through a scratch value so a document that fails partway
// through cannot leave a mix of stored and default fields behind.
func loadDocument(st store.Store, key string, dst interface{}) {
	raw, err := st.Load(key)
	if err != nil {
		if err != store.ErrNotFound {
			logger.Warn().Err(err).Str("key", key).Msg("content store read failed, using defaults")
		}
		return
	}

	scratch := reflect.New(reflect.TypeOf(dst).Elem())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("corrupt content document, resetting to defaults")
		return
	}
	reflect.ValueOf(dst).Elem().Set(scratch.Elem())
}

func (s *SiteService) persist(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Save(key, raw)
}

// Config returns the current site configuration.
func (s *SiteService) Config() models.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Leads returns all leads, newest first.
func (s *SiteService) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// BlogPosts returns all blog posts, newest first.
func (s *SiteService) BlogPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BlogPost, len(s.blogs))
	copy(out, s.blogs)
	return out
}

// Services returns the service packages in seeded order.
func (s *SiteService) Services() []models.ServicePackage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ServicePackage, len(s.services))
	copy(out, s.services)
	return out
}

// SiteConfigUpdate carries the fields of a settings-form submission.
// Nil fields keep their current value.
type SiteConfigUpdate struct {
	SiteName       *string `json:"siteName"`
	HeroHeadline   *string `json:"heroHeadline"`
	HeroSubline    *string `json:"heroSubheadline"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	ContactEmail   *string `json:"contactEmail"`
	ContactPhone   *string `json:"contactPhone"`
	ContactAddress *string `json:"contactAddress"`
	SupportHours   *string `json:"supportHours"`
}

// UpdateConfig merges the submitted fields into the configuration and
// persists it. Field values are not validated (parity with the admin
// form, which accepts free text).
func (s *SiteService) UpdateConfig(update *SiteConfigUpdate) (models.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.SiteName != nil {
		s.config.SiteName = *update.SiteName
	}
	if update.HeroHeadline != nil {
		s.config.HeroHeadline = *update.HeroHeadline
	}
	if update.HeroSubline != nil {
		s.config.HeroSubline = *update.HeroSubline
	}
	if update.PrimaryColor != nil {
		s.config.PrimaryColor = *update.PrimaryColor
	}
	if update.SecondaryColor != nil {
		s.config.SecondaryColor = *update.SecondaryColor
	}
	if update.ContactEmail != nil {
		s.config.ContactEmail = *update.ContactEmail
	}
	if update.ContactPhone != nil {
		s.config.ContactPhone = *update.ContactPhone
	}
	if update.ContactAddress != nil {
		s.config.ContactAddress = *update.ContactAddress
	}
	if update.SupportHours != nil {
		s.config.SupportHours = *update.SupportHours
	}

	if err := s.persist(store.KeyConfig, s.config); err != nil {
		return models.SiteConfig{}, err
	}

	s.hub.Add("Site settings updated successfully", models.NotificationSuccess)
	return s.config, nil
}

// ServicePackageUpdate carries a partial edit of one package.
type ServicePackageUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Features    *[]string `json:"features"`
	IsPopular   *bool     `json:"isPopular"`
}

// UpdateService merges fields into the package with the given id and
// persists the collection. An unknown id is silently ignored: the
// collection is fixed, so there is nothing to create.
func (s *SiteService) UpdateService(id string, update *ServicePackageUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		if update.Title != nil {
			s.services[i].Title = *update.Title
		}
		if update.Description != nil {
			s.services[i].Description = *update.Description
		}
		if update.Price != nil {
			s.services[i].Price = *update.Price
		}
		if update.Features != nil {
			s.services[i].Features = *update.Features
		}
		if update.IsPopular != nil {
			s.services[i].IsPopular = *update.IsPopular
		}
		break
	}

	if err := s.persist(store.KeyServices, s.services); err != nil {
		return err
	}

	s.hub.Add("Service package updated", models.NotificationSuccess)
	return nil
}

// LeadInput is a public contact-form submission.
type LeadInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
}

// AddLead creates a lead dated today, prepends it and persists the list.
// It deliberately emits no notification: the public form renders its own
// confirmation.
func (s *SiteService) AddLead(input *LeadInput) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := models.Lead{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Email:           input.Email,
		ServiceInterest: input.ServiceInterest,
		Message:         input.Message,
		Date:            time.Now().Format("2006-01-02"),
	}

	s.leads = append([]models.Lead{lead}, s.leads...)

	if err := s.persist(store.KeyLeads, s.leads); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

// BlogPostInput is an admin blog-post submission.
type BlogPostInput struct {
	Title   string   `json:"title" binding:"required"`
	Excerpt string   `json:"excerpt"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// AddBlogPost creates a post dated today, prepends it and persists.
func (s *SiteService) AddBlogPost(input *BlogPostInput) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.BlogPost{
		ID:      uuid.New().String(),
		Title:   input.Title,
		Excerpt: input.Excerpt,
		Author:  input.Author,
		Date:    time.Now().Format("2006-01-02"),
		Tags:    input.Tags,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	s.blogs = append([]models.BlogPost{post}, s.blogs...)

	if err := s.persist(store.KeyBlogs, s.blogs); err != nil {
		return models.BlogPost{}, err
	}

	s.hub.Add("Blog post created successfully", models.NotificationSuccess)
	return post, nil
}

// DeleteBlogPost removes the post with the given id. Deleting an absent
// id leaves the collection unchanged but still persists and notifies.
func (s *SiteService) DeleteBlogPost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.blogs[:0:0]
	for _, post := range s.blogs {
		if post.ID != id {
			filtered = append(filtered, post)
		}
	}
	s.blogs = filtered

	if err := s.persist(store.KeyBlogs, s.blogs); err != nil {
		return err
	}

	s.hub.Add("Blog post deleted", models.NotificationInfo)
	return nil
}

// Testimonials returns the static testimonial list.
func (s *SiteService) Testimonials() []models.Testimonial {
	return models.Testimonials()
}
