package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/obaspub/scholarsite/backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DefaultDigestTime is when the daily lead digest is sent (server local time).
const DefaultDigestTime = "18:00"

// DailyDigestService emails a summary of the day's leads to the site
// contact address every evening.
type DailyDigestService struct {
	site  *SiteService
	email *EmailService

	scheduler *cron.Cron
	entryID   cron.EntryID
}

func NewDailyDigestService(site *SiteService, email *EmailService) *DailyDigestService {
	return &DailyDigestService{
		site:  site,
		email: email,
	}
}

// StartScheduler begins the digest cron at the default time.
func (s *DailyDigestService) StartScheduler() {
	s.scheduler = cron.New()
	s.Reschedule(DefaultDigestTime)
	s.scheduler.Start()
}

// StopScheduler stops the digest cron.
func (s *DailyDigestService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Reschedule moves the digest to a new HH:MM time of day.
func (s *DailyDigestService) Reschedule(timeOfDay string) {
	if s.scheduler == nil {
		return
	}

	if s.entryID != 0 {
		s.scheduler.Remove(s.entryID)
		s.entryID = 0
	}

	parts := strings.SplitN(timeOfDay, ":", 2)
	if len(parts) != 2 {
		logger.Warnf("[Digest] invalid digest time %q, scheduler disabled", timeOfDay)
		return
	}

	cronExpr := fmt.Sprintf("%s %s * * *", parts[1], parts[0])
	entryID, err := s.scheduler.AddFunc(cronExpr, s.runDigest)
	if err != nil {
		logger.Errorf("[Digest] failed to schedule digest: %v", err)
		return
	}

	s.entryID = entryID
	logger.Infof("[Digest] daily digest scheduled at %s (cron: %s)", timeOfDay, cronExpr)
}

func (s *DailyDigestService) runDigest() {
	today := time.Now().Format("2006-01-02")

	leads := s.site.Leads()
	todays := leads[:0:0]
	for _, lead := range leads {
		if lead.Date == today {
			todays = append(todays, lead)
		}
	}

	if len(todays) == 0 {
		logger.Debug().Msg("no leads today, digest skipped")
		return
	}

	cfg := s.site.Config()
	if cfg.ContactEmail == "" {
		return
	}

	if err := s.email.SendDailyDigest(today, todays, []string{cfg.ContactEmail}); err != nil {
		LogError("leads", "digest", "failed to send daily digest", nil, "", "", map[string]interface{}{"error": err.Error()})
		return
	}

	LogInfo("leads", "digest",
		fmt.Sprintf("daily digest sent with %d leads", len(todays)),
		nil, "", "", nil)
}
