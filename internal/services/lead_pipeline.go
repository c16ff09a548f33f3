package services

import (
	"context"
	"fmt"
)

// LeadPipeline is the task processor for new contact-form submissions:
// alert the editing team by email and record the intake in the audit log.
type LeadPipeline struct {
	site  *SiteService
	email *EmailService
}

func NewLeadPipeline(site *SiteService, email *EmailService) *LeadPipeline {
	return &LeadPipeline{site: site, email: email}
}

// Process handles one lead task. Email failures are returned so the
// async queue can retry; the audit entry is written regardless.
func (p *LeadPipeline) Process(ctx context.Context, task *LeadTask) error {
	LogInfo("leads", "intake",
		fmt.Sprintf("new inquiry from %s (%s)", task.Lead.Name, task.Lead.Email),
		nil, "", "",
		map[string]interface{}{
			"lead_id":           task.Lead.ID,
			"service_interest":  task.Lead.ServiceInterest,
			"expected_response": task.ExpectedResponse,
		})

	cfg := p.site.Config()
	if cfg.ContactEmail == "" {
		return nil
	}

	return p.email.SendLeadAlert(&task.Lead, task.ExpectedResponse, []string{cfg.ContactEmail})
}
