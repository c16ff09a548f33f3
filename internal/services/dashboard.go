package services

import "time"

// DashboardStats summarizes site activity for the admin overview tab.
type DashboardStats struct {
	TotalLeads      int `json:"total_leads"`
	LeadsThisWeek   int `json:"leads_this_week"`
	BlogPosts       int `json:"blog_posts"`
	ServicePackages int `json:"service_packages"`
}

type DashboardService struct {
	site *SiteService
}

func NewDashboardService(site *SiteService) *DashboardService {
	return &DashboardService{site: site}
}

// Stats computes current counts. Leads this week counts records dated
// within the past 7 calendar days.
func (s *DashboardService) Stats() DashboardStats {
	leads := s.site.Leads()
	weekAgo := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	thisWeek := 0
	for _, lead := range leads {
		if lead.Date >= weekAgo {
			thisWeek++
		}
	}

	return DashboardStats{
		TotalLeads:      len(leads),
		LeadsThisWeek:   thisWeek,
		BlogPosts:       len(s.site.BlogPosts()),
		ServicePackages: len(s.site.Services()),
	}
}
