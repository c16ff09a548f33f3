package main

import (
	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/handlers"
	"github.com/obaspub/scholarsite/backend/internal/middleware"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Separate per-IP limiters so a burst of contact submissions does
	// not exhaust the same IP's suggestion quota
	contactLimiter := middleware.NewRateLimiter(1, 5)
	aiLimiter := middleware.NewRateLimiter(1, 5)

	healthHandler := handlers.NewHealthHandler(svc.hub)
	r.GET("/health", healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		authHandler := handlers.NewAuthHandler(svc.authService, &svc.cfg.LDAP)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/config", authHandler.AuthConfig)
		}

		// Public site content
		siteHandler := handlers.NewSiteHandler(svc.site)
		site := api.Group("/site")
		{
			site.GET("/config", siteHandler.GetConfig)
			site.GET("/services", siteHandler.GetServices)
			site.GET("/testimonials", siteHandler.GetTestimonials)
			site.GET("/blog", siteHandler.GetBlog)
		}

		// Contact form (public, rate limited)
		leadHandler := handlers.NewLeadHandler(svc.site, svc.scheduler)
		api.POST("/site/leads", contactLimiter.Middleware(), leadHandler.Create)

		// Notification stream (token checked inside for EventSource clients)
		notificationHandler := handlers.NewNotificationHandler(svc.hub)
		api.GET("/events/notifications", notificationHandler.Stream)

		// Authenticated routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/refresh", authHandler.Refresh)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)
		}

		// Admin only routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			admin.GET("/leads", leadHandler.List)
			admin.PUT("/config", siteHandler.UpdateConfig)
			admin.PUT("/services/:id", siteHandler.UpdateService)
			admin.POST("/blog", siteHandler.CreateBlogPost)
			admin.DELETE("/blog/:id", siteHandler.DeleteBlogPost)

			admin.GET("/notifications", notificationHandler.Active)
			admin.DELETE("/notifications/:id", notificationHandler.Dismiss)

			dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(svc.site))
			admin.GET("/dashboard", dashboardHandler.Stats)

			systemLogHandler := handlers.NewSystemLogHandler(models.GetDB())
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/modules", systemLogHandler.GetModules)
			admin.GET("/system-logs/retention", systemLogHandler.GetRetention)
			admin.PUT("/system-logs/retention", systemLogHandler.SetRetention)
			admin.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
		}

		// Suggestion endpoints cost provider tokens, so both are rate
		// limited; the title optimizer is a public site tool, topic
		// ideas are an admin feature
		aiHandler := handlers.NewAIHandler(svc.suggestions)
		ai := api.Group("/ai", aiLimiter.Middleware())
		{
			ai.POST("/titles", aiHandler.SuggestTitles)
			ai.POST("/topics", middleware.AuthRequired(), middleware.AdminRequired(), aiHandler.SuggestTopics)
		}
	}
}
