package main

import (
	"github.com/obaspub/scholarsite/backend/internal/config"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/internal/store"
	"github.com/obaspub/scholarsite/backend/internal/utils"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
)

// appServices holds the initialized services shared by the route handlers.
type appServices struct {
	cfg         *config.Config
	hub         *services.NotificationHub
	site        *services.SiteService
	authService *services.AuthService
	suggestions *services.SuggestionService
	scheduler   *services.ResponseScheduler
	digest      *services.DailyDigestService
	taskQueue   services.TaskQueue
	worker      *services.Worker
}

// bootstrap initializes the database, services and schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	services.InitSystemLogger(models.GetDB())
	services.StartLogCleanupScheduler(models.GetDB())

	hub := services.NewNotificationHub()
	site := services.NewSiteService(store.NewGormStore(models.GetDB()), hub)
	emailService := services.NewEmailService(&cfg.Email)
	scheduler := services.NewResponseScheduler()

	// Lead alerts go through the task queue; with Redis enabled they are
	// delivered by the asynq worker, otherwise in-process.
	pipeline := services.NewLeadPipeline(site, emailService)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(pipeline.Process)
	}

	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(pipeline.Process)
			worker.Start()
		}
	}

	digest := services.NewDailyDigestService(site, emailService)
	digest.StartScheduler()

	authService := services.NewAuthService(models.GetDB(), &cfg.LDAP, &cfg.JWT, hub)
	if err := authService.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:         cfg,
		hub:         hub,
		site:        site,
		authService: authService,
		suggestions: services.NewSuggestionService(&cfg.AI),
		scheduler:   scheduler,
		digest:      digest,
		taskQueue:   taskQueue,
		worker:      worker,
	}
}

// shutdown gracefully stops the schedulers and queue.
func (s *appServices) shutdown() {
	s.digest.StopScheduler()
	services.StopLogCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
