package main

import (
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/config"
	"inkwell/backend/internal/db"
	"inkwell/backend/internal/handler"
	apphttp "inkwell/backend/internal/http"
	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/network"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/scheduler"
	"inkwell/backend/internal/service"
	"inkwell/backend/internal/service/ai"
	"inkwell/backend/internal/snowflake"
	"inkwell/backend/internal/workflow"
)

type app struct {
	db        *sql.DB
	router    *echo.Echo
	scheduler *scheduler.Scheduler
}

func initIDs(cfg config.Config) error {
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}
	return nil
}

func newApp(cfg config.Config) (*app, error) {
	if err := initIDs(cfg); err != nil {
		return nil, err
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	trustedProxies, err := config.ParseCIDRs(cfg.TrustedProxies)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("parse trusted proxies: %w", err)
	}

	catalog, err := billing.LoadCatalog(cfg.PlansFile)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("load plans: %w", err)
	}

	userRepo := repository.NewUserRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)
	subscriptionRepo := repository.NewSubscriptionRepository(conn)
	usageRepo := repository.NewUsageRepository(conn)
	workflowRepo := repository.NewWorkflowRepository(conn)
	projectRepo := repository.NewProjectRepository(conn)
	postRepo := repository.NewBlogPostRepository(conn)
	contactRepo := repository.NewContactRepository(conn)
	translationRepo := repository.NewTranslationRepository(conn)

	rateLimiter := ai.NewRateLimiter(cfg.AIRateLimit)
	settingsService := service.NewSettingsService(settingsRepo, workflow.Config{
		URL:     cfg.WebhookURL,
		Secret:  cfg.WebhookSecret,
		Timeout: cfg.WebhookTimeout,
	}, rateLimiter)

	clients := network.NewClientFactory(settingsService, config.UserAgent)
	generator := service.NewGenerator(
		settingsService,
		workflow.NewClient(settingsService, clients),
		ai.NewGenerator(settingsService.AIProvider, rateLimiter),
	)

	authService := service.NewAuthService(userRepo, settingsRepo)
	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(postRepo, translationRepo)
	translationService := service.NewTranslationService(postRepo, translationRepo, workflowRepo, generator, cfg.TranslationWorkers)
	subscriptionService := service.NewSubscriptionService(
		subscriptionRepo,
		usageRepo,
		userRepo,
		catalog,
		billing.NewClient(cfg.BillingURL, cfg.BillingAPIKey, clients),
		cfg.BillingWebhookSecret,
		cfg.AppURL,
	)
	readabilityService := service.NewReadabilityService(clients)
	contentService := service.NewContentService(projectRepo, generator, subscriptionService, blogService, readabilityService, cfg.MaxPriorities)
	contactService := service.NewContactService(contactRepo)
	importService := service.NewImportService(blogService, postRepo, service.NewImportTaskService(), clients)

	router := apphttp.NewRouter(apphttp.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Users:        handler.NewUserHandler(userService),
		Blog:         handler.NewBlogHandler(blogService),
		Translations: handler.NewTranslationHandler(translationService),
		Content:      handler.NewContentHandler(contentService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Contact:      handler.NewContactHandler(contactService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Import:       handler.NewImportHandler(importService),
	}, authService, apphttp.RouterConfig{
		StaticDir:      cfg.StaticDir,
		AllowOrigins:   cfg.CORSOrigins,
		ContactRate:    cfg.ContactRateLimit,
		TrustedProxies: trustedProxies,
	})

	logger.Info("application wired", "module", "server", "action", "start", "resource", "app", "result", "ok", "db", cfg.DBPath, "plans", len(catalog.Plans()))

	return &app{
		db:        conn,
		router:    router,
		scheduler: scheduler.New(translationService, cfg.TranslationInterval, scheduler.DefaultBatch),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Warn("close database failed", "module", "server", "action", "stop", "resource", "database", "result", "failed", "error", err)
	}
}
