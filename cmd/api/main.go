package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/qwii/qwii-api/internal/application/leadgen"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/config"
	"github.com/qwii/qwii-api/internal/infrastructure/database"
	"github.com/qwii/qwii-api/internal/infrastructure/repository"
	"github.com/qwii/qwii-api/internal/presentation/http/handler"
	"github.com/qwii/qwii-api/internal/presentation/http/routes"
	"github.com/qwii/qwii-api/pkg/logger"
	"github.com/qwii/qwii-api/pkg/pdf"
	"github.com/qwii/qwii-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.App.Env)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logger.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationItemRepo := repository.NewQuotationItemRepository(db)
	agreementRepo := repository.NewAgreementRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	leadSourceRepo := repository.NewLeadSourceRepository(db)
	leadLogRepo := repository.NewLeadGenerationLogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Initialize the PDF renderer
	renderer := pdf.NewRenderer(cfg.PDF.GotenbergURL, &http.Client{Timeout: cfg.PDF.Timeout})

	// Initialize services
	clientService := service.NewClientService(clientRepo, orderRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceItemRepo, clientRepo)
	quotationService := service.NewQuotationService(quotationRepo, quotationItemRepo, clientRepo)
	agreementService := service.NewAgreementService(agreementRepo, clientRepo)
	shareService := service.NewShareService(invoiceRepo, quotationRepo, agreementRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	registrationService := service.NewRegistrationService(registrationRepo, cfg.Payment)
	leadService := service.NewLeadService(leadRepo, leadSourceRepo, leadLogRepo)
	pdfService := service.NewDocumentPDFService(invoiceRepo, quotationRepo, agreementRepo, renderer, cfg.Company)

	// Initialize the lead generation orchestrator
	orchestrator := leadgen.NewOrchestrator(leadRepo, leadSourceRepo, leadLogRepo, settingsService, cfg.LeadGen)

	// Schedule automatic generation runs
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.LeadGen.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if _, err := orchestrator.Run(ctx, leadgen.RunInput{}); err != nil {
			logger.Error().Err(err).Msg("scheduled lead generation run failed")
		}
	}); err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.LeadGen.CronSchedule).Msg("invalid cron schedule")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize handlers
	handlers := &routes.Handlers{
		Client:       handler.NewClientHandler(clientService),
		Invoice:      handler.NewInvoiceHandler(invoiceService, pdfService),
		Quotation:    handler.NewQuotationHandler(quotationService, pdfService),
		Agreement:    handler.NewAgreementHandler(agreementService, pdfService),
		Lead:         handler.NewLeadHandler(leadService, orchestrator),
		Share:        handler.NewShareHandler(shareService, pdfService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Registration: handler.NewRegistrationHandler(registrationService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
