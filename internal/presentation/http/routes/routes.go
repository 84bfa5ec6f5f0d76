package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qwii/qwii-api/internal/config"
	"github.com/qwii/qwii-api/internal/presentation/http/handler"
	"github.com/qwii/qwii-api/internal/presentation/http/middleware"
	"github.com/qwii/qwii-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Client       *handler.ClientHandler
	Invoice      *handler.InvoiceHandler
	Quotation    *handler.QuotationHandler
	Agreement    *handler.AgreementHandler
	Lead         *handler.LeadHandler
	Share        *handler.ShareHandler
	Settings     *handler.SettingsHandler
	Registration *handler.RegistrationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-identity rate limiter
		rateLimiter := middleware.NewIdentityRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	// Share links carry their own unguessable token
	shared := v1.Group("/shared")
	{
		shared.GET("/documents", h.Share.Resolve)
		shared.GET("/documents/pdf", h.Share.DownloadPDF)
	}

	v1.POST("/plan-registrations", h.Registration.Register)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Settings
	protected.GET("/settings", h.Settings.List)
	protected.PUT("/settings", h.Settings.Set)

	// Plan registrations (admin view)
	protected.GET("/plan-registrations", h.Registration.List)

	registerClientRoutes(protected, h)
	registerInvoiceRoutes(protected, h)
	registerQuotationRoutes(protected, h)
	registerAgreementRoutes(protected, h)
	registerLeadRoutes(protected, h)
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
		clients.GET("/:id/orders", h.Client.Orders)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/stats", h.Invoice.Stats)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.GET("/:id/pdf", h.Invoice.DownloadPDF)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/stats", h.Quotation.Stats)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.PATCH("/:id/status", h.Quotation.UpdateStatus)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.GET("/:id/pdf", h.Quotation.DownloadPDF)
	}
}

func registerAgreementRoutes(protected *gin.RouterGroup, h *Handlers) {
	agreements := protected.Group("/agreements")
	{
		agreements.GET("", h.Agreement.List)
		agreements.POST("", h.Agreement.Create)
		agreements.GET("/stats", h.Agreement.Stats)
		agreements.GET("/:id", h.Agreement.Get)
		agreements.PUT("/:id", h.Agreement.Update)
		agreements.PATCH("/:id/status", h.Agreement.UpdateStatus)
		agreements.DELETE("/:id", h.Agreement.Delete)
		agreements.GET("/:id/pdf", h.Agreement.DownloadPDF)
	}
}

func registerLeadRoutes(protected *gin.RouterGroup, h *Handlers) {
	leads := protected.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		leads.POST("/generate", h.Lead.Generate)
		leads.GET("/sources", h.Lead.ListSources)
		leads.POST("/sources", h.Lead.CreateSource)
		leads.PUT("/sources/:id", h.Lead.UpdateSource)
		leads.DELETE("/sources/:id", h.Lead.DeleteSource)
		leads.GET("/logs", h.Lead.ListLogs)
		leads.GET("/:id", h.Lead.Get)
		leads.PATCH("/:id/status", h.Lead.UpdateStatus)
		leads.DELETE("/:id", h.Lead.Delete)
	}
}
