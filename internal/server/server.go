// Package server assembles the echo application: middleware chain, routes
// and the Prometheus endpoint.
package server

import (
	"context"
	"net/http"
	"strings"

	"expense-bot/internal/config"
	"expense-bot/internal/handlers"
	"expense-bot/internal/middleware"
	"expense-bot/internal/parser"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const (
	WebhookPath = "/api/webhook"
	bodyLimit   = "64K"
)

// Dependencies are the collaborators the routes are built from
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Taxonomy *parser.Taxonomy
	Bot      services.BotServiceInterface
	Expenses services.ExpenseServiceInterface
	Telegram services.TelegramClientInterface
	Breaker  services.CircuitBreakerInterface
	Tokens   services.TokenServiceInterface
	// Gatherer backs /metrics; nil means the default registry.
	Gatherer prometheus.Gatherer
}

// New builds the echo instance. ctx bounds background work started by the
// middleware (rate limiter eviction).
func New(ctx context.Context, deps Dependencies) *echo.Echo {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator(deps.Taxonomy)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(middleware.RateLimiter(ctx, middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Security.RateLimitPerSecond,
		Burst:             cfg.Security.RateLimitBurst,
		Skipper:           skipRateLimit,
	}))

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	health := handlers.NewHealthCheckHandler(deps.DB, deps.Breaker)
	webhook := handlers.NewWebhookHandler(deps.Bot, cfg.Telegram.WebhookSecret)
	parse := handlers.NewParseHandler(deps.Expenses)
	admin := handlers.NewAdminHandler(deps.Telegram, deps.Expenses, &cfg.Telegram, cfg.Bot.RecentExpenses)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	e.POST(WebhookPath, webhook.HandleUpdate)
	e.GET(WebhookPath, webhook.Status)

	v1 := e.Group("/api/v1")
	v1.POST("/parse", parse.Parse)
	v1.GET("/categories", parse.Categories)

	adminGroup := e.Group("/api/admin", middleware.RequireAuth(deps.Tokens), middleware.RequireAdmin())
	adminGroup.POST("/webhook", admin.SetWebhook)
	adminGroup.DELETE("/webhook", admin.DeleteWebhook)
	adminGroup.GET("/webhook", admin.GetWebhookInfo)
	adminGroup.GET("/bot", admin.GetBotInfo)
	adminGroup.GET("/users/:userId/expenses", admin.ListUserExpenses)

	return e
}

// skipRateLimit exempts Telegram pushes and infrastructure probes, which
// arrive from a few shared addresses
func skipRateLimit(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == WebhookPath || path == "/health" || strings.HasPrefix(path, "/metrics")
}
