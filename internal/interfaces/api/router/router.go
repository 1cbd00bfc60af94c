package router

import (
	"fmt"
	"net/http"

	"medialert/internal/interfaces/api/handler"
	apimw "medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the dependencies for the router.
type Config struct {
	AuthHandler       *handler.AuthHandler
	ReminderHandler   *handler.ReminderHandler
	RefillHandler     *handler.RefillHandler
	DosageHandler     *handler.DosageHandler
	FeedbackHandler   *handler.FeedbackHandler
	SuggestionHandler *handler.SuggestionHandler
	HealthHandler     *handler.HealthHandler
	LineHandler       *handler.LineHandler // optional

	Tokens    apimw.TokenParser
	Validator echo.Validator
	Metrics   *metrics.Metrics
	Logger    logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = cfg.Validator
	e.HTTPErrorHandler = handler.HTTPErrorHandler(cfg.Logger)

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Line-Signature"},
		MaxAge:       300,
	}))
	e.Use(apimw.Metrics(cfg.Metrics))

	// Public routes
	e.GET("/health", cfg.HealthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/auth/login", cfg.AuthHandler.Login)

	// LINE Webhook Endpoint
	// Note: LINE Platform requires POST for webhook
	if cfg.LineHandler != nil {
		e.POST("/line/callback", cfg.LineHandler.HandleWebhook)
	}

	// Authenticated routes
	api := e.Group("/api", apimw.Auth(cfg.Tokens))
	api.GET("/profile", cfg.AuthHandler.Profile)

	api.GET("/dosages", cfg.DosageHandler.List)
	api.POST("/dosages", cfg.DosageHandler.Create)
	api.PUT("/dosages/:id", cfg.DosageHandler.Update)
	api.DELETE("/dosages/:id", cfg.DosageHandler.Delete)

	api.GET("/reminders", cfg.ReminderHandler.List)
	api.POST("/reminders", cfg.ReminderHandler.Create)
	api.GET("/reminders/due", cfg.ReminderHandler.Due)
	api.POST("/reminders/due/ack", cfg.ReminderHandler.Acknowledge)
	api.DELETE("/reminders/:id", cfg.ReminderHandler.Delete)

	api.GET("/refills", cfg.RefillHandler.List)
	api.POST("/refills", cfg.RefillHandler.Create)
	api.PUT("/refills/:id", cfg.RefillHandler.Update)
	api.DELETE("/refills/:id", cfg.RefillHandler.Delete)

	api.POST("/feedback", cfg.FeedbackHandler.Submit)
	api.POST("/suggestions/refill", cfg.SuggestionHandler.Refill)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
