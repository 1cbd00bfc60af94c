package handler

import (
	"context"
	"net/http"
	"time"

	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	ping func(ctx context.Context) error
	log  logger.Logger
}

// NewHealthHandler creates a HealthHandler. ping may be nil.
func NewHealthHandler(ping func(ctx context.Context) error, log logger.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

func (h *HealthHandler) Check(c echo.Context) error {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.log.Warn("Health check: database unreachable: " + err.Error())
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
