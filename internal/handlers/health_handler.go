package handlers

import (
	"context"
	"net/http"
	"time"

	"expense-bot/internal/dto"
	"expense-bot/internal/errors"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler. breaker may be
// nil when the Telegram client is not wired.
func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck reports database connectivity and the Telegram circuit state
// @Summary Health check
// @Description Check database connectivity and Telegram client state
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.pingDatabase(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	resp := dto.HealthResponse{
		Status:    "healthy",
		Checks:    map[string]string{"database": "ok"},
		Timestamp: time.Now().UTC(),
	}

	// An open breaker degrades replies but the webhook still accepts updates.
	if h.breaker != nil {
		state := h.breaker.GetState()
		resp.Checks["telegram"] = state.String()
		if state != services.StateClosed {
			resp.Status = "degraded"
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HealthCheckHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
