package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"expense-bot/internal/config"
	"expense-bot/internal/dto"
	apierrors "expense-bot/internal/errors"
	"expense-bot/internal/models"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// allowedUpdates are the update kinds the bot subscribes to
var allowedUpdates = []string{"message", "callback_query"}

// AdminHandler handles operator endpoints for webhook management and expense lookup
type AdminHandler struct {
	telegram     services.TelegramClientInterface
	expenses     services.ExpenseServiceInterface
	telegramCfg  *config.TelegramConfig
	defaultLimit int
	now          func() time.Time
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	telegram services.TelegramClientInterface,
	expenses services.ExpenseServiceInterface,
	telegramCfg *config.TelegramConfig,
	defaultLimit int,
) *AdminHandler {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &AdminHandler{
		telegram:     telegram,
		expenses:     expenses,
		telegramCfg:  telegramCfg,
		defaultLimit: defaultLimit,
		now:          time.Now,
	}
}

// SetWebhook registers the webhook URL with Telegram
// @Summary Register webhook (admin)
// @Description Calls setWebhook with the given URL, or https://<PUBLIC_HOST>/api/webhook when omitted
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AdminSetWebhookRequest false "Webhook settings"
// @Success 200 {object} SuccessResponse "Webhook registered"
// @Failure 400 {object} errors.ErrorResponse "WEBHOOK_003 - No usable webhook URL"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Failure 502 {object} errors.ErrorResponse "TELEGRAM_001 - Telegram rejected the request"
// @Failure 503 {object} errors.ErrorResponse "TELEGRAM_002 - Telegram unavailable"
// @Router /api/admin/webhook [post]
func (h *AdminHandler) SetWebhook(c echo.Context) error {
	var req dto.AdminSetWebhookRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if req.WebhookURL == "" {
		req.WebhookURL = h.telegramCfg.WebhookURL()
	}
	if req.WebhookURL == "" {
		return SendError(c, apierrors.WebhookInvalidURL, apierrors.WithDetails("Set PUBLIC_HOST or pass webhook_url"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.telegram.SetWebhook(requestContext(c), &dto.SetWebhookRequest{
		URL:                req.WebhookURL,
		SecretToken:        h.telegramCfg.WebhookSecret,
		AllowedUpdates:     allowedUpdates,
		DropPendingUpdates: req.DropPendingUpdates,
	})
	if err != nil {
		return SendTelegramError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Webhook registered",
		Data:    map[string]interface{}{"webhook_url": req.WebhookURL},
	})
}

// DeleteWebhook removes the webhook registration
// @Summary Remove webhook (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param drop_pending_updates query bool false "Drop updates Telegram has queued"
// @Success 200 {object} SuccessResponse "Webhook removed"
// @Failure 502 {object} errors.ErrorResponse "TELEGRAM_001 - Telegram rejected the request"
// @Failure 503 {object} errors.ErrorResponse "TELEGRAM_002 - Telegram unavailable"
// @Router /api/admin/webhook [delete]
func (h *AdminHandler) DeleteWebhook(c echo.Context) error {
	var req dto.AdminDeleteWebhookRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := h.telegram.DeleteWebhook(requestContext(c), req.DropPendingUpdates); err != nil {
		return SendTelegramError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Webhook removed"})
}

// GetWebhookInfo returns Telegram's view of the webhook
// @Summary Webhook info (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.WebhookInfo
// @Failure 502 {object} errors.ErrorResponse "TELEGRAM_001 - Telegram rejected the request"
// @Failure 503 {object} errors.ErrorResponse "TELEGRAM_002 - Telegram unavailable"
// @Router /api/admin/webhook [get]
func (h *AdminHandler) GetWebhookInfo(c echo.Context) error {
	info, err := h.telegram.GetWebhookInfo(requestContext(c))
	if err != nil {
		return SendTelegramError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// GetBotInfo returns the identity of the bot behind the configured token
// @Summary Bot identity (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BotInfoResponse
// @Failure 502 {object} errors.ErrorResponse "TELEGRAM_001 - Telegram rejected the request"
// @Failure 503 {object} errors.ErrorResponse "TELEGRAM_002 - Telegram unavailable"
// @Router /api/admin/bot [get]
func (h *AdminHandler) GetBotInfo(c echo.Context) error {
	me, err := h.telegram.GetMe(requestContext(c))
	if err != nil {
		return SendTelegramError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BotInfoResponse{
		ID:        me.ID,
		Username:  me.Username,
		FirstName: me.FirstName,
	})
}

// ListUserExpenses lists a user's expenses with the current month's summary
// @Summary List user expenses (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path int true "Telegram user ID"
// @Param category query string false "Category ID filter"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} dto.ExpensesListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/admin/users/{userId}/expenses [get]
func (h *AdminHandler) ListUserExpenses(c echo.Context) error {
	if _, err := strconv.ParseInt(c.Param("userId"), 10, 64); err != nil {
		return SendError(c, apierrors.ValidationInvalidUserID, apierrors.WithDetails("User ID must be an integer"))
	}

	req := dto.ListExpensesRequest{Limit: h.defaultLimit}
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := requestContext(c)
	expenses, total, err := h.expenses.GetUserExpenses(ctx, req.UserID, models.ExpenseFilters{CategoryID: req.Category}, req.Offset, req.Limit)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			return SendError(c, apierrors.ParseUnknownCategory)
		}
		return SendSystemError(c, err)
	}

	stats, err := h.expenses.GetMonthlyStats(ctx, req.UserID, h.now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpensesListResponse{
		Expenses: expenses,
		Stats:    stats,
		Total:    total,
		Offset:   req.Offset,
		Limit:    req.Limit,
	})
}
