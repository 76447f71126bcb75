package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"expense-bot/internal/dto"
	"expense-bot/internal/errors"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// SecretTokenHeader carries the secret registered with setWebhook
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookHandler receives updates pushed by Telegram
type WebhookHandler struct {
	botService services.BotServiceInterface
	secret     string
}

// NewWebhookHandler creates a new webhook handler. An empty secret disables
// the header check.
func NewWebhookHandler(botService services.BotServiceInterface, secret string) *WebhookHandler {
	return &WebhookHandler{
		botService: botService,
		secret:     secret,
	}
}

// HandleUpdate processes one Telegram update
// @Summary Receive Telegram update
// @Description Entry point registered with setWebhook. Processing failures are logged and still acknowledged so Telegram does not redeliver the update.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Telegram-Bot-Api-Secret-Token header string false "Webhook secret"
// @Param update body dto.Update true "Telegram update"
// @Success 200 {object} object{status=string} "Update accepted"
// @Failure 400 {object} errors.ErrorResponse "WEBHOOK_002 - Malformed update"
// @Failure 403 {object} errors.ErrorResponse "WEBHOOK_001 - Secret token mismatch"
// @Router /api/webhook [post]
func (h *WebhookHandler) HandleUpdate(c echo.Context) error {
	if !h.secretMatches(c.Request().Header.Get(SecretTokenHeader)) {
		slog.Warn("Webhook secret mismatch",
			"remote_ip", getClientIP(c),
			"trace_id", getTraceID(c),
		)
		return SendError(c, errors.WebhookInvalidSecret)
	}

	var update dto.Update
	if err := json.NewDecoder(c.Request().Body).Decode(&update); err != nil {
		return SendError(c, errors.WebhookInvalidUpdate, errors.WithDetails("Request body is not a Telegram update"))
	}

	if err := h.botService.HandleUpdate(requestContext(c), &update); err != nil {
		slog.Error("Failed to handle update",
			"update_id", update.UpdateID,
			"kind", update.Kind(),
			"error", err.Error(),
			"trace_id", getTraceID(c),
		)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// Status reports that the webhook endpoint is up
// @Summary Webhook status
// @Tags Webhook
// @Produce json
// @Success 200 {object} dto.WebhookStatusResponse
// @Router /api/webhook [get]
func (h *WebhookHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.WebhookStatusResponse{
		Status:    "active",
		Message:   "Telegram webhook endpoint is ready",
		Timestamp: time.Now().UTC(),
	})
}

func (h *WebhookHandler) secretMatches(got string) bool {
	if h.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}
