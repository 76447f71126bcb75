package dto

import (
	"time"

	"expense-bot/internal/models"
)

// AdminSetWebhookRequest registers the webhook. An empty URL means the
// default https://<PUBLIC_HOST>/api/webhook.
type AdminSetWebhookRequest struct {
	WebhookURL         string `json:"webhook_url" validate:"omitempty,webhook_url"`
	DropPendingUpdates bool   `json:"drop_pending_updates"`
}

type AdminDeleteWebhookRequest struct {
	DropPendingUpdates bool `query:"drop_pending_updates"`
}

type WebhookStatusResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type BotInfoResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

// ListExpensesRequest represents path and query parameters for listing a user's expenses
type ListExpensesRequest struct {
	UserID   int64  `param:"userId" validate:"telegram_user_id"`
	Category string `query:"category" validate:"omitempty,category_id"`
	Offset   int    `query:"offset" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
}

type ExpensesListResponse struct {
	Expenses []models.Expense     `json:"expenses"`
	Stats    *models.ExpenseStats `json:"month_stats,omitempty"`
	Total    int64                `json:"total"`
	Offset   int                  `json:"offset"`
	Limit    int                  `json:"limit"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}

// TokenResponse is printed by the CLI when minting an admin token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
