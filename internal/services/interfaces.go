package services

import (
	"context"
	"time"

	"expense-bot/internal/dto"
	"expense-bot/internal/models"
	"expense-bot/internal/parser"
)

// MetricsRecorderInterface records service metrics. It also satisfies
// parser.Observer so pipeline stage outcomes land in the same registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	ObserveStage(stage int, matched bool)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// BotLoggerInterface emits structured bot events
type BotLoggerInterface interface {
	LogUpdateReceived(ctx context.Context, updateID int64, kind string, userID int64)
	LogExpenseRecorded(ctx context.Context, expense *models.Expense)
	LogPendingAmountStored(ctx context.Context, pending *models.PendingAmount)
	LogParseFailed(ctx context.Context, userID int64, textLength int)
	LogTelegramCallFailed(ctx context.Context, method string, err error)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogPendingSweep(ctx context.Context, removed int64, remaining int64)
}

// TelegramClientInterface is the subset of the Bot API the bot uses
type TelegramClientInterface interface {
	GetMe(ctx context.Context) (*dto.User, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.Message, error)
	EditMessageText(ctx context.Context, req *dto.EditMessageTextRequest) error
	AnswerCallbackQuery(ctx context.Context, req *dto.AnswerCallbackQueryRequest) error
	SetWebhook(ctx context.Context, req *dto.SetWebhookRequest) error
	DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error
	GetWebhookInfo(ctx context.Context) (*dto.WebhookInfo, error)
}

// ExpenseServiceInterface turns parsed messages into stored expenses
type ExpenseServiceInterface interface {
	Parse(ctx context.Context, text string) *parser.ParsedTransaction
	Taxonomy() *parser.Taxonomy
	RecordExpense(ctx context.Context, userID, chatID int64, tx *parser.ParsedTransaction) (*models.Expense, error)
	StorePending(ctx context.Context, userID, chatID int64, tx *parser.ParsedTransaction) (*models.PendingAmount, error)
	AssignCategory(ctx context.Context, userID int64, categoryID string) (*models.Expense, error)
	CancelPending(ctx context.Context, userID int64) (bool, error)
	GetMonthlyStats(ctx context.Context, userID int64, now time.Time) (*models.ExpenseStats, error)
	GetUserExpenses(ctx context.Context, userID int64, filters models.ExpenseFilters, offset, limit int) ([]models.Expense, int64, error)
}

// BotServiceInterface dispatches Telegram updates
type BotServiceInterface interface {
	HandleUpdate(ctx context.Context, update *dto.Update) error
}

type TokenServiceInterface interface {
	GenerateAdminToken(subject, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PendingSweeperInterface purges stale pending amounts
type PendingSweeperInterface interface {
	Sweep(ctx context.Context) (int64, error)
	Start(ctx context.Context)
}
