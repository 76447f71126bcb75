package services

import (
	"context"
	"log/slog"
	"time"

	"expense-bot/internal/models"
)

type BotLogger struct {
	logger *slog.Logger
}

func NewBotLogger(logger *slog.Logger) BotLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &BotLogger{
		logger: logger,
	}
}

func (bl *BotLogger) LogUpdateReceived(ctx context.Context, updateID int64, kind string, userID int64) {
	bl.logger.InfoContext(ctx, "update received",
		slog.String("event_type", "update_received"),
		slog.Int64("update_id", updateID),
		slog.String("kind", kind),
		slog.Int64("user_id", userID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (bl *BotLogger) LogExpenseRecorded(ctx context.Context, expense *models.Expense) {
	bl.logger.InfoContext(ctx, "expense recorded",
		slog.String("event_type", "expense_recorded"),
		slog.String("expense_id", expense.ID.String()),
		slog.Int64("user_id", expense.UserID),
		slog.String("amount", expense.Amount.StringFixed(2)),
		slog.String("category_id", expense.CategoryID),
		slog.Int("stage_reached", expense.StageReached),
		slog.Float64("confidence", expense.Confidence),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (bl *BotLogger) LogPendingAmountStored(ctx context.Context, pending *models.PendingAmount) {
	bl.logger.InfoContext(ctx, "pending amount stored",
		slog.String("event_type", "pending_amount_stored"),
		slog.Int64("user_id", pending.UserID),
		slog.String("amount", pending.Amount.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogParseFailed records only the text length; message bodies stay out of logs.
func (bl *BotLogger) LogParseFailed(ctx context.Context, userID int64, textLength int) {
	bl.logger.InfoContext(ctx, "parse failed",
		slog.String("event_type", "parse_failed"),
		slog.Int64("user_id", userID),
		slog.Int("text_length", textLength),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (bl *BotLogger) LogTelegramCallFailed(ctx context.Context, method string, err error) {
	bl.logger.WarnContext(ctx, "telegram call failed",
		slog.String("event_type", "telegram_call_failed"),
		slog.String("method", method),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (bl *BotLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	bl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (bl *BotLogger) LogPendingSweep(ctx context.Context, removed int64, remaining int64) {
	bl.logger.InfoContext(ctx, "pending amounts swept",
		slog.String("event_type", "pending_sweep"),
		slog.Int64("removed", removed),
		slog.Int64("remaining", remaining),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type contextKey string

// CorrelationIDKey is the context key the HTTP layer stores the trace ID under
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a copy of ctx carrying id for bot event logs
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
