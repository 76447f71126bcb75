package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"expense-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureBotLogger() (BotLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewBotLogger(logger), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestBotLogger_ExpenseRecorded(t *testing.T) {
	logger, buf := captureBotLogger()
	ctx := WithCorrelationID(context.Background(), "trace-123")

	expense := &models.Expense{
		ID:           uuid.New(),
		UserID:       42,
		Amount:       decimal.NewFromInt(500),
		CategoryID:   "coffee",
		StageReached: 4,
		Confidence:   0.95,
	}
	logger.LogExpenseRecorded(ctx, expense)

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "expense_recorded", entry["event_type"])
	assert.Equal(t, "trace-123", entry["correlation_id"])
	assert.Equal(t, "500.00", entry["amount"])
	assert.Equal(t, "coffee", entry["category_id"])
	assert.EqualValues(t, 42, entry["user_id"])
}

func TestBotLogger_ParseFailedOmitsText(t *testing.T) {
	logger, buf := captureBotLogger()

	logger.LogParseFailed(context.Background(), 7, 12)

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "parse_failed", entry["event_type"])
	assert.EqualValues(t, 12, entry["text_length"])
	assert.Equal(t, "", entry["correlation_id"])
}

func TestBotLogger_TelegramCallFailedIsWarning(t *testing.T) {
	logger, buf := captureBotLogger()

	logger.LogTelegramCallFailed(context.Background(), "sendMessage", errors.New("timeout"))

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "sendMessage", entry["method"])
	assert.Equal(t, "timeout", entry["error"])
}

func TestGetCorrelationID(t *testing.T) {
	assert.Equal(t, "", getCorrelationID(context.Background()))
	assert.Equal(t, "abc", getCorrelationID(WithCorrelationID(context.Background(), "abc")))
}
