package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"expense-bot/internal/dto"
	"expense-bot/internal/models"
)

type BotService struct {
	expenses  ExpenseServiceInterface
	telegram  TelegramClientInterface
	botLogger BotLoggerInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
	now       func() time.Time
}

func NewBotService(
	expenses ExpenseServiceInterface,
	telegram TelegramClientInterface,
	botLogger BotLoggerInterface,
	metrics MetricsRecorderInterface,
) BotServiceInterface {
	return &BotService{
		expenses:  expenses,
		telegram:  telegram,
		botLogger: botLogger,
		metrics:   metrics,
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// HandleUpdate processes one Telegram update. Updates the bot does not act
// on (edited messages, messages without a sender) are acknowledged silently.
func (s *BotService) HandleUpdate(ctx context.Context, update *dto.Update) error {
	if update == nil {
		return nil
	}

	start := time.Now()
	kind := update.Kind()

	var userID int64
	switch {
	case update.Message != nil && update.Message.From != nil:
		userID = update.Message.From.ID
	case update.CallbackQuery != nil:
		userID = update.CallbackQuery.From.ID
	}
	s.botLogger.LogUpdateReceived(ctx, update.UpdateID, kind, userID)

	var err error
	switch {
	case update.Message != nil:
		err = s.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		err = s.handleCallbackQuery(ctx, update.CallbackQuery)
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.IncrementCounter("webhook.update", map[string]string{
		"kind":   kind,
		"status": status,
	})
	s.metrics.RecordProcessingTime("webhook.update", time.Since(start))

	return err
}

func (s *BotService) handleMessage(ctx context.Context, msg *dto.Message) error {
	if msg.From == nil || msg.From.IsBot || strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	if msg.IsCommand() {
		return s.handleCommand(ctx, msg)
	}
	return s.handleText(ctx, msg)
}

func (s *BotService) handleCommand(ctx context.Context, msg *dto.Message) error {
	taxonomy := s.expenses.Taxonomy()

	switch msg.Command() {
	case "start":
		return s.reply(ctx, msg.Chat.ID, startMessage(msg.From.FirstName), nil)
	case "help":
		return s.reply(ctx, msg.Chat.ID, helpMessage(taxonomy), nil)
	case "categories":
		return s.reply(ctx, msg.Chat.ID, categoriesMessage(taxonomy), nil)
	case "stats":
		stats, err := s.expenses.GetMonthlyStats(ctx, msg.From.ID, s.now())
		if err != nil {
			return s.replyFailure(ctx, msg.Chat.ID, err)
		}
		return s.reply(ctx, msg.Chat.ID, statsMessage(stats, taxonomy), nil)
	case "cancel":
		cancelled, err := s.expenses.CancelPending(ctx, msg.From.ID)
		if err != nil {
			return s.replyFailure(ctx, msg.Chat.ID, err)
		}
		return s.reply(ctx, msg.Chat.ID, cancelMessage(cancelled), nil)
	default:
		return s.reply(ctx, msg.Chat.ID, unknownCommandMessage(), nil)
	}
}

func (s *BotService) handleText(ctx context.Context, msg *dto.Message) error {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	tx := s.expenses.Parse(ctx, msg.Text)
	if tx == nil {
		return s.replyParseFailed(ctx, msg)
	}

	if tx.NeedsCategory() {
		pending, err := s.expenses.StorePending(ctx, userID, chatID, tx)
		if errors.Is(err, models.ErrInvalidAmount) {
			return s.replyParseFailed(ctx, msg)
		}
		if err != nil {
			return s.replyFailure(ctx, chatID, err)
		}
		return s.reply(ctx, chatID, chooseCategoryMessage(pending), categoryKeyboard(s.expenses.Taxonomy()))
	}

	expense, err := s.expenses.RecordExpense(ctx, userID, chatID, tx)
	if errors.Is(err, models.ErrInvalidAmount) {
		return s.replyParseFailed(ctx, msg)
	}
	if err != nil {
		return s.replyFailure(ctx, chatID, err)
	}
	return s.reply(ctx, chatID, expenseRecordedMessage(expense, s.expenses.Taxonomy()), nil)
}

// replyParseFailed covers text without a usable amount, including amounts that
// round to zero
func (s *BotService) replyParseFailed(ctx context.Context, msg *dto.Message) error {
	s.botLogger.LogParseFailed(ctx, msg.From.ID, utf8.RuneCountInString(msg.Text))
	return s.reply(ctx, msg.Chat.ID, parseFailedMessage(), nil)
}

func (s *BotService) handleCallbackQuery(ctx context.Context, query *dto.CallbackQuery) error {
	categoryID, ok := strings.CutPrefix(query.Data, CallbackCategoryPrefix)
	if !ok {
		return s.answer(ctx, query.ID, callbackUnknownAction, true)
	}

	expense, err := s.expenses.AssignCategory(ctx, query.From.ID, categoryID)
	switch {
	case errors.Is(err, ErrNoPendingAmount):
		return s.answer(ctx, query.ID, callbackNoPending, true)
	case errors.Is(err, ErrUnknownCategory):
		return s.answer(ctx, query.ID, callbackUnknownCategory, true)
	case err != nil:
		if answerErr := s.answer(ctx, query.ID, saveFailedMessage, true); answerErr != nil {
			return errors.Join(err, answerErr)
		}
		return err
	}

	if err := s.answer(ctx, query.ID, callbackSaved, false); err != nil {
		return err
	}

	text := expenseRecordedMessage(expense, s.expenses.Taxonomy())
	if query.Message != nil {
		err := s.telegram.EditMessageText(ctx, &dto.EditMessageTextRequest{
			ChatID:    query.Message.Chat.ID,
			MessageID: query.Message.MessageID,
			Text:      text,
		})
		if err == nil {
			return nil
		}
		s.botLogger.LogTelegramCallFailed(ctx, "editMessageText", err)
	}

	return s.reply(ctx, expense.ChatID, text, nil)
}

func (s *BotService) reply(ctx context.Context, chatID int64, text string, keyboard *dto.InlineKeyboardMarkup) error {
	_, err := s.telegram.SendMessage(ctx, &dto.SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		s.botLogger.LogTelegramCallFailed(ctx, "sendMessage", err)
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

// replyFailure tells the user the operation failed and returns the cause
func (s *BotService) replyFailure(ctx context.Context, chatID int64, cause error) error {
	s.logger.ErrorContext(ctx, "failed to handle message",
		slog.Int64("chat_id", chatID),
		slog.String("error", cause.Error()),
	)
	if err := s.reply(ctx, chatID, saveFailedMessage, nil); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (s *BotService) answer(ctx context.Context, queryID, text string, alert bool) error {
	err := s.telegram.AnswerCallbackQuery(ctx, &dto.AnswerCallbackQueryRequest{
		CallbackQueryID: queryID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		s.botLogger.LogTelegramCallFailed(ctx, "answerCallbackQuery", err)
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}
