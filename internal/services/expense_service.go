package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"expense-bot/internal/models"
	"expense-bot/internal/parser"
	"expense-bot/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrNilTransaction   = errors.New("parsed transaction cannot be nil")
	ErrCategoryRequired = errors.New("parsed transaction has no category")
	ErrNoPendingAmount  = errors.New("no pending amount for user")
	ErrUnknownCategory  = errors.New("unknown category")
)

// Category assignment sources used as metric labels
const (
	SourceKeyword  = "keyword"
	SourceCatchAll = "catch_all"
	SourceManual   = "manual"
)

type ExpenseService struct {
	pipeline    *parser.Pipeline
	expenseRepo repositories.ExpenseRepositoryInterface
	pendingRepo repositories.PendingAmountRepositoryInterface
	botLogger   BotLoggerInterface
	metrics     MetricsRecorderInterface
	pendingTTL  time.Duration
	now         func() time.Time
}

func NewExpenseService(
	pipeline *parser.Pipeline,
	expenseRepo repositories.ExpenseRepositoryInterface,
	pendingRepo repositories.PendingAmountRepositoryInterface,
	botLogger BotLoggerInterface,
	metrics MetricsRecorderInterface,
	pendingTTL time.Duration,
) ExpenseServiceInterface {
	return &ExpenseService{
		pipeline:    pipeline,
		expenseRepo: expenseRepo,
		pendingRepo: pendingRepo,
		botLogger:   botLogger,
		metrics:     metrics,
		pendingTTL:  pendingTTL,
		now:         time.Now,
	}
}

func (s *ExpenseService) Taxonomy() *parser.Taxonomy {
	return s.pipeline.Taxonomy()
}

// Parse runs the pipeline and records the outcome. A nil result means the
// text carried no recognizable amount.
func (s *ExpenseService) Parse(ctx context.Context, text string) *parser.ParsedTransaction {
	start := time.Now()
	tx := s.pipeline.Process(text)
	s.metrics.RecordProcessingTime("parse.pipeline", time.Since(start))

	if tx == nil {
		s.metrics.IncrementCounter("parse.completed", nil)
		return nil
	}

	s.metrics.IncrementCounter("parse.completed", map[string]string{
		"stage": strconv.Itoa(tx.StageReached),
	})
	s.metrics.RecordGauge("parse.confidence", tx.Confidence, nil)

	return tx
}

// RecordExpense stores a fully classified transaction
func (s *ExpenseService) RecordExpense(ctx context.Context, userID, chatID int64, tx *parser.ParsedTransaction) (*models.Expense, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}
	if tx.Category == nil {
		return nil, ErrCategoryRequired
	}

	expense := &models.Expense{
		UserID:       userID,
		ChatID:       chatID,
		Amount:       tx.Amount,
		Description:  tx.Description,
		CategoryID:   tx.Category.ID,
		Confidence:   tx.Confidence,
		StageReached: tx.StageReached,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	source := SourceKeyword
	if tx.Category.CatchAll {
		source = SourceCatchAll
	}
	s.recordAssignment(expense.CategoryID, source)
	s.botLogger.LogExpenseRecorded(ctx, expense)

	return expense, nil
}

// StorePending parks an amount until the user picks a category, replacing
// any amount the user already had waiting.
func (s *ExpenseService) StorePending(ctx context.Context, userID, chatID int64, tx *parser.ParsedTransaction) (*models.PendingAmount, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}

	pending := &models.PendingAmount{
		UserID:      userID,
		ChatID:      chatID,
		Amount:      tx.Amount,
		Description: tx.Description,
		UpdatedAt:   s.now().UTC(),
	}

	if err := s.pendingRepo.Upsert(pending); err != nil {
		return nil, fmt.Errorf("failed to store pending amount: %w", err)
	}

	s.metrics.IncrementCounter("pending.stored", nil)
	s.botLogger.LogPendingAmountStored(ctx, pending)

	return pending, nil
}

// AssignCategory turns the user's pending amount into an expense of the
// chosen category. Expired slots are dropped and reported as missing.
func (s *ExpenseService) AssignCategory(ctx context.Context, userID int64, categoryID string) (*models.Expense, error) {
	category, ok := s.Taxonomy().ByID(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}

	pending, err := s.pendingRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPendingAmountNotFound) {
			return nil, ErrNoPendingAmount
		}
		return nil, fmt.Errorf("failed to load pending amount: %w", err)
	}

	if s.pendingTTL > 0 && pending.IsExpired(s.now(), s.pendingTTL) {
		if err := s.pendingRepo.Delete(userID); err != nil {
			return nil, fmt.Errorf("failed to drop expired pending amount: %w", err)
		}
		return nil, ErrNoPendingAmount
	}

	expense := pending.ToExpense(category.ID)
	if err := s.expenseRepo.CreateAndClearPending(expense); err != nil {
		if errors.Is(err, repositories.ErrPendingAmountNotFound) {
			return nil, ErrNoPendingAmount
		}
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	s.recordAssignment(expense.CategoryID, SourceManual)
	s.botLogger.LogExpenseRecorded(ctx, expense)

	return expense, nil
}

// CancelPending drops the user's pending amount and reports whether one existed
func (s *ExpenseService) CancelPending(ctx context.Context, userID int64) (bool, error) {
	if _, err := s.pendingRepo.GetByUserID(userID); err != nil {
		if errors.Is(err, repositories.ErrPendingAmountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load pending amount: %w", err)
	}

	if err := s.pendingRepo.Delete(userID); err != nil {
		return false, fmt.Errorf("failed to delete pending amount: %w", err)
	}
	return true, nil
}

// GetMonthlyStats aggregates the user's expenses for the calendar month of now
func (s *ExpenseService) GetMonthlyStats(ctx context.Context, userID int64, now time.Time) (*models.ExpenseStats, error) {
	start, end := MonthBounds(now)

	summary, err := s.expenseRepo.GetCategorySummary(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load category summary: %w", err)
	}

	stats := &models.ExpenseStats{
		Categories:  summary,
		TotalAmount: decimal.Zero,
	}
	for _, item := range summary {
		stats.TotalAmount = stats.TotalAmount.Add(item.TotalAmount)
		stats.ExpenseCount += item.ExpenseCount
	}

	return stats, nil
}

func (s *ExpenseService) GetUserExpenses(ctx context.Context, userID int64, filters models.ExpenseFilters, offset, limit int) ([]models.Expense, int64, error) {
	if filters.CategoryID != "" {
		if _, ok := s.Taxonomy().ByID(filters.CategoryID); !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrUnknownCategory, filters.CategoryID)
		}
	}

	expenses, total, err := s.expenseRepo.GetByUserID(userID, filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, total, nil
}

func (s *ExpenseService) recordAssignment(categoryID, source string) {
	s.metrics.IncrementCounter("category.assigned", map[string]string{
		"category": categoryID,
		"source":   source,
	})
	s.metrics.IncrementCounter("expense.recorded", map[string]string{
		"source": source,
	})
}

// MonthBounds returns the half-open [first day, first day of next month)
// range containing t, in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
