package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNilExpense      = errors.New("expense cannot be nil")
)

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return ErrNilExpense
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) CreateAndClearPending(expense *models.Expense) error {
	if expense == nil {
		return ErrNilExpense
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// claiming the slot first lets only one of two concurrent callers commit
		result := tx.Delete(&models.PendingAmount{}, "user_id = ?", expense.UserID)
		if result.Error != nil {
			return fmt.Errorf("failed to clear pending amount: %w", result.Error)
		}
		if result.RowsAffected != 1 {
			return ErrPendingAmountNotFound
		}
		if err := tx.Create(expense).Error; err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}
		return nil
	})
}

func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetByUserID returns one page of a user's expenses, newest first, plus the total count
func (r *expenseRepository) GetByUserID(userID int64, filters models.ExpenseFilters, offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := r.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filters.CategoryID != "" {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at < ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, total, nil
}

func (r *expenseRepository) GetRecentByUserID(userID int64, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}
	return expenses, nil
}

// GetCategorySummary groups a user's expenses in [startDate, endDate) by category,
// largest total first
func (r *expenseRepository) GetCategorySummary(userID int64, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	err := r.db.Model(&models.Expense{}).
		Select("category_id, COUNT(*) AS expense_count, SUM(amount) AS total_amount").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, startDate, endDate).
		Group("category_id").
		Order("total_amount DESC, category_id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}

func (r *expenseRepository) GetTotalByUserID(userID int64, startDate, endDate time.Time) (decimal.Decimal, int64, error) {
	var result struct {
		Total decimal.Decimal
		Count int64
	}

	err := r.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, startDate, endDate).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to get expense total: %w", err)
	}

	return result.Total, result.Count, nil
}
