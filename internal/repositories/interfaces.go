package repositories

import (
	"time"

	"expense-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRepositoryInterface defines the contract for expense storage
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	// CreateAndClearPending stores expense and drops the owner's pending slot atomically.
	// It fails with ErrPendingAmountNotFound when the slot is already gone.
	CreateAndClearPending(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetByUserID(userID int64, filters models.ExpenseFilters, offset, limit int) ([]models.Expense, int64, error)
	GetRecentByUserID(userID int64, limit int) ([]models.Expense, error)
	GetCategorySummary(userID int64, startDate, endDate time.Time) ([]models.CategorySummary, error)
	GetTotalByUserID(userID int64, startDate, endDate time.Time) (decimal.Decimal, int64, error)
}

// PendingAmountRepositoryInterface defines the contract for pending amount storage
type PendingAmountRepositoryInterface interface {
	Upsert(pending *models.PendingAmount) error
	GetByUserID(userID int64) (*models.PendingAmount, error)
	Delete(userID int64) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
	Count() (int64, error)
}
