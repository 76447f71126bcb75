package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPendingAmountNotFound = errors.New("pending amount not found")
	ErrNilPendingAmount      = errors.New("pending amount cannot be nil")
)

type pendingAmountRepository struct {
	db *gorm.DB
}

func NewPendingAmountRepository(db *gorm.DB) PendingAmountRepositoryInterface {
	return &pendingAmountRepository{db: db}
}

// Upsert stores the user's pending amount, replacing any previous one wholesale
func (r *pendingAmountRepository) Upsert(pending *models.PendingAmount) error {
	if pending == nil {
		return ErrNilPendingAmount
	}
	if pending.UpdatedAt.IsZero() {
		pending.UpdatedAt = time.Now().UTC()
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"chat_id", "amount", "description", "updated_at"}),
	}).Create(pending).Error
	if err != nil {
		return fmt.Errorf("failed to store pending amount: %w", err)
	}
	return nil
}

func (r *pendingAmountRepository) GetByUserID(userID int64) (*models.PendingAmount, error) {
	var pending models.PendingAmount
	if err := r.db.Where("user_id = ?", userID).First(&pending).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingAmountNotFound
		}
		return nil, fmt.Errorf("failed to get pending amount: %w", err)
	}
	return &pending, nil
}

// Delete drops the user's pending amount. Deleting a missing slot is not an error.
func (r *pendingAmountRepository) Delete(userID int64) error {
	if err := r.db.Delete(&models.PendingAmount{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete pending amount: %w", err)
	}
	return nil
}

func (r *pendingAmountRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("updated_at < ?", cutoff).Delete(&models.PendingAmount{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge pending amounts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *pendingAmountRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.PendingAmount{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending amounts: %w", err)
	}
	return count, nil
}
