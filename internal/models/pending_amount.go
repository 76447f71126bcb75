package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PendingAmount holds a recognized amount while the user picks a category.
// There is at most one per user; a newer amount replaces the older one.
type PendingAmount struct {
	UserID      int64           `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ChatID      int64           `gorm:"not null" json:"chat_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255)" json:"description,omitempty"`
	UpdatedAt   time.Time       `gorm:"not null;index" json:"updated_at"`
}

func (p *PendingAmount) BeforeSave(tx *gorm.DB) error {
	if p.UserID == 0 {
		return ErrMissingUserID
	}
	p.Amount = p.Amount.Round(2)
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// IsExpired reports whether the slot is older than ttl at now
func (p *PendingAmount) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.UpdatedAt) > ttl
}

// ToExpense turns the pending slot into an expense for the chosen category
func (p *PendingAmount) ToExpense(categoryID string) *Expense {
	return &Expense{
		UserID:       p.UserID,
		ChatID:       p.ChatID,
		Amount:       p.Amount,
		Description:  p.Description,
		CategoryID:   categoryID,
		Confidence:   1.0,
		StageReached: StageManual,
	}
}

func (p *PendingAmount) TableName() string {
	return "pending_amounts"
}
