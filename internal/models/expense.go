package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StageManual marks an expense whose category the user picked from the keyboard.
const StageManual = 0

const (
	MaxDescriptionLength = 255
	MaxCategoryIDLength  = 50
)

var (
	ErrInvalidAmount      = errors.New("expense amount must be positive")
	ErrMissingUserID      = errors.New("telegram user ID is required")
	ErrMissingCategory    = errors.New("expense category is required")
	ErrDescriptionTooLong = errors.New("expense description is too long")
	ErrInvalidConfidence  = errors.New("confidence must be between 0 and 1")
)

// Expense is one recorded spending entry of a Telegram user
type Expense struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       int64           `gorm:"not null;index" json:"user_id"`
	ChatID       int64           `gorm:"not null" json:"chat_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description  string          `gorm:"type:varchar(255)" json:"description,omitempty"`
	CategoryID   string          `gorm:"type:varchar(50);not null;index" json:"category_id"`
	Confidence   float64         `gorm:"not null;default:0" json:"confidence"`
	StageReached int             `gorm:"not null;default:0" json:"stage_reached"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.Amount = e.Amount.Round(2)

	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == 0 {
		return ErrMissingUserID
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if e.CategoryID == "" || len(e.CategoryID) > MaxCategoryIDLength {
		return ErrMissingCategory
	}
	if utf8.RuneCountInString(e.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return ErrInvalidConfidence
	}
	return nil
}

// IsManual reports whether the category came from the user rather than the classifier
func (e *Expense) IsManual() bool {
	return e.StageReached == StageManual
}

func (e *Expense) TableName() string {
	return "expenses"
}
