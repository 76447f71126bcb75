package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated expense data for one category
type CategorySummary struct {
	CategoryID   string          `json:"category_id"`
	ExpenseCount int64           `json:"expense_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// ExpenseStats is the per-period breakdown shown by /stats
type ExpenseStats struct {
	Categories   []CategorySummary `json:"categories"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	ExpenseCount int64             `json:"expense_count"`
}
