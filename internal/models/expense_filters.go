package models

import "time"

// ExpenseFilters narrows expense listings. Zero values mean no filter.
type ExpenseFilters struct {
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}
