package dto

import (
	"expense-bot/internal/parser"

	"github.com/shopspring/decimal"
)

// MaxParseTextLength bounds the text accepted by the parse endpoint, in runes
const MaxParseTextLength = 512

// ParseRequest is the body of POST /api/v1/parse
type ParseRequest struct {
	Text string `json:"text" validate:"required,max=512"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParseResponse mirrors a parsed transaction
type ParseResponse struct {
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description,omitempty"`
	Category      *CategoryResponse `json:"category,omitempty"`
	StageReached  int               `json:"stage_reached"`
	Confidence    float64           `json:"confidence"`
	NeedsCategory bool              `json:"needs_category"`
}

func NewParseResponse(tx *parser.ParsedTransaction) *ParseResponse {
	resp := &ParseResponse{
		Amount:        tx.Amount,
		Description:   tx.Description,
		StageReached:  tx.StageReached,
		Confidence:    tx.Confidence,
		NeedsCategory: tx.NeedsCategory(),
	}
	if tx.Category != nil {
		resp.Category = &CategoryResponse{ID: tx.Category.ID, Name: tx.Category.Name}
	}
	return resp
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	CatchAllID string             `json:"catch_all_id"`
}

func NewCategoriesResponse(taxonomy *parser.Taxonomy) *CategoriesResponse {
	options := taxonomy.Options()
	resp := &CategoriesResponse{
		Categories: make([]CategoryResponse, 0, len(options)),
		CatchAllID: taxonomy.CatchAll().ID,
	}
	for _, option := range options {
		resp.Categories = append(resp.Categories, CategoryResponse{ID: option.ID, Name: option.Name})
	}
	return resp
}
