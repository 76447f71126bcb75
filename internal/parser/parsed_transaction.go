// Package parser turns short free-form expense messages such as "500 кофе"
// into structured transactions.
//
// Parsing runs as a fixed sequence of stages: a bare-number recognizer, a
// pattern based amount/description extractor, a keyword category classifier
// and a pass-through extension stage. Every stage is a pure function of its
// input and the read-only taxonomy, so a Pipeline may be shared between
// goroutines without synchronization.
package parser

import "github.com/shopspring/decimal"

// Pipeline stage numbers recorded in ParsedTransaction.StageReached.
const (
	StageNumeric    = 1
	StageExtractor  = 2
	StageClassifier = 3
	StageExtension  = 4
)

const (
	ConfidenceNumeric   = 1.0
	ConfidenceExtractor = 0.9
	ConfidenceCatchAll  = 0.5

	keywordConfidenceBase = 0.7
	keywordConfidenceCap  = 0.95
)

// ParsedTransaction is the result of parsing one message. A non-nil result
// always carries an amount. Description is empty when the message had no
// descriptive text, and Category stays nil until the classifier runs on a
// non-empty description.
type ParsedTransaction struct {
	Amount       decimal.Decimal
	Description  string
	Category     *Category
	StageReached int
	Confidence   float64
}

// HasDescription reports whether the message carried descriptive text.
func (p *ParsedTransaction) HasDescription() bool {
	return p != nil && p.Description != ""
}

// NeedsCategory reports whether the caller must ask the user for a category.
func (p *ParsedTransaction) NeedsCategory() bool {
	return p != nil && p.Category == nil
}

// CategoryID returns the assigned category identifier or an empty string.
func (p *ParsedTransaction) CategoryID() string {
	if p == nil || p.Category == nil {
		return ""
	}
	return p.Category.ID
}
