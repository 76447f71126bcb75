package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// AmountRecognizer is a stage that tries to isolate an amount from text.
// A false result is the ordinary "no match" outcome, not an error.
type AmountRecognizer interface {
	Recognize(text string) (ParsedTransaction, bool)
}

// Enricher is a stage that refines an already recognized transaction. It
// receives and returns values, so the caller's copy is never modified.
type Enricher interface {
	Enrich(tx ParsedTransaction) ParsedTransaction
}

// NumericRecognizer accepts messages that are nothing but a number, e.g.
// "500" or "99,90".
type NumericRecognizer struct{}

func (NumericRecognizer) Recognize(text string) (ParsedTransaction, bool) {
	candidate := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if !isBareNumber(candidate) {
		return ParsedTransaction{}, false
	}

	amount, err := decimal.NewFromString(candidate)
	if err != nil {
		return ParsedTransaction{}, false
	}

	return ParsedTransaction{
		Amount:       amount,
		StageReached: StageNumeric,
		Confidence:   ConfidenceNumeric,
	}, true
}

func isBareNumber(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

const amountToken = `(\d+(?:[.,]\d{1,2})?)`

var amountTokenPattern = regexp.MustCompile(`^` + amountToken + `$`)

// AmountPattern is one row of the extractor table: a pattern with exactly
// two capture groups and the index of the group holding the amount. The
// other group is the description.
type AmountPattern struct {
	Name        string
	Pattern     *regexp.Regexp
	AmountGroup int
}

func (p AmountPattern) descriptionGroup() int {
	if p.AmountGroup == 1 {
		return 2
	}
	return 1
}

// DefaultAmountPatterns returns the extractor table in priority order.
func DefaultAmountPatterns() []AmountPattern {
	return []AmountPattern{
		{
			Name:        "amount_description",
			Pattern:     regexp.MustCompile(`(?s)^` + amountToken + `\s+(.+)$`),
			AmountGroup: 1,
		},
		{
			Name:        "description_amount",
			Pattern:     regexp.MustCompile(`(?s)^(.+?)\s+` + amountToken + `$`),
			AmountGroup: 2,
		},
		{
			Name:        "amount_na_description",
			Pattern:     regexp.MustCompile(`(?s)^` + amountToken + `\s+на\s+(.+)$`),
			AmountGroup: 1,
		},
		{
			Name:        "description_za_amount",
			Pattern:     regexp.MustCompile(`(?s)^(.+?)\s+за\s+` + amountToken + `$`),
			AmountGroup: 2,
		},
	}
}

// AmountExtractor splits mixed text into an amount and a description using
// an ordered pattern table. The first matching pattern wins.
type AmountExtractor struct {
	patterns []AmountPattern
}

func NewAmountExtractor(patterns []AmountPattern) *AmountExtractor {
	return &AmountExtractor{patterns: patterns}
}

func (e *AmountExtractor) Recognize(text string) (ParsedTransaction, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	for _, p := range e.patterns {
		m := p.Pattern.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}

		token := strings.TrimSpace(m[p.AmountGroup])
		if !amountTokenPattern.MatchString(token) {
			return ParsedTransaction{}, false
		}
		amount, err := decimal.NewFromString(strings.Replace(token, ",", ".", 1))
		if err != nil {
			return ParsedTransaction{}, false
		}

		return ParsedTransaction{
			Amount:       amount,
			Description:  strings.TrimSpace(m[p.descriptionGroup()]),
			StageReached: StageExtractor,
			Confidence:   ConfidenceExtractor,
		}, true
	}

	return ParsedTransaction{}, false
}

// KeywordMatch describes the best keyword hit for a description. Category is
// a copy owned by the caller.
type KeywordMatch struct {
	Category *Category
	Keyword  string
	Score    float64
}

// CategoryClassifier assigns a category by keyword substring scoring. A hit
// scores len(keyword)/len(description), measured in runes; the highest score
// wins and ties keep the category declared first.
type CategoryClassifier struct {
	taxonomy *Taxonomy
}

func NewCategoryClassifier(taxonomy *Taxonomy) *CategoryClassifier {
	return &CategoryClassifier{taxonomy: taxonomy}
}

// BestMatch returns the highest scoring keyword hit, or false if no keyword
// occurs in the description.
func (c *CategoryClassifier) BestMatch(description string) (KeywordMatch, bool) {
	lowered := strings.ToLower(description)
	length := utf8.RuneCountInString(lowered)
	if length == 0 {
		return KeywordMatch{}, false
	}

	var best KeywordMatch
	bestIdx := -1

	for i, category := range c.taxonomy.categories {
		for _, keyword := range category.Keywords {
			if !strings.Contains(lowered, keyword) {
				continue
			}
			score := float64(utf8.RuneCountInString(keyword)) / float64(length)
			if bestIdx < 0 || score > best.Score {
				best = KeywordMatch{Keyword: keyword, Score: score}
				bestIdx = i
			}
		}
	}

	if bestIdx < 0 {
		return KeywordMatch{}, false
	}
	best.Category = c.taxonomy.categories[bestIdx].clone()
	return best, true
}

func (c *CategoryClassifier) Enrich(tx ParsedTransaction) ParsedTransaction {
	if tx.Description == "" {
		return tx
	}

	if match, ok := c.BestMatch(tx.Description); ok {
		tx.Category = match.Category
		tx.Confidence = min(keywordConfidenceBase+match.Score, keywordConfidenceCap)
	} else {
		tx.Category = c.taxonomy.CatchAll()
		tx.Confidence = ConfidenceCatchAll
	}
	tx.StageReached = StageClassifier

	return tx
}

// PassThroughStage is the fourth stage. It only marks the result as having
// reached the end of the pipeline and is the place to plug in a smarter
// classifier later.
type PassThroughStage struct{}

func (PassThroughStage) Enrich(tx ParsedTransaction) ParsedTransaction {
	tx.StageReached = StageExtension
	return tx
}
