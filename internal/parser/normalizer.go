package parser

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of word characters. Go's \b only knows
// ASCII letters, so whole-word matching on Cyrillic text is done by
// replacing complete runs instead.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalizer rewrites informal amount words ("пятихатка", "косарь") into
// canonical digit strings.
type Normalizer struct {
	terms map[string]string
}

// NewNormalizer builds a normalizer from a term to canonical amount table.
// Terms are matched case-insensitively.
func NewNormalizer(terms map[string]string) *Normalizer {
	lowered := make(map[string]string, len(terms))
	for term, canonical := range terms {
		lowered[strings.ToLower(term)] = canonical
	}
	return &Normalizer{terms: lowered}
}

// Normalize replaces every whole-word occurrence of a known term and leaves
// the rest of the text untouched.
func (n *Normalizer) Normalize(text string) string {
	if len(n.terms) == 0 || text == "" {
		return text
	}
	return wordPattern.ReplaceAllStringFunc(text, func(word string) string {
		if canonical, ok := n.terms[strings.ToLower(word)]; ok {
			return canonical
		}
		return word
	})
}
