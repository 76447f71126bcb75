package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_ReplacesWholeWords(t *testing.T) {
	n := NewNormalizer(DefaultTaxonomy().Slang())

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"slang first", "пятихатка кофе", "500 кофе"},
		{"slang last", "такси косарь", "такси 1000"},
		{"case insensitive", "КОСАРЬ на такси", "1000 на такси"},
		{"several terms", "сотка и полтос", "100 и 50"},
		{"adjacent terms with punctuation", "сотка,сотка", "100,100"},
		{"synonyms agree", "пятисотка", "500"},
		{"no slang", "500 кофе", "500 кофе"},
		{"partial word untouched", "сотканный плед", "сотканный плед"},
		{"prefix untouched", "косарьки", "косарьки"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, n.Normalize(tc.input))
		})
	}
}

func TestNormalizer_SlangRoundTrip(t *testing.T) {
	n := NewNormalizer(DefaultTaxonomy().Slang())

	out := n.Normalize("пятихатка кофе")

	assert.Contains(t, out, "500")
	assert.NotContains(t, out, "пятихатка")
}

func TestNormalizer_DigitsAreIdentity(t *testing.T) {
	n := NewNormalizer(DefaultTaxonomy().Slang())

	for _, input := range []string{"0", "500", "99.90", "1500,50"} {
		assert.Equal(t, input, n.Normalize(input))
	}
}

func TestNormalizer_EmptyTable(t *testing.T) {
	n := NewNormalizer(nil)
	assert.Equal(t, "косарь", n.Normalize("косарь"))
}

func TestNormalizer_MixedCaseTerms(t *testing.T) {
	n := NewNormalizer(map[string]string{"Штука": "1000"})
	assert.Equal(t, "1000 за такси", n.Normalize("штука за такси"))
}
