package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

var (
	ErrNoCategories       = errors.New("taxonomy has no categories")
	ErrEmptyCategoryID    = errors.New("category id is required")
	ErrDuplicateCategory  = errors.New("duplicate category id")
	ErrEmptyCategoryName  = errors.New("category name is required")
	ErrCatchAllMissing    = errors.New("taxonomy must declare exactly one catch-all category")
	ErrInvalidSlangAmount = errors.New("slang amount is not a valid number")
	ErrDuplicateSlangTerm = errors.New("slang term maps to more than one amount")
)

// Category is one entry of the taxonomy. Keywords are lower-cased.
type Category struct {
	ID       string
	Name     string
	Keywords []string
	CatchAll bool
}

// CategoryOption is an ordered identifier/label pair used to render selection UIs.
type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Taxonomy is the fixed, ordered set of categories plus the informal amount
// dictionary used by the normalizer. It is read-only after construction and
// safe for concurrent use.
type Taxonomy struct {
	categories []Category
	byID       map[string]int
	catchAll   int
	slang      map[string]string
}

type taxonomyDocument struct {
	Categories []categoryDocument  `yaml:"categories"`
	Slang      map[string][]string `yaml:"slang"`
}

type categoryDocument struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	CatchAll bool     `yaml:"catch_all"`
	Keywords []string `yaml:"keywords"`
}

// DefaultTaxonomy returns the embedded taxonomy. It panics if the embedded
// document is invalid, which can only happen at build time.
func DefaultTaxonomy() *Taxonomy {
	t, err := LoadTaxonomy(defaultTaxonomyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
}

// LoadTaxonomyFile reads and validates a taxonomy document from disk.
func LoadTaxonomyFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return LoadTaxonomy(data)
}

// LoadTaxonomy parses and validates a YAML taxonomy document.
func LoadTaxonomy(data []byte) (*Taxonomy, error) {
	var doc taxonomyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	if len(doc.Categories) == 0 {
		return nil, ErrNoCategories
	}

	t := &Taxonomy{
		categories: make([]Category, 0, len(doc.Categories)),
		byID:       make(map[string]int, len(doc.Categories)),
		catchAll:   -1,
		slang:      make(map[string]string),
	}

	for _, cd := range doc.Categories {
		id := strings.TrimSpace(cd.ID)
		if id == "" {
			return nil, ErrEmptyCategoryID
		}
		if _, exists := t.byID[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, id)
		}
		name := strings.TrimSpace(cd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategoryName, id)
		}

		keywords := make([]string, 0, len(cd.Keywords))
		for _, kw := range cd.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}

		if cd.CatchAll {
			if t.catchAll >= 0 {
				return nil, ErrCatchAllMissing
			}
			t.catchAll = len(t.categories)
		}

		t.byID[id] = len(t.categories)
		t.categories = append(t.categories, Category{
			ID:       id,
			Name:     name,
			Keywords: keywords,
			CatchAll: cd.CatchAll,
		})
	}

	if t.catchAll < 0 {
		return nil, ErrCatchAllMissing
	}

	for amount, terms := range doc.Slang {
		canonical, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlangAmount, amount)
		}
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			if existing, ok := t.slang[term]; ok && existing != canonical.String() {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSlangTerm, term)
			}
			t.slang[term] = canonical.String()
		}
	}

	return t, nil
}

// clone returns a detached copy; the taxonomy never hands out its own storage.
func (c Category) clone() *Category {
	c.Keywords = slices.Clone(c.Keywords)
	return &c
}

// Categories returns copies of the categories in declaration order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = *c.clone()
	}
	return out
}

// ByID looks up a category by its identifier. The result is a copy.
func (t *Taxonomy) ByID(id string) (*Category, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return t.categories[idx].clone(), true
}

// CatchAll returns a copy of the fallback category.
func (t *Taxonomy) CatchAll() *Category {
	return t.categories[t.catchAll].clone()
}

// Options returns identifier/label pairs in classifier tie-break order.
func (t *Taxonomy) Options() []CategoryOption {
	options := make([]CategoryOption, 0, len(t.categories))
	for _, c := range t.categories {
		options = append(options, CategoryOption{ID: c.ID, Name: c.Name})
	}
	return options
}

// Slang returns a copy of the informal term to canonical amount table.
func (t *Taxonomy) Slang() map[string]string {
	out := make(map[string]string, len(t.slang))
	for k, v := range t.slang {
		out[k] = v
	}
	return out
}
