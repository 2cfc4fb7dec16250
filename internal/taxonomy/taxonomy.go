// Package taxonomy holds the closed set of legal categories and their valid
// subcategories. The data ships embedded with the module and is parsed once
// into an immutable value; lookups are exact-match and case-sensitive.
package taxonomy

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var embeddedTaxonomy []byte

// Category pairs a category name with its ordered subcategory list and the
// keywords used for text-based suggestion.
type Category struct {
	Name          string   `yaml:"name"`
	Subcategories []string `yaml:"subcategories"`
	Keywords      []string `yaml:"keywords"`
}

type document struct {
	Categories []Category `yaml:"categories"`
}

// Taxonomy is the immutable category/subcategory mapping. Construct one via
// Load or use the embedded Default.
type Taxonomy struct {
	categories []Category
	index      map[string]int
}

// Load parses a YAML taxonomy document and verifies its structural
// invariants: category names are unique, every category has at least one
// subcategory, and subcategory names do not repeat within a category.
func Load(data []byte) (*Taxonomy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy: parse document: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy: document has no categories")
	}

	t := &Taxonomy{
		categories: doc.Categories,
		index:      make(map[string]int, len(doc.Categories)),
	}
	for i, category := range doc.Categories {
		if category.Name == "" {
			return nil, fmt.Errorf("taxonomy: category %d has no name", i)
		}
		if _, exists := t.index[category.Name]; exists {
			return nil, fmt.Errorf("taxonomy: duplicate category %q", category.Name)
		}
		if len(category.Subcategories) == 0 {
			return nil, fmt.Errorf("taxonomy: category %q has no subcategories", category.Name)
		}
		seen := make(map[string]struct{}, len(category.Subcategories))
		for _, sub := range category.Subcategories {
			if _, dup := seen[sub]; dup {
				return nil, fmt.Errorf("taxonomy: category %q repeats subcategory %q", category.Name, sub)
			}
			seen[sub] = struct{}{}
		}
		t.index[category.Name] = i
	}
	return t, nil
}

var (
	defaultOnce     sync.Once
	defaultTaxonomy *Taxonomy
)

// Default returns the embedded taxonomy. The embedded document is validated
// by tests, so a parse failure here is a build defect and panics.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		t, err := Load(embeddedTaxonomy)
		if err != nil {
			panic(err)
		}
		defaultTaxonomy = t
	})
	return defaultTaxonomy
}

// Validate reports whether the pair is present in the taxonomy. Unknown
// categories return false; absence is a normal outcome, not an error.
func (t *Taxonomy) Validate(category, subcategory string) bool {
	i, ok := t.index[category]
	if !ok {
		return false
	}
	for _, sub := range t.categories[i].Subcategories {
		if sub == subcategory {
			return true
		}
	}
	return false
}

// Categories returns the category names in document order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, len(t.categories))
	for i, category := range t.categories {
		out[i] = category.Name
	}
	return out
}

// Subcategories returns the subcategory list for a category, or nil when the
// category is unknown.
func (t *Taxonomy) Subcategories(category string) []string {
	i, ok := t.index[category]
	if !ok {
		return nil
	}
	out := make([]string, len(t.categories[i].Subcategories))
	copy(out, t.categories[i].Subcategories)
	return out
}

// Keywords returns the suggestion keywords for a category, or nil when the
// category is unknown.
func (t *Taxonomy) Keywords(category string) []string {
	i, ok := t.index[category]
	if !ok {
		return nil
	}
	out := make([]string, len(t.categories[i].Keywords))
	copy(out, t.categories[i].Keywords)
	return out
}
