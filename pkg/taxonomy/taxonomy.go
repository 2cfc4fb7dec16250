// Package taxonomy re-exports the legal category taxonomy.
package taxonomy

import internaltaxonomy "github.com/caseflow/go-intake/internal/taxonomy"

type Taxonomy = internaltaxonomy.Taxonomy
type Category = internaltaxonomy.Category
type Suggestion = internaltaxonomy.Suggestion

const (
	ConfidenceHigh   = internaltaxonomy.ConfidenceHigh
	ConfidenceMedium = internaltaxonomy.ConfidenceMedium
	ConfidenceLow    = internaltaxonomy.ConfidenceLow
)

var (
	// Default returns the embedded taxonomy shared by the module.
	Default = internaltaxonomy.Default
	// Load parses a custom YAML taxonomy document.
	Load = internaltaxonomy.Load
)
