// Package builder re-exports the intake form builder.
package builder

import internalbuilder "github.com/caseflow/go-intake/internal/builder"

type Builder = internalbuilder.Builder
type Option = internalbuilder.Option
type TaxonomyError = internalbuilder.TaxonomyError

var (
	// New constructs a builder over the embedded taxonomy.
	New = internalbuilder.New
	// WithTaxonomy injects a custom taxonomy.
	WithTaxonomy = internalbuilder.WithTaxonomy
	// WithClock injects the timestamp source.
	WithClock = internalbuilder.WithClock
	// WithIDGenerator injects the form identifier source.
	WithIDGenerator = internalbuilder.WithIDGenerator
)
