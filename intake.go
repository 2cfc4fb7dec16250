// Package intake generates structured legal intake forms from a closed
// category/subcategory taxonomy. The root package exposes the request-level
// envelope and re-exports the main entry points; see pkg/builder and
// pkg/model for the underlying types.
package intake

import (
	"fmt"

	"github.com/caseflow/go-intake/pkg/builder"
	"github.com/caseflow/go-intake/pkg/model"
	"github.com/caseflow/go-intake/pkg/taxonomy"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the boundary envelope returned to transport layers. Failures are
// carried in Message; a Result never holds a partial form.
type Result struct {
	Status  string            `json:"status"`
	Form    *model.FormRecord `json:"form,omitempty"`
	Message string            `json:"message,omitempty"`
}

// Generator wraps a builder behind the envelope contract.
type Generator struct {
	builder *builder.Builder
}

// NewGenerator constructs a Generator, forwarding any builder options.
func NewGenerator(options ...builder.Option) *Generator {
	return &Generator{builder: builder.New(options...)}
}

// GenerateForm builds and serialises the form for the pair. Every failure,
// including an internal panic, is converted into an error-shaped Result; this
// method never raises to its caller.
func (g *Generator) GenerateForm(category, subcategory string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Status: StatusError, Message: fmt.Sprint(r)}
		}
	}()

	form, err := g.builder.Build(category, subcategory)
	if err != nil {
		return Result{Status: StatusError, Message: err.Error()}
	}
	record := form.Record()
	return Result{Status: StatusSuccess, Form: &record}
}

// GenerateForm builds a form using a default generator over the embedded
// taxonomy.
func GenerateForm(category, subcategory string) Result {
	return NewGenerator().GenerateForm(category, subcategory)
}

// Convenience re-exports for callers that only import the root package.
type Form = model.Form
type FormRecord = model.FormRecord
type Taxonomy = taxonomy.Taxonomy

var (
	// NewBuilder constructs a form builder over the embedded taxonomy.
	NewBuilder = builder.New
	// DefaultTaxonomy returns the embedded taxonomy.
	DefaultTaxonomy = taxonomy.Default
)
