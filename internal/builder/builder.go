// Package builder assembles intake forms for validated category/subcategory
// pairs. Each category registers a routine that composes the shared default
// form and appends its practice-area sections; the field content is ported
// product data, not derived logic.
package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/go-intake/internal/model"
	"github.com/caseflow/go-intake/internal/taxonomy"
)

// TaxonomyError reports a category/subcategory pair that is not present in
// the taxonomy. It is a hard precondition failure: the builder constructs no
// form and the caller surfaces the message as a validation error.
type TaxonomyError struct {
	Category    string
	Subcategory string
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("Invalid category or subcategory: %s - %s", e.Category, e.Subcategory)
}

// Builder constructs intake forms. Zero-configuration construction uses the
// embedded taxonomy, wall-clock time, and random UUID identifiers; tests
// inject deterministic replacements through the options.
type Builder struct {
	taxonomy *taxonomy.Taxonomy
	now      func() time.Time
	newID    func() string
	routines map[string]routine
}

type routine func(b *Builder, category, subcategory string) *model.Form

// Option customises the builder configuration.
type Option func(*Builder)

// WithTaxonomy injects a custom taxonomy.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(b *Builder) {
		if t != nil {
			b.taxonomy = t
		}
	}
}

// WithClock injects the timestamp source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator injects the form identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// New constructs a Builder applying any provided options.
func New(options ...Option) *Builder {
	b := &Builder{
		taxonomy: taxonomy.Default(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		routines: categoryRoutines,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build validates the pair against the taxonomy and assembles the matching
// form. Categories without a registered routine fall back to the default
// routine; under the current taxonomy every category has one, so the fallback
// only covers future taxonomy entries.
func (b *Builder) Build(category, subcategory string) (*model.Form, error) {
	if !b.taxonomy.Validate(category, subcategory) {
		return nil, &TaxonomyError{Category: category, Subcategory: subcategory}
	}

	build, ok := b.routines[category]
	if !ok {
		build = (*Builder).defaultForm
	}
	return build(b, category, subcategory), nil
}

// Taxonomy exposes the taxonomy the builder validates against.
func (b *Builder) Taxonomy() *taxonomy.Taxonomy {
	return b.taxonomy
}

// Contact and narrative rules shared by every generated form.
const (
	emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	phonePattern = `^\+?1?\d{10,14}$`
)

// defaultForm builds the base intake surface every routine composes: a
// Personal Information section with contact fields and a Case Information
// section with the narrative description.
func (b *Builder) defaultForm(category, subcategory string) *model.Form {
	form := model.NewForm(
		b.newID(),
		fmt.Sprintf("%s Intake Form", category),
		category,
		subcategory,
		fmt.Sprintf("Intake form for %s - %s", category, subcategory),
		b.now(),
	)

	personal := model.NewSection("Personal Information", "Please provide your contact details")
	personal.AddField(model.MustField("full_name", "Full Name", model.FieldTypeText,
		model.Required(),
		model.WithRules(model.Rules{model.RuleMinLength: 2, model.RuleMaxLength: 100}),
	))
	personal.AddField(model.MustField("email", "Email Address", model.FieldTypeEmail,
		model.Required(),
		model.WithRules(model.Rules{model.RulePattern: emailPattern}),
	))
	personal.AddField(model.MustField("phone", "Phone Number", model.FieldTypeTel,
		model.Required(),
		model.WithRules(model.Rules{model.RulePattern: phonePattern}),
	))

	caseInfo := model.NewSection("Case Information", "Provide details about your legal matter")
	caseInfo.AddField(model.MustField("description", "Case Description", model.FieldTypeTextarea,
		model.Required(),
		model.WithRules(model.Rules{model.RuleMinLength: 50, model.RuleMaxLength: 5000}),
		model.WithPlaceholder("Please describe your legal issue in detail"),
	))

	form.AddSection(personal)
	form.AddSection(caseInfo)
	return form
}
