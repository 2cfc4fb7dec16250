// Package html renders an intake form to standalone HTML markup using an
// embedded pongo2 template set.
package html

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/caseflow/go-intake/pkg/model"
)

//go:embed templates
var templatesFS embed.FS

const formTemplate = "templates/form.html"

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplatesFS replaces the embedded template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Renderer implements render.Renderer producing HTML.
type Renderer struct {
	set       *pongo2.TemplateSet
	sanitizer *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templates: templatesFS}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("intake-html", pongo2.NewFSLoader(cfg.templates))
	if _, err := set.FromFile(formTemplate); err != nil {
		return nil, fmt.Errorf("html renderer: load template: %w", err)
	}

	return &Renderer{
		set:       set,
		sanitizer: bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render serialises the form through its transport record so the template
// sees the same ordered shape as wire consumers, then executes the embedded
// template. Help text and placeholders are stripped of markup before they
// reach the template.
func (r *Renderer) Render(ctx context.Context, form *model.Form) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fmt.Errorf("html renderer: form is required")
	}

	data, err := recordContext(form.Record(), r.sanitizer)
	if err != nil {
		return nil, err
	}

	tmpl, err := r.set.FromFile(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: load template: %w", err)
	}
	out, err := tmpl.ExecuteBytes(pongo2.Context{"form": data})
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute template: %w", err)
	}
	return out, nil
}

// recordContext converts the record into the plain map shape pongo2 resolves,
// reusing the JSON field names so template keys match the wire contract.
func recordContext(record model.FormRecord, sanitizer *bluemonday.Policy) (map[string]any, error) {
	for i := range record.Sections {
		fields := record.Sections[i].Fields
		for j := range fields {
			fields[j].HelpText = sanitizer.Sanitize(fields[j].HelpText)
			fields[j].Placeholder = sanitizer.Sanitize(fields[j].Placeholder)
		}
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("html renderer: marshal record: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("html renderer: decode record: %w", err)
	}
	return data, nil
}
