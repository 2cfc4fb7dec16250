// Package jsonout renders an intake form as its canonical wire JSON.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caseflow/go-intake/pkg/model"
)

// Renderer implements render.Renderer producing the transport JSON document.
type Renderer struct {
	indent bool
}

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent enables pretty-printed output.
func WithIndent() Option {
	return func(r *Renderer) { r.indent = true }
}

// New constructs the JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, form *model.Form) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fmt.Errorf("json renderer: form is required")
	}
	if r.indent {
		return json.MarshalIndent(form.Record(), "", "  ")
	}
	return json.Marshal(form.Record())
}
