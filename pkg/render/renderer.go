// Package render defines the renderer contract and registry used to turn a
// built intake form into an output artifact (HTML, JSON, ...).
package render

import (
	"context"

	"github.com/caseflow/go-intake/pkg/model"
)

// Renderer converts a form into a serialized artifact.
type Renderer interface {
	// Name is the registry key ("html", "json", ...).
	Name() string
	// ContentType reports the MIME type of the rendered payload.
	ContentType() string
	// Render produces the artifact for the supplied form.
	Render(ctx context.Context, form *model.Form) ([]byte, error)
}
