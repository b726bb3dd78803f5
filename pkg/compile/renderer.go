package compile

import (
	"context"

	"github.com/lccp/go-formdec/pkg/schema"
)

// HTMLRenderer adapts a Compiler to the render.Renderer contract so the
// compiled form can be resolved through a renderer registry.
type HTMLRenderer struct {
	compiler *Compiler
}

// NewHTMLRenderer wraps the compiler; a nil compiler gets default options.
func NewHTMLRenderer(compiler *Compiler) *HTMLRenderer {
	if compiler == nil {
		compiler = New()
	}
	return &HTMLRenderer{compiler: compiler}
}

func (r *HTMLRenderer) Name() string {
	return "html"
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render compiles the form and returns the markup. The unknown-type
// accumulator is advisory and not part of the renderer contract; callers
// needing it use Compiler.Compile directly.
func (r *HTMLRenderer) Render(_ context.Context, form schema.Form) ([]byte, error) {
	result := r.compiler.Compile(form)
	return []byte(result.HTML), nil
}
