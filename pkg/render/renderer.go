package render

import (
	"context"

	"github.com/lccp/go-formdec/pkg/schema"
)

// Renderer converts a decoded form into a byte representation. The compiled
// HTML renderer is the default; callers can register alternates (plain-text
// summaries, JSON echoes) under their own names.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form schema.Form) ([]byte, error)
}
