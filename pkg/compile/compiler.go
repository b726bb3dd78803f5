package compile

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/lccp/go-formdec/pkg/schema"
)

// Default chrome applied when options leave the corresponding override empty.
const (
	DefaultFormClass   = "lccp-form"
	DefaultSubmitLabel = "Submit"
)

// Result carries everything a single compile pass produced: the rendered
// markup, the unknown-field-type accumulator keyed by type name, and the ids
// of fields that declared conditional logic, in rendering order.
type Result struct {
	HTML              string
	Unknown           map[string][]schema.Field
	ConditionalFields []string
}

// HasUnknown reports whether any field carried an unrecognised type.
func (r Result) HasUnknown() bool { return len(r.Unknown) > 0 }

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger installs a logger for the advisory unknown-field diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFormClass overrides the class on the form container element.
func WithFormClass(class string) Option {
	return func(c *Compiler) {
		if strings.TrimSpace(class) != "" {
			c.formClass = class
		}
	}
}

// WithSubmitLabel overrides the label used when a form declares a button
// object without text.
func WithSubmitLabel(label string) Option {
	return func(c *Compiler) {
		if strings.TrimSpace(label) != "" {
			c.submitLabel = label
		}
	}
}

// Compiler turns a decoded form definition into an HTML fragment. A Compiler
// holds configuration only; every Compile call owns private accumulators, so
// a single instance is safe for concurrent use.
type Compiler struct {
	logger      *slog.Logger
	formClass   string
	submitLabel string
}

// New constructs a Compiler applying any provided options.
func New(options ...Option) *Compiler {
	c := &Compiler{
		formClass:   DefaultFormClass,
		submitLabel: DefaultSubmitLabel,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// pass is the per-invocation state: output buffer plus the two accumulators.
type pass struct {
	out         strings.Builder
	unknown     map[string][]schema.Field
	conditional []string
}

// Compile renders the form. It never fails: malformed fields degrade locally
// (a field without a type contributes nothing, an unrecognised type falls
// back to the single-line input renderer) and only the markup that could be
// produced is returned.
func (c *Compiler) Compile(form schema.Form) Result {
	p := &pass{unknown: make(map[string][]schema.Field)}

	p.out.WriteString(`<form class="`)
	p.out.WriteString(attrEscape(c.formClass))
	p.out.WriteString(`">`)

	for _, field := range form.Fields {
		c.renderField(p, field)
	}

	if form.Button != nil {
		label := form.Button.Text
		if label == "" {
			label = c.submitLabel
		}
		p.out.WriteString(`<button type="submit" class="lccp-submit">`)
		p.out.WriteString(htmlEscape(label))
		p.out.WriteString(`</button>`)
	}

	if len(p.conditional) > 0 {
		p.out.WriteString(conditionalLogicScript(c.formClass))
	}

	p.out.WriteString(`</form>`)

	if len(p.unknown) > 0 && c.logger != nil {
		types := make([]string, 0, len(p.unknown))
		for name := range p.unknown {
			types = append(types, name)
		}
		slices.Sort(types)
		c.logger.Warn("unknown field types encountered", "types", types)
	}

	return Result{
		HTML:              p.out.String(),
		Unknown:           p.unknown,
		ConditionalFields: p.conditional,
	}
}

// renderField emits one field. Sections and raw HTML blocks bypass the field
// wrapper entirely; everything else goes through the wrapper plus a
// type-specific control renderer.
func (c *Compiler) renderField(p *pass, field schema.Field) {
	if field.Type == "" {
		return
	}

	switch field.Type {
	case schema.TypeSection:
		p.out.WriteString(`<h2 class="form-section">`)
		p.out.WriteString(htmlEscape(field.Label))
		p.out.WriteString(`</h2>`)
		if field.Description != "" {
			p.out.WriteString(`<p class="section-description">`)
			p.out.WriteString(htmlEscape(field.Description))
			p.out.WriteString(`</p>`)
		}
		return
	case schema.TypeHTML:
		// A bare line-break marker from certain exports would otherwise
		// surface as a stray literal tag pair.
		if field.Content == "<br></br>" {
			p.out.WriteString("<br>")
			return
		}
		if field.Content != "" {
			p.out.WriteString(sanitizeHTML(field.Content))
		}
		return
	}

	p.openWrapper(field)

	switch field.Type {
	case schema.TypeText, schema.TypeEmail, schema.TypeNumber, schema.TypePhone, schema.TypeHidden:
		renderInput(&p.out, field)
	case schema.TypeTextarea:
		renderTextarea(&p.out, field)
	case schema.TypeSelect:
		renderSelect(&p.out, field)
	case schema.TypeRadio, schema.TypeCheckbox:
		renderChoices(&p.out, field)
	case schema.TypeFileUpload:
		renderFile(&p.out, field)
	case schema.TypeDate:
		renderDate(&p.out, field)
	case schema.TypeName:
		renderName(&p.out, field)
	case schema.TypeSlider:
		renderSlider(&p.out, field)
	default:
		p.unknown[field.Type] = append(p.unknown[field.Type], field)
		renderInput(&p.out, field)
	}

	if field.Description != "" {
		p.out.WriteString(`<div class="field-description">`)
		p.out.WriteString(htmlEscape(field.Description))
		p.out.WriteString(`</div>`)
	}

	p.out.WriteString(`</div>`)
}
