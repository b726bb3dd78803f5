package compile

import (
	"html"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/lccp/go-formdec/pkg/schema"
)

func attrEscape(value string) string { return html.EscapeString(value) }

func htmlEscape(value string) string { return html.EscapeString(value) }

// openWrapper emits the opening wrapper div for a renderable field plus its
// leading label. Wrapper attributes, in order: the class list (base class,
// type modifier, optional visibility modifier, conditional-logic marker), the
// serialized conditional-logic payload, then one data attribute per extra key
// in document order. The caller closes the wrapper after control and
// description.
func (p *pass) openWrapper(field schema.Field) {
	p.out.WriteString(`<div class="form-field field-`)
	p.out.WriteString(attrEscape(field.Type))
	if field.Visibility != "" {
		p.out.WriteString(` visibility-`)
		p.out.WriteString(attrEscape(field.Visibility))
	}

	logicPayload := ""
	if field.HasConditionalLogic() {
		p.out.WriteString(` has-conditional-logic`)
		if encoded, err := json.Marshal(field.Logic); err == nil {
			logicPayload = string(encoded)
		}
		p.conditional = append(p.conditional, field.ID)
	}
	p.out.WriteString(`"`)

	if logicPayload != "" {
		p.out.WriteString(` data-conditional-logic="`)
		p.out.WriteString(attrEscape(logicPayload))
		p.out.WriteString(`"`)
	}

	for _, extra := range field.Extras {
		p.out.WriteString(` data-`)
		p.out.WriteString(attrEscape(extra.Key))
		p.out.WriteString(`="`)
		p.out.WriteString(attrEscape(extra.Value))
		p.out.WriteString(`"`)
	}

	p.out.WriteString(`>`)

	if field.Label != "" {
		p.out.WriteString(`<label for="field_`)
		p.out.WriteString(attrEscape(field.ID))
		p.out.WriteString(`">`)
		p.out.WriteString(htmlEscape(field.Label))
		if field.IsRequired {
			p.out.WriteString(` <span class="required">*</span>`)
		}
		p.out.WriteString(`</label>`)
	}
}

// attr is one rendered attribute; rendering order is the slice order so the
// output stays byte-reproducible.
type attr struct {
	key   string
	value string
}

// writeElement assembles an element from ordered attributes, mirroring the
// single assembly discipline every control renderer shares. Self-closing
// elements ignore content.
func writeElement(out *strings.Builder, tag string, attrs []attr, content string, selfClosing bool) {
	out.WriteString(`<`)
	out.WriteString(tag)
	for _, a := range attrs {
		out.WriteString(` `)
		out.WriteString(a.key)
		out.WriteString(`="`)
		out.WriteString(attrEscape(a.value))
		out.WriteString(`"`)
	}
	if selfClosing {
		out.WriteString(` />`)
		return
	}
	out.WriteString(`>`)
	out.WriteString(content)
	out.WriteString(`</`)
	out.WriteString(tag)
	out.WriteString(`>`)
}

// fieldName derives the input name/id for a singular control.
func fieldName(id string) string { return "field_" + id }

// sanitizeChoiceValue collapses a choice value into an id-safe token:
// lowercase, spaces to hyphens, anything outside [a-z0-9_-] dropped. Applied
// identically wherever a choice value contributes to an element id.
func sanitizeChoiceValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
