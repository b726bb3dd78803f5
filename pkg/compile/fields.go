package compile

import (
	"math"
	"strconv"
	"strings"

	"github.com/lccp/go-formdec/pkg/schema"
)

// renderInput covers text, email, number, phone and hidden fields, and is
// the fallback for unrecognised types. The field's type string is carried
// into the type attribute verbatim, unknown values included; normalising
// those to "text" would change behaviour downstream consumers rely on.
func renderInput(out *strings.Builder, field schema.Field) {
	attrs := []attr{
		{"type", field.Type},
		{"id", fieldName(field.ID)},
		{"name", fieldName(field.ID)},
		{"class", "lccp-input"},
	}
	if field.IsRequired {
		attrs = append(attrs, attr{"required", "required"})
	}
	if field.Placeholder != "" {
		attrs = append(attrs, attr{"placeholder", field.Placeholder})
	}
	if field.Default() != "" {
		attrs = append(attrs, attr{"value", field.Default()})
	}
	if field.MaxLength != "" {
		attrs = append(attrs, attr{"maxlength", field.MaxLength})
	}
	if field.Pattern != "" {
		attrs = append(attrs, attr{"pattern", field.Pattern})
	}
	writeElement(out, "input", attrs, "", true)
}

func renderTextarea(out *strings.Builder, field schema.Field) {
	attrs := []attr{
		{"id", fieldName(field.ID)},
		{"name", fieldName(field.ID)},
		{"class", "lccp-textarea"},
	}
	if field.IsRequired {
		attrs = append(attrs, attr{"required", "required"})
	}
	if field.Placeholder != "" {
		attrs = append(attrs, attr{"placeholder", field.Placeholder})
	}
	writeElement(out, "textarea", attrs, htmlEscape(field.Default()), false)
}

func renderSelect(out *strings.Builder, field schema.Field) {
	out.WriteString(`<select id="`)
	out.WriteString(attrEscape(fieldName(field.ID)))
	out.WriteString(`" name="`)
	out.WriteString(attrEscape(fieldName(field.ID)))
	out.WriteString(`" class="lccp-select"`)
	if field.IsRequired {
		out.WriteString(` required="required"`)
	}
	out.WriteString(`>`)

	if field.Placeholder != "" {
		out.WriteString(`<option value="">`)
		out.WriteString(htmlEscape(field.Placeholder))
		out.WriteString(`</option>`)
	}

	for _, choice := range field.Choices {
		if !choice.HasValue() {
			continue
		}
		attrs := []attr{{"value", choice.Value}}
		if choice.IsSelected {
			attrs = append(attrs, attr{"selected", "selected"})
		}
		writeElement(out, "option", attrs, htmlEscape(choice.Text), false)
	}

	out.WriteString(`</select>`)
}

// renderChoices covers radio and checkbox groups. Checkbox inputs share an
// array-style name so every ticked option submits.
func renderChoices(out *strings.Builder, field schema.Field) {
	name := fieldName(field.ID)
	if field.Type == schema.TypeCheckbox {
		name += "[]"
	}
	for _, choice := range field.Choices {
		if !choice.HasValue() {
			continue
		}
		id := "choice_" + field.ID + "_" + sanitizeChoiceValue(choice.Value)
		attrs := []attr{
			{"type", field.Type},
			{"id", id},
			{"name", name},
			{"value", choice.Value},
			{"class", "lccp-" + field.Type},
		}
		if field.IsRequired {
			attrs = append(attrs, attr{"required", "required"})
		}
		if choice.IsSelected {
			attrs = append(attrs, attr{"checked", "checked"})
		}
		out.WriteString(`<div class="choice-wrapper">`)
		writeElement(out, "input", attrs, "", true)
		out.WriteString(`<label for="`)
		out.WriteString(attrEscape(id))
		out.WriteString(`">`)
		out.WriteString(htmlEscape(choice.Text))
		out.WriteString(`</label>`)
		out.WriteString(`</div>`)
	}
}

func renderFile(out *strings.Builder, field schema.Field) {
	attrs := []attr{
		{"type", "file"},
		{"id", fieldName(field.ID)},
		{"name", fieldName(field.ID)},
		{"class", "lccp-file"},
	}
	if field.IsRequired {
		attrs = append(attrs, attr{"required", "required"})
	}
	if len(field.AllowedExtensions) > 0 {
		attrs = append(attrs, attr{"accept", "." + strings.Join(field.AllowedExtensions, ",.")})
	}
	if field.MaxFiles > 1 {
		attrs = append(attrs, attr{"multiple", "multiple"})
	}
	writeElement(out, "input", attrs, "", true)
}

func renderDate(out *strings.Builder, field schema.Field) {
	attrs := []attr{
		{"type", "date"},
		{"id", fieldName(field.ID)},
		{"name", fieldName(field.ID)},
		{"class", "lccp-date"},
	}
	if field.IsRequired {
		attrs = append(attrs, attr{"required", "required"})
	}
	if field.Default() != "" {
		attrs = append(attrs, attr{"value", field.Default()})
	}
	writeElement(out, "input", attrs, "", true)
}

// renderName emits the composite name field: one text input per declared
// sub-input, the parent's required flag propagating to all of them.
func renderName(out *strings.Builder, field schema.Field) {
	out.WriteString(`<div class="name-inputs">`)
	for _, input := range field.Inputs {
		if input.ID == "" {
			continue
		}
		id := "input_" + field.ID + "_" + input.ID
		attrs := []attr{
			{"type", "text"},
			{"id", id},
			{"name", id},
			{"class", "lccp-name-input"},
		}
		if field.IsRequired {
			attrs = append(attrs, attr{"required", "required"})
		}
		if input.Placeholder != "" {
			attrs = append(attrs, attr{"placeholder", input.Placeholder})
		}
		out.WriteString(`<div class="name-input-wrapper">`)
		if input.Label != "" {
			out.WriteString(`<label for="`)
			out.WriteString(attrEscape(id))
			out.WriteString(`">`)
			out.WriteString(htmlEscape(input.Label))
			out.WriteString(`</label>`)
		}
		writeElement(out, "input", attrs, "", true)
		out.WriteString(`</div>`)
	}
	out.WriteString(`</div>`)
}

// renderSlider emits a range input with a live numeric readout. Bounds
// default to a 1..10 scale and the initial value sits at the midpoint when
// no default is given.
func renderSlider(out *strings.Builder, field schema.Field) {
	min := 1
	if field.Min != nil {
		min = *field.Min
	}
	max := 10
	if field.Max != nil {
		max = *field.Max
	}
	step := 1.0
	if field.Step != nil {
		step = *field.Step
	}
	value := int(math.Floor(float64(min+max) / 2))
	if field.DefaultValue != nil {
		value = sliderInt(*field.DefaultValue)
	}

	attrs := []attr{
		{"type", "range"},
		{"id", fieldName(field.ID)},
		{"name", fieldName(field.ID)},
		{"class", "lccp-slider"},
		{"min", strconv.Itoa(min)},
		{"max", strconv.Itoa(max)},
		{"step", strconv.FormatFloat(step, 'f', -1, 64)},
		{"value", strconv.Itoa(value)},
	}
	if field.IsRequired {
		attrs = append(attrs, attr{"required", "required"})
	}
	writeElement(out, "input", attrs, "", true)

	out.WriteString(`<output for="`)
	out.WriteString(attrEscape(fieldName(field.ID)))
	out.WriteString(`" class="slider-value">`)
	out.WriteString(htmlEscape(strconv.Itoa(value)))
	out.WriteString(`</output>`)

	out.WriteString(sliderScript(fieldName(field.ID)))
}

// sliderInt truncates a scalar default toward zero, coercing unparsable
// values to zero.
func sliderInt(raw string) int {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return int(n)
}
