package submission

import "github.com/lccp/go-formdec/pkg/schema"

// Labels builds the label-lookup table a document renderer needs: label text
// keyed by the derived input name of every value-producing control. Composite
// name fields contribute one entry per sub-input; sections and raw HTML
// blocks produce no values and contribute nothing.
func Labels(form schema.Form) map[string]string {
	labels := make(map[string]string)
	for _, field := range form.Fields {
		switch field.Type {
		case "", schema.TypeSection, schema.TypeHTML:
			continue
		case schema.TypeName:
			for _, input := range field.Inputs {
				if input.ID == "" {
					continue
				}
				name := "input_" + field.ID + "_" + input.ID
				label := input.Label
				if label == "" {
					label = field.Label
				}
				labels[name] = label
			}
		case schema.TypeCheckbox:
			labels["field_"+field.ID+"[]"] = field.Label
		default:
			labels["field_"+field.ID] = field.Label
		}
	}
	return labels
}

// Label resolves a single input name, falling back to the name itself when
// the form never declared it, so documents render something for orphans.
func Label(form schema.Form, name string) string {
	if label, ok := Labels(form)[name]; ok && label != "" {
		return label
	}
	return name
}
