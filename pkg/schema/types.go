package schema

import (
	"github.com/lccp/go-formdec/pkg/rules"
)

// Field type discriminators with dedicated renderers. Any other value is an
// unknown type: rendered through the single-line input fallback and recorded
// for operator review.
const (
	TypeSection    = "section"
	TypeHTML       = "html"
	TypeText       = "text"
	TypeEmail      = "email"
	TypeNumber     = "number"
	TypePhone      = "phone"
	TypeHidden     = "hidden"
	TypeTextarea   = "textarea"
	TypeSelect     = "select"
	TypeRadio      = "radio"
	TypeCheckbox   = "checkbox"
	TypeFileUpload = "fileupload"
	TypeDate       = "date"
	TypeName       = "name"
	TypeSlider     = "slider"
)

// Form is the top-level decoded form definition. Field order matches the
// source document and is the rendering order.
type Form struct {
	Title  string
	Fields []Field
	Button *Button
}

// Button overrides the submit control. A nil Button on the Form means no
// submit control is rendered at all.
type Button struct {
	Text string `json:"text"`
}

// Choice is one option of a select, radio, or checkbox field.
type Choice struct {
	Value      string `json:"value"`
	Text       string `json:"text"`
	IsSelected bool   `json:"isSelected"`
	hasValue   bool
}

// HasValue reports whether the source document carried a value key at all,
// letting renderers skip malformed options instead of emitting empty ones.
func (c Choice) HasValue() bool { return c.hasValue }

// NameInput is one sub-input of a composite name field.
type NameInput struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// Extra is one unmodeled field key carried through to the rendered wrapper as
// a data attribute. Value holds the attribute text: string scalars verbatim,
// numbers and booleans as their JSON literal, composites as compact JSON.
type Extra struct {
	Key   string
	Value string
}

// Field is a single entry of a form definition. Typed fields cover the keys
// the renderers consume; everything the source document carried beyond the
// structural keys (type, label, description, choices, inputs, content,
// conditionalLogic) is additionally captured in Extras, in document order.
type Field struct {
	ID          string
	Type        string
	Label       string
	Description string
	IsRequired  bool
	Visibility  string

	Placeholder  string
	DefaultValue *string
	MaxLength    string
	Pattern      string

	Choices []Choice
	Inputs  []NameInput

	AllowedExtensions []string
	MaxFiles          int

	Min  *int
	Max  *int
	Step *float64

	Content string

	Logic *rules.Logic

	Extras []Extra
}

// HasConditionalLogic reports whether the field declared a non-empty
// conditional-logic object. An empty object is treated as absent.
func (f Field) HasConditionalLogic() bool {
	if f.Logic == nil {
		return false
	}
	return f.Logic.ActionType != "" || f.Logic.LogicType != "" || len(f.Logic.Rules) > 0
}

// Default returns the field's default value, or empty when none was given.
func (f Field) Default() string {
	if f.DefaultValue == nil {
		return ""
	}
	return *f.DefaultValue
}
