package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/lccp/go-formdec/pkg/rules"
)

// ParseError is the single failure mode of the parser: the payload is not
// valid JSON or does not decode to an object. Callers are expected to treat
// it as "nothing to render" rather than propagating it to presentation.
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schema: malformed form definition: %v", e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// IsParseError reports whether err wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Structural keys consumed by the renderers themselves. Every other field key
// is carried through as a wrapper data attribute, so the decoder never
// silently drops unmodeled keys.
var structuralKeys = map[string]struct{}{
	"type":             {},
	"label":            {},
	"description":      {},
	"choices":          {},
	"inputs":           {},
	"content":          {},
	"conditionalLogic": {},
}

// Parse decodes a raw JSON form definition into a Form. Malformed input or a
// non-object top level yields a ParseError; a missing fields array yields an
// empty Form without error. Individual fields that cannot be decoded are
// skipped rather than failing the document.
func Parse(data []byte) (Form, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Form{}, &ParseError{cause: errors.New("document is not a JSON object")}
	}

	var doc struct {
		Title  json.RawMessage `json:"title"`
		Fields json.RawMessage `json:"fields"`
		Button json.RawMessage `json:"button"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Form{}, &ParseError{cause: err}
	}

	form := Form{Title: scalarString(doc.Title)}

	if isArray(doc.Fields) {
		var entries []json.RawMessage
		if err := json.Unmarshal(doc.Fields, &entries); err == nil {
			for _, entry := range entries {
				field, ok := parseField(entry)
				if !ok {
					continue
				}
				form.Fields = append(form.Fields, field)
			}
		}
	}

	if isObject(doc.Button) {
		var raw struct {
			Text json.RawMessage `json:"text"`
		}
		if err := json.Unmarshal(doc.Button, &raw); err == nil {
			form.Button = &Button{Text: scalarString(raw.Text)}
		}
	}

	return form, nil
}

// parseField walks a field object key by key, populating the typed model and
// capturing every non-structural key into Extras in document order. Entries
// that are not objects are dropped.
func parseField(raw json.RawMessage) (Field, bool) {
	if !isObject(raw) {
		return Field{}, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return Field{}, false
	}

	var field Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Field{}, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return Field{}, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return Field{}, false
		}

		switch key {
		case "id":
			field.ID = scalarString(value)
		case "type":
			field.Type = scalarString(value)
		case "label":
			field.Label = scalarString(value)
		case "description":
			field.Description = scalarString(value)
		case "isRequired":
			field.IsRequired = truthy(value)
		case "visibility":
			field.Visibility = scalarString(value)
		case "placeholder":
			field.Placeholder = scalarString(value)
		case "defaultValue":
			s := scalarString(value)
			field.DefaultValue = &s
		case "maxLength":
			field.MaxLength = scalarString(value)
		case "pattern":
			field.Pattern = scalarString(value)
		case "choices":
			field.Choices = parseChoices(value)
		case "inputs":
			field.Inputs = parseNameInputs(value)
		case "allowedExtensions":
			field.AllowedExtensions = parseStringList(value)
		case "maxFiles":
			field.MaxFiles = intValue(value)
		case "min":
			n := intValue(value)
			field.Min = &n
		case "max":
			n := intValue(value)
			field.Max = &n
		case "step":
			f := floatValue(value)
			field.Step = &f
		case "content":
			field.Content = scalarString(value)
		case "conditionalLogic":
			field.Logic = parseLogic(value)
		}

		if _, structural := structuralKeys[key]; !structural {
			if text, ok := extraValue(value); ok {
				field.Extras = append(field.Extras, Extra{Key: key, Value: text})
			}
		}
	}

	return field, true
}

func parseChoices(raw json.RawMessage) []Choice {
	if !isArray(raw) {
		return nil
	}
	var entries []struct {
		Value      json.RawMessage `json:"value"`
		Text       json.RawMessage `json:"text"`
		IsSelected json.RawMessage `json:"isSelected"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	choices := make([]Choice, 0, len(entries))
	for _, entry := range entries {
		choices = append(choices, Choice{
			Value:      scalarString(entry.Value),
			Text:       scalarString(entry.Text),
			IsSelected: truthy(entry.IsSelected),
			hasValue:   len(entry.Value) > 0 && !bytes.Equal(entry.Value, []byte("null")),
		})
	}
	return choices
}

func parseNameInputs(raw json.RawMessage) []NameInput {
	if !isArray(raw) {
		return nil
	}
	var entries []struct {
		ID          json.RawMessage `json:"id"`
		Label       json.RawMessage `json:"label"`
		Placeholder json.RawMessage `json:"placeholder"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	inputs := make([]NameInput, 0, len(entries))
	for _, entry := range entries {
		inputs = append(inputs, NameInput{
			ID:          scalarString(entry.ID),
			Label:       scalarString(entry.Label),
			Placeholder: scalarString(entry.Placeholder),
		})
	}
	return inputs
}

func parseStringList(raw json.RawMessage) []string {
	if !isArray(raw) {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, scalarString(entry))
	}
	return out
}

func parseLogic(raw json.RawMessage) *rules.Logic {
	if !isObject(raw) {
		return nil
	}
	var decoded struct {
		ActionType json.RawMessage `json:"actionType"`
		LogicType  json.RawMessage `json:"logicType"`
		Rules      []struct {
			FieldID  json.RawMessage `json:"fieldId"`
			Operator json.RawMessage `json:"operator"`
			Value    json.RawMessage `json:"value"`
		} `json:"rules"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	logic := &rules.Logic{
		ActionType: scalarString(decoded.ActionType),
		LogicType:  scalarString(decoded.LogicType),
	}
	for _, rule := range decoded.Rules {
		logic.Rules = append(logic.Rules, rules.Rule{
			FieldID:  scalarString(rule.FieldID),
			Operator: scalarString(rule.Operator),
			Value:    scalarString(rule.Value),
		})
	}
	return logic
}

// scalarString renders a raw JSON scalar as text: strings verbatim, numbers
// and booleans as their literal, anything else empty.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(bytes.TrimSpace(raw))
	}
}

// extraValue serializes a raw value for a wrapper data attribute. Composites
// become compact JSON; null has no attribute representation.
func extraValue(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}
	switch raw[0] {
	case '"':
		return scalarString(raw), true
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", false
		}
		return buf.String(), true
	default:
		return string(bytes.TrimSpace(raw)), true
	}
}

// truthy follows the source exports' loose boolean convention: false, zero,
// null, the empty string and "0" are false, everything else (including the
// string "false") is true.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case 't':
		return true
	case 'f', 'n':
		return false
	case '"':
		text := scalarString(raw)
		return text != "" && text != "0"
	default:
		return floatValue(raw) != 0
	}
}

// intValue parses a scalar the way the slider defaults expect: fractional
// values truncate, unparsable values coerce to zero.
func intValue(raw json.RawMessage) int {
	return int(floatValue(raw))
}

func floatValue(raw json.RawMessage) float64 {
	text := strings.TrimSpace(scalarString(raw))
	if text == "" {
		return 0
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return n
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
