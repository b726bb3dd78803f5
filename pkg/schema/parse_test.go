package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lccp/go-formdec/pkg/rules"
)

func TestParseRejectsNonObjectDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"array", `[{"type":"text"}]`},
		{"number", `42`},
		{"string", `"fields"`},
		{"null", `null`},
		{"truncated object", `{"fields": [`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.raw))
			if err == nil {
				t.Fatalf("expected parse error for %q", tc.raw)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseMissingFieldsIsNotAnError(t *testing.T) {
	t.Parallel()

	form, err := Parse([]byte(`{"title":"Intake","button":{"text":"Go"}}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(form.Fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(form.Fields))
	}
	if form.Button == nil || form.Button.Text != "Go" {
		t.Fatalf("expected button text %q, got %+v", "Go", form.Button)
	}
	if form.Title != "Intake" {
		t.Fatalf("expected title Intake, got %q", form.Title)
	}
}

func TestParseButtonVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		raw      string
		wantNil  bool
		wantText string
	}{
		{"absent", `{"fields":[]}`, true, ""},
		{"empty object", `{"button":{}}`, false, ""},
		{"non-object ignored", `{"button":"Go"}`, true, ""},
		{"with text", `{"button":{"text":"Send"}}`, false, "Send"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			form, err := Parse([]byte(tc.raw))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if tc.wantNil {
				if form.Button != nil {
					t.Fatalf("expected nil button, got %+v", form.Button)
				}
				return
			}
			if form.Button == nil {
				t.Fatal("expected button, got nil")
			}
			if form.Button.Text != tc.wantText {
				t.Fatalf("button text = %q, want %q", form.Button.Text, tc.wantText)
			}
		})
	}
}

func TestParseNormalizesNumericIDs(t *testing.T) {
	t.Parallel()

	form, err := Parse([]byte(`{"fields":[{"id":7,"type":"text"},{"id":"eight","type":"email"}]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(form.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(form.Fields))
	}
	if form.Fields[0].ID != "7" {
		t.Fatalf("numeric id = %q, want %q", form.Fields[0].ID, "7")
	}
	if form.Fields[1].ID != "eight" {
		t.Fatalf("string id = %q, want %q", form.Fields[1].ID, "eight")
	}
}

func TestParseCapturesExtrasInDocumentOrder(t *testing.T) {
	t.Parallel()

	raw := `{"fields":[{
		"id": 3,
		"type": "text",
		"label": "Name",
		"isRequired": true,
		"cssClass": "wide",
		"adminOnly": false,
		"tags": ["a","b"],
		"nothing": null,
		"placeholder": "Your name"
	}]}`

	form, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(form.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(form.Fields))
	}

	want := []Extra{
		{Key: "id", Value: "3"},
		{Key: "isRequired", Value: "true"},
		{Key: "cssClass", Value: "wide"},
		{Key: "adminOnly", Value: "false"},
		{Key: "tags", Value: `["a","b"]`},
		{Key: "placeholder", Value: "Your name"},
	}
	if diff := cmp.Diff(want, form.Fields[0].Extras); diff != "" {
		t.Fatalf("extras mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStructuralKeysAreNotExtras(t *testing.T) {
	t.Parallel()

	raw := `{"fields":[{
		"id": 1,
		"type": "select",
		"label": "Color",
		"description": "Pick one",
		"choices": [{"value":"r","text":"Red"}],
		"conditionalLogic": {"actionType":"show","logicType":"all","rules":[]}
	}]}`

	form, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	field := form.Fields[0]
	for _, extra := range field.Extras {
		switch extra.Key {
		case "type", "label", "description", "choices", "inputs", "content", "conditionalLogic":
			t.Fatalf("structural key %q leaked into extras", extra.Key)
		}
	}
	if len(field.Extras) != 1 || field.Extras[0].Key != "id" {
		t.Fatalf("expected only the id extra, got %+v", field.Extras)
	}
}

func TestParseChoices(t *testing.T) {
	t.Parallel()

	raw := `{"fields":[{"id":2,"type":"radio","choices":[
		{"value":"r","text":"Red"},
		{"value":2,"text":"Two","isSelected":true},
		{"text":"No value"},
		{"value":"s","text":"Str","isSelected":"1"}
	]}]}`

	form, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	choices := form.Fields[0].Choices
	if len(choices) != 4 {
		t.Fatalf("expected 4 choices, got %d", len(choices))
	}
	if choices[1].Value != "2" || !choices[1].IsSelected {
		t.Fatalf("numeric choice decoded wrong: %+v", choices[1])
	}
	if choices[2].HasValue() {
		t.Fatalf("choice without value should report HasValue false: %+v", choices[2])
	}
	if !choices[3].IsSelected {
		t.Fatalf("string truthy isSelected not honoured: %+v", choices[3])
	}
}

func TestParseConditionalLogic(t *testing.T) {
	t.Parallel()

	raw := `{"fields":[{"id":9,"type":"text","conditionalLogic":{
		"actionType":"hide","logicType":"all",
		"rules":[{"fieldId":4,"operator":"is","value":"yes"}]
	}}]}`

	form, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	field := form.Fields[0]
	if !field.HasConditionalLogic() {
		t.Fatal("expected conditional logic present")
	}
	want := &rules.Logic{
		ActionType: "hide",
		LogicType:  "all",
		Rules:      []rules.Rule{{FieldID: "4", Operator: "is", Value: "yes"}},
	}
	if diff := cmp.Diff(want, field.Logic); diff != "" {
		t.Fatalf("logic mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyConditionalLogicTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	form, err := Parse([]byte(`{"fields":[{"id":1,"type":"text","conditionalLogic":{}}]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if form.Fields[0].HasConditionalLogic() {
		t.Fatal("empty conditionalLogic object should count as absent")
	}
}

func TestParseTruthyValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"bool true", `true`, true},
		{"bool false", `false`, false},
		{"one", `1`, true},
		{"zero", `0`, false},
		{"string one", `"1"`, true},
		{"string zero", `"0"`, false},
		{"empty string", `""`, false},
		{"string false is truthy", `"false"`, true},
		{"null", `null`, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			form, err := Parse([]byte(`{"fields":[{"id":1,"type":"text","isRequired":` + tc.raw + `}]}`))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if got := form.Fields[0].IsRequired; got != tc.want {
				t.Fatalf("isRequired %s = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseNameInputsAndSliderBounds(t *testing.T) {
	t.Parallel()

	raw := `{"fields":[
		{"id":5,"type":"name","inputs":[{"id":"first","label":"First"},{"label":"no id"}]},
		{"id":6,"type":"slider","min":"2","max":8,"step":0.5,"defaultValue":"3.7"}
	]}`

	form, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	name := form.Fields[0]
	if len(name.Inputs) != 2 || name.Inputs[0].ID != "first" || name.Inputs[1].ID != "" {
		t.Fatalf("name inputs decoded wrong: %+v", name.Inputs)
	}

	slider := form.Fields[1]
	if slider.Min == nil || *slider.Min != 2 {
		t.Fatalf("min = %v, want 2", slider.Min)
	}
	if slider.Max == nil || *slider.Max != 8 {
		t.Fatalf("max = %v, want 8", slider.Max)
	}
	if slider.Step == nil || *slider.Step != 0.5 {
		t.Fatalf("step = %v, want 0.5", slider.Step)
	}
	if slider.DefaultValue == nil || *slider.DefaultValue != "3.7" {
		t.Fatalf("defaultValue = %v, want 3.7", slider.DefaultValue)
	}
}

func TestParseSkipsNonObjectFieldEntries(t *testing.T) {
	t.Parallel()

	form, err := Parse([]byte(`{"fields":[null, "junk", 3, {"id":1,"type":"text"}]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(form.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(form.Fields))
	}
	if form.Fields[0].Type != TypeText {
		t.Fatalf("surviving field type = %q", form.Fields[0].Type)
	}
}
