package rules

import "testing"

func TestEvaluateRuleOperators(t *testing.T) {
	t.Parallel()

	values := Values{
		"color":  "dark red",
		"count":  "12",
		"blank":  "",
		"weird":  "abc",
		"needle": "yes",
	}

	cases := []struct {
		name string
		rule Rule
		want bool
	}{
		{"is match", Rule{FieldID: "needle", Operator: OpIs, Value: "yes"}, true},
		{"is mismatch", Rule{FieldID: "needle", Operator: OpIs, Value: "no"}, false},
		{"isnot", Rule{FieldID: "needle", Operator: OpIsNot, Value: "no"}, true},
		{"contains", Rule{FieldID: "color", Operator: OpContains, Value: "ark"}, true},
		{"notcontains", Rule{FieldID: "color", Operator: OpNotContains, Value: "blue"}, true},
		{"greater_than", Rule{FieldID: "count", Operator: OpGreaterThan, Value: "10"}, true},
		{"greater_than false", Rule{FieldID: "count", Operator: OpGreaterThan, Value: "12"}, false},
		{"less_than", Rule{FieldID: "count", Operator: OpLessThan, Value: "20"}, true},
		{"non-numeric coerces to zero", Rule{FieldID: "weird", Operator: OpGreaterThan, Value: "-1"}, true},
		{"starts_with", Rule{FieldID: "color", Operator: OpStartsWith, Value: "dark"}, true},
		{"ends_with", Rule{FieldID: "color", Operator: OpEndsWith, Value: "red"}, true},
		{"is_empty", Rule{FieldID: "blank", Operator: OpIsEmpty}, true},
		{"is_not_empty", Rule{FieldID: "color", Operator: OpIsNotEmpty}, true},
		{"unknown operator", Rule{FieldID: "color", Operator: "matches"}, false},
		{"missing field always false", Rule{FieldID: "ghost", Operator: OpIsEmpty}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := EvaluateRule(tc.rule, values); got != tc.want {
				t.Fatalf("EvaluateRule(%+v) = %v, want %v", tc.rule, got, tc.want)
			}
		})
	}
}

func TestEvaluateCombinators(t *testing.T) {
	t.Parallel()

	values := Values{"a": "1", "b": "2"}
	matchA := Rule{FieldID: "a", Operator: OpIs, Value: "1"}
	missB := Rule{FieldID: "b", Operator: OpIs, Value: "9"}

	cases := []struct {
		name  string
		logic Logic
		want  bool
	}{
		{"show all matching", Logic{ActionType: ActionShow, LogicType: LogicAll, Rules: []Rule{matchA}}, true},
		{"show all one failing", Logic{ActionType: ActionShow, LogicType: LogicAll, Rules: []Rule{matchA, missB}}, false},
		{"show any", Logic{ActionType: ActionShow, LogicType: LogicAny, Rules: []Rule{matchA, missB}}, true},
		{"unrecognised logic type treated as any", Logic{ActionType: ActionShow, LogicType: "some", Rules: []Rule{missB, matchA}}, true},
		{"hide inverts", Logic{ActionType: ActionHide, LogicType: LogicAll, Rules: []Rule{matchA}}, false},
		{"unrecognised action treated as hide", Logic{ActionType: "toggle", LogicType: LogicAll, Rules: []Rule{missB}}, true},
		{"empty rule set always visible", Logic{ActionType: ActionHide, LogicType: LogicAll}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Evaluate(tc.logic, values); got != tc.want {
				t.Fatalf("Evaluate(%+v) = %v, want %v", tc.logic, got, tc.want)
			}
		})
	}
}

func TestEvaluateRequiredSuspensionContract(t *testing.T) {
	t.Parallel()

	// A field hidden while its trigger matches must become visible again the
	// moment the trigger changes; the embedded evaluator keys its
	// required-suspension handling off this exact transition.
	logic := Logic{
		ActionType: ActionHide,
		LogicType:  LogicAll,
		Rules:      []Rule{{FieldID: "trigger", Operator: OpIs, Value: "yes"}},
	}

	if visible := Evaluate(logic, Values{"trigger": "yes"}); visible {
		t.Fatal("expected field hidden while trigger matches")
	}
	if visible := Evaluate(logic, Values{"trigger": "no"}); !visible {
		t.Fatal("expected field visible once trigger stops matching")
	}
}
