package rules

import (
	"strconv"
	"strings"
)

// Operator names accepted in a Rule. Anything else evaluates to false.
const (
	OpIs          = "is"
	OpIsNot       = "isnot"
	OpContains    = "contains"
	OpNotContains = "notcontains"
	OpGreaterThan = "greater_than"
	OpLessThan    = "less_than"
	OpStartsWith  = "starts_with"
	OpEndsWith    = "ends_with"
	OpIsEmpty     = "is_empty"
	OpIsNotEmpty  = "is_not_empty"
)

// Action and combinator keywords. Unrecognised values fall back to
// ActionHide and LogicAny respectively.
const (
	ActionShow = "show"
	ActionHide = "hide"
	LogicAll   = "all"
	LogicAny   = "any"
)

// Rule is a single visibility predicate: inspect the live value of the field
// named by FieldID and compare it against Value using Operator.
type Rule struct {
	FieldID  string `json:"fieldId"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Logic is a rule set attached to a field. ActionType decides whether a
// matching rule set shows or hides the field; LogicType decides whether all
// rules must match or any one of them.
type Logic struct {
	ActionType string `json:"actionType"`
	LogicType  string `json:"logicType"`
	Rules      []Rule `json:"rules"`
}

// Values is the live form state a rule set is evaluated against: current
// input values keyed by the referenced field id.
type Values map[string]string

// Evaluate returns the visibility state for a field carrying logic, given the
// live form values. An empty rule set always yields visible.
func Evaluate(logic Logic, values Values) bool {
	if len(logic.Rules) == 0 {
		return true
	}

	var combined bool
	if logic.LogicType == LogicAll {
		combined = true
		for _, rule := range logic.Rules {
			if !EvaluateRule(rule, values) {
				combined = false
				break
			}
		}
	} else {
		for _, rule := range logic.Rules {
			if EvaluateRule(rule, values) {
				combined = true
				break
			}
		}
	}

	if logic.ActionType == ActionShow {
		return combined
	}
	return !combined
}

// EvaluateRule applies a single predicate against the live values. A
// referenced field with no live value fails the rule regardless of operator.
func EvaluateRule(rule Rule, values Values) bool {
	value, ok := values[rule.FieldID]
	if !ok {
		return false
	}

	switch rule.Operator {
	case OpIs:
		return value == rule.Value
	case OpIsNot:
		return value != rule.Value
	case OpContains:
		return strings.Contains(value, rule.Value)
	case OpNotContains:
		return !strings.Contains(value, rule.Value)
	case OpGreaterThan:
		return coerceNumber(value) > coerceNumber(rule.Value)
	case OpLessThan:
		return coerceNumber(value) < coerceNumber(rule.Value)
	case OpStartsWith:
		return strings.HasPrefix(value, rule.Value)
	case OpEndsWith:
		return strings.HasSuffix(value, rule.Value)
	case OpIsEmpty:
		return value == ""
	case OpIsNotEmpty:
		return value != ""
	default:
		return false
	}
}

// coerceNumber parses a value for the numeric comparisons, treating anything
// unparsable as zero.
func coerceNumber(raw string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return n
}
