package compile

import (
	"fmt"
	"strings"
)

// sliderScript binds a slider's numeric readout to its input events.
func sliderScript(name string) string {
	escaped := attrEscape(name)
	return fmt.Sprintf(`<script>document.getElementById(%[1]q).addEventListener("input",function(e){document.querySelector("output[for='%[1]s']").value=e.target.value;});</script>`, escaped)
}

// conditionalLogicScript is the embedded rule evaluator: it re-evaluates
// every conditional field's rule set against the live form values on each
// change event and once at load. The semantics mirror pkg/rules, including
// suspending the required constraint on hidden inputs and restoring it
// exactly when the field shows again.
func conditionalLogicScript(formClass string) string {
	return strings.Replace(evaluatorScript, "__FORM_CLASS__", attrEscape(formClass), 1)
}

const evaluatorScript = `<script>
(function() {
	'use strict';

	function fieldValue(form, fieldId) {
		var els = form.querySelectorAll('[name="field_' + fieldId + '"], [name="field_' + fieldId + '[]"]');
		if (!els.length) {
			return null;
		}
		var first = els[0];
		if (first.type === 'radio' || first.type === 'checkbox') {
			var picked = [];
			els.forEach(function(el) {
				if (el.checked) {
					picked.push(el.value);
				}
			});
			return picked.join(',');
		}
		return first.value;
	}

	function evaluateRule(form, rule) {
		var value = fieldValue(form, rule.fieldId);
		if (value === null) {
			return false;
		}
		switch (rule.operator) {
			case 'is':
				return value === rule.value;
			case 'isnot':
				return value !== rule.value;
			case 'contains':
				return value.indexOf(rule.value) !== -1;
			case 'notcontains':
				return value.indexOf(rule.value) === -1;
			case 'greater_than':
				return (parseFloat(value) || 0) > (parseFloat(rule.value) || 0);
			case 'less_than':
				return (parseFloat(value) || 0) < (parseFloat(rule.value) || 0);
			case 'starts_with':
				return value.lastIndexOf(rule.value, 0) === 0;
			case 'ends_with':
				return value.length >= rule.value.length &&
					value.indexOf(rule.value, value.length - rule.value.length) !== -1;
			case 'is_empty':
				return value.length === 0;
			case 'is_not_empty':
				return value.length > 0;
			default:
				return false;
		}
	}

	function evaluateLogic(form, logic) {
		if (!logic || !logic.rules || !logic.rules.length) {
			return true;
		}
		var combined;
		var match = function(rule) { return evaluateRule(form, rule); };
		if (logic.logicType === 'all') {
			combined = logic.rules.every(match);
		} else {
			combined = logic.rules.some(match);
		}
		return logic.actionType === 'show' ? combined : !combined;
	}

	function applyVisibility(wrapper, visible) {
		wrapper.style.display = visible ? '' : 'none';
		var inputs = wrapper.querySelectorAll('input, select, textarea');
		inputs.forEach(function(input) {
			if (visible) {
				if (input.dataset.wasRequired) {
					input.required = true;
					delete input.dataset.wasRequired;
				}
			} else if (input.required) {
				input.dataset.wasRequired = 'true';
				input.required = false;
			}
		});
	}

	function evaluateAll(form, wrappers) {
		wrappers.forEach(function(entry) {
			applyVisibility(entry.wrapper, evaluateLogic(form, entry.logic));
		});
	}

	document.querySelectorAll('form.__FORM_CLASS__').forEach(function(form) {
		var wrappers = [];
		form.querySelectorAll('.has-conditional-logic').forEach(function(wrapper) {
			var raw = wrapper.getAttribute('data-conditional-logic');
			if (!raw) {
				return;
			}
			try {
				wrappers.push({ wrapper: wrapper, logic: JSON.parse(raw) });
			} catch (err) {
				// unparsable payload: leave the field visible
			}
		});
		if (!wrappers.length) {
			return;
		}
		form.addEventListener('change', function() {
			evaluateAll(form, wrappers);
		});
		evaluateAll(form, wrappers);
	});
})();
</script>`
