package classify

import (
	"math"

	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// rootCause is one heuristic pattern in the inference chain.
type rootCause struct {
	hint  string
	match func(actual, expected records.Value, ft schema.FieldType) bool
}

// rootCauses is evaluated in order; the first matching pattern wins. Hints
// are best-effort triage aids, never authoritative.
var rootCauses = []rootCause{
	{
		hint: "value missing in target - extraction failed or row mismatch",
		match: func(actual, expected records.Value, _ schema.FieldType) bool {
			return actual.IsAbsent() && !expected.IsAbsent()
		},
	},
	{
		hint: "value missing in source - extraction failed",
		match: func(actual, expected records.Value, _ schema.FieldType) bool {
			return expected.IsAbsent() && !actual.IsAbsent()
		},
	},
	{
		hint: "target contains formula text, not a computed value",
		match: func(actual, _ records.Value, _ schema.FieldType) bool {
			return actual.Kind() == records.KindFormula
		},
	},
	{
		hint: "non-numeric comparison",
		match: func(actual, expected records.Value, _ schema.FieldType) bool {
			_, aok := actual.Float()
			_, eok := expected.Float()
			return !aok || !eok
		},
	},
	{
		hint: "scale issue: target has decimal, source has percentage",
		match: func(actual, expected records.Value, ft schema.FieldType) bool {
			return ft == schema.Percentage && numbersMatch(actual, expected, func(a, e float64) bool {
				return math.Abs(a*100-e) < roundingWindow
			})
		},
	},
	{
		hint: "scale issue: source has decimal, target has percentage",
		match: func(actual, expected records.Value, ft schema.FieldType) bool {
			return ft == schema.Percentage && numbersMatch(actual, expected, func(a, e float64) bool {
				return math.Abs(a-e*100) < roundingWindow
			})
		},
	},
	{
		hint: "sign flip: values have opposite signs",
		match: func(actual, expected records.Value, _ schema.FieldType) bool {
			return numbersMatch(actual, expected, func(a, e float64) bool {
				return a != 0 && e != 0 && math.Abs(a+e) < roundingWindow
			})
		},
	},
	{
		hint: "minor rounding difference",
		match: func(actual, expected records.Value, _ schema.FieldType) bool {
			return numbersMatch(actual, expected, func(a, e float64) bool {
				return math.Abs(a-e) < roundingWindow
			})
		},
	},
}

const hintUnclassified = "value mismatch - manual verification needed"

// numbersMatch coerces both sides and applies pred, failing closed when
// either side has no numeric form.
func numbersMatch(actual, expected records.Value, pred func(a, e float64) bool) bool {
	a, aok := actual.Float()
	e, eok := expected.Float()
	return aok && eok && pred(a, e)
}

// inferRootCause walks the pattern chain and returns the first matching
// hint, falling through to the unclassified hint.
func inferRootCause(actual, expected records.Value, ft schema.FieldType) string {
	for _, rc := range rootCauses {
		if rc.match(actual, expected, ft) {
			return rc.hint
		}
	}
	return hintUnclassified
}
