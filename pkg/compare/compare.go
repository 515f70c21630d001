// Package compare implements type-aware tolerance comparison of raw field
// values. A comparator is constructed with explicit tolerances so concurrent
// runs with different settings cannot interfere.
package compare

import (
	"math"

	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// Epsilon absorbs floating-point noise in tolerance boundaries and in the
// exact/within-tolerance classification.
const Epsilon = 1e-9

// Class classifies a comparison outcome.
type Class string

const (
	// Exact means the values agree to within Epsilon.
	Exact Class = "exact"
	// WithinTolerance means the values differ but inside the field type's
	// tolerance.
	WithinTolerance Class = "within_tolerance"
	// Mismatch means the values disagree beyond tolerance.
	Mismatch Class = "mismatch"
)

// Outcome is the result of comparing one pair of values.
type Outcome struct {
	// Match reports whether the pair passes under the field's tolerance.
	Match bool
	// Difference is actual minus expected. Valid only when HasDifference.
	Difference float64
	// HasDifference is false for non-numeric comparisons.
	HasDifference bool
	// Class is the exact / within-tolerance / mismatch classification.
	Class Class
}

// Tolerances holds the per-type tolerances for one validation run.
type Tolerances struct {
	// Currency is the absolute currency-unit tolerance.
	Currency float64
	// Percentage is the absolute tolerance for 0-1 fraction values.
	Percentage float64
}

// DefaultTolerances returns the standard run tolerances: one currency unit
// and 0.1 percentage points.
func DefaultTolerances() Tolerances {
	return Tolerances{Currency: 1.0, Percentage: 0.001}
}

// Comparator compares value pairs under a fixed set of tolerances.
type Comparator struct {
	tol Tolerances
}

// New returns a comparator with the given tolerances. Non-positive tolerance
// values fall back to the defaults.
func New(tol Tolerances) *Comparator {
	def := DefaultTolerances()
	if tol.Currency <= 0 {
		tol.Currency = def.Currency
	}
	if tol.Percentage <= 0 {
		tol.Percentage = def.Percentage
	}
	return &Comparator{tol: tol}
}

// Tolerances returns the comparator's tolerances.
func (c *Comparator) Tolerances() Tolerances { return c.tol }

// Compare compares an actual value against an expected value under a field
// type. It never fails: values that cannot be coerced to numbers fall back
// to string equality. Absent values, the dash placeholder, and zero are
// mutually interchangeable.
func (c *Comparator) Compare(actual, expected records.Value, ft schema.FieldType) Outcome {
	if actual.IsAbsent() && expected.IsAbsent() {
		return Outcome{Match: true, HasDifference: true, Class: Exact}
	}

	actualNum, actualOK := actual.Float()
	expectedNum, expectedOK := expected.Float()
	if !actualOK || !expectedOK {
		if actual.Text() == expected.Text() {
			return Outcome{Match: true, Class: Exact}
		}
		return Outcome{Class: Mismatch}
	}

	diff := actualNum - expectedNum

	switch ft {
	case schema.Percentage:
		return within(diff, c.tol.Percentage)
	case schema.Currency:
		return within(diff, c.tol.Currency)
	case schema.Integer:
		if math.Trunc(actualNum) == math.Trunc(expectedNum) {
			return Outcome{Match: true, HasDifference: true, Class: Exact}
		}
		return Outcome{Difference: diff, HasDifference: true, Class: Mismatch}
	default:
		if math.Abs(diff) < Epsilon {
			return Outcome{Match: true, HasDifference: true, Class: Exact}
		}
		return Outcome{Difference: diff, HasDifference: true, Class: Mismatch}
	}
}

// within applies an inclusive absolute tolerance. Epsilon keeps a boundary
// value like 0.001 from failing on floating-point representation.
func within(diff, tol float64) Outcome {
	if math.Abs(diff) <= tol+Epsilon {
		class := WithinTolerance
		if math.Abs(diff) < Epsilon {
			class = Exact
		}
		return Outcome{Match: true, Difference: diff, HasDifference: true, Class: class}
	}
	return Outcome{Difference: diff, HasDifference: true, Class: Mismatch}
}
