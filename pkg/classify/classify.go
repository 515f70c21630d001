// Package classify turns comparator mismatches into discrepancies with a
// severity and a best-effort root-cause hint.
package classify

import (
	"math"

	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// Severity ranks a discrepancy.
type Severity string

const (
	// Critical marks large deviations and structurally missing records.
	Critical Severity = "CRITICAL"
	// Warning marks deviations inside the critical thresholds.
	Warning Severity = "WARNING"
)

// Severity thresholds and the rounding-detection window. These are fixed
// engine constants; only the run tolerances are configurable.
const (
	// criticalCurrencyDiff is the absolute currency difference above which a
	// currency mismatch is critical.
	criticalCurrencyDiff = 1000.0
	// criticalPercentageDiff is the absolute fraction difference above which
	// a percentage mismatch is critical (5 percentage points).
	criticalPercentageDiff = 0.05
	// roundingWindow is the absolute difference under which a mismatch is
	// attributed to rounding.
	roundingWindow = 0.01
)

// Discrepancy is one mismatching field on one record.
type Discrepancy struct {
	Market      string   `json:"market"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Field       string   `json:"field"`
	Actual      any      `json:"actual_value"`
	Expected    any      `json:"expected_value"`
	Difference  *float64 `json:"difference"`
	DiffPercent *float64 `json:"diff_percent"`
	Row         int      `json:"row,omitempty"`
	Severity    Severity `json:"severity"`
	Hint        string   `json:"root_cause_hint"`
}

// MissingRecordField is the sentinel field label for a record wholly absent
// from the target. It keeps missing records distinguishable from field-level
// mismatches in every report surface.
const MissingRecordField = "ENTIRE RECORD"

// MissingRecord builds the critical discrepancy for a source-of-truth record
// with no counterpart in the target.
func MissingRecord(rec records.Record) Discrepancy {
	return Discrepancy{
		Market:   rec.Market,
		Category: rec.Category,
		Brand:    rec.Brand,
		Field:    MissingRecordField,
		Expected: "EXISTS IN SOURCE",
		Severity: Critical,
		Hint:     "record exists in source of truth but is missing from target",
	}
}

// Classifier produces discrepancies for matched record pairs.
type Classifier struct {
	schema     *schema.Schema
	comparator *compare.Comparator
}

// New returns a classifier over the given schema and comparator.
func New(s *schema.Schema, c *compare.Comparator) *Classifier {
	return &Classifier{schema: s, comparator: c}
}

// Schema returns the classifier's field schema.
func (c *Classifier) Schema() *schema.Schema { return c.schema }

// Tally counts per-field comparison outcomes for one or more records.
type Tally struct {
	Exact           int `json:"exact_matches"`
	WithinTolerance int `json:"within_tolerance"`
	Mismatches      int `json:"mismatches"`
}

// Fields returns the total number of field comparisons counted.
func (t Tally) Fields() int {
	return t.Exact + t.WithinTolerance + t.Mismatches
}

// Add merges another tally into this one. Addition is commutative, so
// sharded runs merge to the same totals in any order.
func (t *Tally) Add(other Tally) {
	t.Exact += other.Exact
	t.WithinTolerance += other.WithinTolerance
	t.Mismatches += other.Mismatches
}

// Record compares every schema field of a matched pair and returns one
// discrepancy per mismatch plus the outcome tally. It never fails; malformed
// values degrade to the unclassified hint via the comparator's fallbacks.
func (c *Classifier) Record(actual, expected records.Record) ([]Discrepancy, Tally) {
	var out []Discrepancy
	var tally Tally
	for _, field := range c.schema.Fields() {
		actualVal := actual.Field(field.Name)
		expectedVal := expected.Field(field.Name)

		outcome := c.comparator.Compare(actualVal, expectedVal, field.Type)
		switch outcome.Class {
		case compare.Exact:
			tally.Exact++
		case compare.WithinTolerance:
			tally.WithinTolerance++
		default:
			tally.Mismatches++
		}
		if outcome.Match {
			continue
		}

		d := Discrepancy{
			Market:   actual.Market,
			Category: actual.Category,
			Brand:    actual.Brand,
			Field:    field.Label,
			Actual:   actualVal.Raw(),
			Expected: expectedVal.Raw(),
			Row:      actual.Row,
			Severity: severity(field.Type, outcome),
			Hint:     inferRootCause(actualVal, expectedVal, field.Type),
		}
		if outcome.HasDifference {
			diff := round6(outcome.Difference)
			d.Difference = &diff
			if expectedNum, ok := expectedVal.Float(); ok && expectedNum != 0 {
				pct := round2(outcome.Difference / expectedNum * 100)
				d.DiffPercent = &pct
			}
		}
		out = append(out, d)
	}
	return out, tally
}

// severity applies the type-specific critical thresholds.
func severity(ft schema.FieldType, outcome compare.Outcome) Severity {
	if !outcome.HasDifference {
		return Warning
	}
	abs := math.Abs(outcome.Difference)
	switch ft {
	case schema.Currency:
		if abs > criticalCurrencyDiff {
			return Critical
		}
	case schema.Percentage:
		if abs > criticalPercentageDiff {
			return Critical
		}
	}
	return Warning
}

func round6(f float64) float64 { return math.Round(f*1e6) / 1e6 }
func round2(f float64) float64 { return math.Round(f*1e2) / 1e2 }
