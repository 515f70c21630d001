package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

func testClassifier() *Classifier {
	return New(schema.Default(), compare.New(compare.DefaultTolerances()))
}

func pair(field string, actual, expected records.Value) (records.Record, records.Record) {
	a := records.Record{
		Market: "KSA", Category: "OHC", Brand: "Sensodyne", Row: 12,
		Fields: map[string]records.Value{field: actual},
	}
	e := records.Record{
		Market: "KSA", Category: "OHC", Brand: "Sensodyne",
		Fields: map[string]records.Value{field: expected},
	}
	return a, e
}

func TestRecordCleanPair(t *testing.T) {
	c := testClassifier()
	actual, expected := pair("budget_2026", records.Number(150000), records.Number(150000))

	discrepancies, tally := c.Record(actual, expected)
	assert.Empty(t, discrepancies)
	assert.Equal(t, 13, tally.Fields(), "every schema field is counted")
	assert.Equal(t, 13, tally.Exact, "absent fields on both sides count as exact")
	assert.Zero(t, tally.Mismatches)
}

func TestRecordCurrencySeverity(t *testing.T) {
	c := testClassifier()

	// 500 over: mismatch but under the critical threshold.
	actual, expected := pair("budget_2026", records.Number(150500), records.Number(150000))
	discrepancies, tally := c.Record(actual, expected)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, Warning, discrepancies[0].Severity)
	assert.Equal(t, 1, tally.Mismatches)

	// 13000 over: critical.
	actual, expected = pair("budget_2026", records.Number(163000), records.Number(150000))
	discrepancies, _ = c.Record(actual, expected)
	require.Len(t, discrepancies, 1)
	d := discrepancies[0]
	assert.Equal(t, Critical, d.Severity)
	assert.Equal(t, "2026 Budget", d.Field, "discrepancies carry the display label")
	assert.Equal(t, 12, d.Row)
	require.NotNil(t, d.Difference)
	assert.Equal(t, 13000.0, *d.Difference)
	require.NotNil(t, d.DiffPercent)
	assert.Equal(t, 8.67, *d.DiffPercent)
}

func TestRecordPercentageSeverity(t *testing.T) {
	c := testClassifier()

	actual, expected := pair("awa", records.Number(0.14), records.Number(0.12))
	discrepancies, _ := c.Record(actual, expected)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, Warning, discrepancies[0].Severity, "two points off stays a warning")

	actual, expected = pair("awa", records.Number(0.20), records.Number(0.12))
	discrepancies, _ = c.Record(actual, expected)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, Critical, discrepancies[0].Severity, "more than five points off is critical")
}

func TestRecordWithinToleranceProducesNoDiscrepancy(t *testing.T) {
	c := testClassifier()
	actual, expected := pair("budget_2026", records.Number(150000.5), records.Number(150000))

	discrepancies, tally := c.Record(actual, expected)
	assert.Empty(t, discrepancies)
	assert.Equal(t, 1, tally.WithinTolerance)
	assert.Equal(t, 12, tally.Exact)
}

func TestRecordNoDiffPercentForZeroExpected(t *testing.T) {
	c := testClassifier()
	actual, expected := pair("budget_2026", records.Number(5000), records.Number(0))

	discrepancies, _ := c.Record(actual, expected)
	require.Len(t, discrepancies, 1)
	assert.Nil(t, discrepancies[0].DiffPercent, "relative difference is undefined against zero")
}

func TestMissingRecord(t *testing.T) {
	rec := records.Record{Market: "KSA", Category: "OHC", Brand: "Parodontax"}
	d := MissingRecord(rec)

	assert.Equal(t, MissingRecordField, d.Field)
	assert.Equal(t, Critical, d.Severity)
	assert.Equal(t, "EXISTS IN SOURCE", d.Expected)
	assert.Nil(t, d.Actual)
	assert.Nil(t, d.Difference)
}

func TestTallyAddCommutes(t *testing.T) {
	a := Tally{Exact: 3, WithinTolerance: 2, Mismatches: 1}
	b := Tally{Exact: 10, WithinTolerance: 0, Mismatches: 4}

	left := a
	left.Add(b)
	right := b
	right.Add(a)

	assert.Equal(t, left, right)
	assert.Equal(t, 20, left.Fields())
}
