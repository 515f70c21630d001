package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

func TestInferRootCause(t *testing.T) {
	tests := []struct {
		name             string
		actual, expected records.Value
		ft               schema.FieldType
		hint             string
	}{
		{
			name:   "missing in target",
			actual: records.Absent(), expected: records.Number(150000),
			ft:   schema.Currency,
			hint: "value missing in target - extraction failed or row mismatch",
		},
		{
			name:   "missing in source",
			actual: records.Number(150000), expected: records.Absent(),
			ft:   schema.Currency,
			hint: "value missing in source - extraction failed",
		},
		{
			name:   "formula text in target",
			actual: records.String("=B2*C2"), expected: records.Number(150000),
			ft:   schema.Currency,
			hint: "target contains formula text, not a computed value",
		},
		{
			name:   "non-numeric text",
			actual: records.String("TBC"), expected: records.Number(150000),
			ft:   schema.Currency,
			hint: "non-numeric comparison",
		},
		{
			name:   "target stored as fraction of the source percentage",
			actual: records.Number(0.63), expected: records.Number(63),
			ft:   schema.Percentage,
			hint: "scale issue: target has decimal, source has percentage",
		},
		{
			name:   "source stored as fraction of the target percentage",
			actual: records.Number(63), expected: records.Number(0.63),
			ft:   schema.Percentage,
			hint: "scale issue: source has decimal, target has percentage",
		},
		{
			name:   "scale heuristic is percentage-only",
			actual: records.Number(0.63), expected: records.Number(63),
			ft:   schema.Currency,
			hint: hintUnclassified,
		},
		{
			name:   "sign flip",
			actual: records.Number(-25000), expected: records.Number(25000),
			ft:   schema.Currency,
			hint: "sign flip: values have opposite signs",
		},
		{
			name:   "minor rounding",
			actual: records.Number(0.1234), expected: records.Number(0.1250),
			ft:   schema.Percentage,
			hint: "minor rounding difference",
		},
		{
			name:   "unclassified",
			actual: records.Number(163000), expected: records.Number(150000),
			ft:   schema.Currency,
			hint: hintUnclassified,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hint, inferRootCause(tt.actual, tt.expected, tt.ft))
		})
	}
}

func TestRootCauseSurfacesInDiscrepancy(t *testing.T) {
	c := testClassifier()
	actual, expected := pair("gap_pct", records.Number(-0.15), records.Number(0.15))

	discrepancies, _ := c.Record(actual, expected)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, "sign flip: values have opposite signs", discrepancies[0].Hint)
	assert.Equal(t, Critical, discrepancies[0].Severity, "a thirty point swing is critical")
}
