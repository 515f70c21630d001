package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

func TestCompareCurrency(t *testing.T) {
	c := New(DefaultTolerances())

	tests := []struct {
		name             string
		actual, expected float64
		match            bool
		class            Class
	}{
		{"identical", 150000, 150000, true, Exact},
		{"half unit inside tolerance", 1000.5, 1000, true, WithinTolerance},
		{"exactly at tolerance", 1001, 1000, true, WithinTolerance},
		{"beyond tolerance", 1001.5, 1000, false, Mismatch},
		{"large deviation", 163000, 150000, false, Mismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compare(records.Number(tt.actual), records.Number(tt.expected), schema.Currency)
			assert.Equal(t, tt.match, got.Match)
			assert.Equal(t, tt.class, got.Class)
		})
	}
}

func TestComparePercentage(t *testing.T) {
	c := New(DefaultTolerances())

	tests := []struct {
		name             string
		actual, expected float64
		match            bool
		class            Class
	}{
		{"identical", 0.12, 0.12, true, Exact},
		{"inside tolerance", 0.1205, 0.12, true, WithinTolerance},
		{"boundary value is inclusive", 0.121, 0.12, true, WithinTolerance},
		{"beyond tolerance", 0.122, 0.12, false, Mismatch},
		{"five point swing", 0.05, 0.0, false, Mismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compare(records.Number(tt.actual), records.Number(tt.expected), schema.Percentage)
			assert.Equal(t, tt.match, got.Match, "diff %v", got.Difference)
			assert.Equal(t, tt.class, got.Class)
		})
	}
}

func TestCompareInteger(t *testing.T) {
	c := New(DefaultTolerances())

	got := c.Compare(records.Number(7), records.Number(7), schema.Integer)
	assert.True(t, got.Match)
	assert.Equal(t, Exact, got.Class)

	got = c.Compare(records.Number(7.4), records.Number(7), schema.Integer)
	assert.True(t, got.Match, "integer comparison truncates fractional noise")

	got = c.Compare(records.Number(8), records.Number(7), schema.Integer)
	assert.False(t, got.Match)
	assert.Equal(t, Mismatch, got.Class)
	assert.Equal(t, 1.0, got.Difference)
}

func TestCompareAbsentPlaceholderZero(t *testing.T) {
	c := New(DefaultTolerances())

	// Absent, the dash placeholder, and zero are mutually interchangeable.
	pairs := []struct {
		name             string
		actual, expected records.Value
	}{
		{"both absent", records.Absent(), records.Absent()},
		{"absent vs zero", records.Absent(), records.Number(0)},
		{"placeholder vs zero", records.String("-"), records.Number(0)},
		{"placeholder vs absent", records.String("-"), records.Absent()},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compare(tt.actual, tt.expected, schema.Currency)
			assert.True(t, got.Match)
			assert.Equal(t, Exact, got.Class)
		})
	}

	got := c.Compare(records.Absent(), records.Number(150000), schema.Currency)
	assert.False(t, got.Match, "absent against a real value is a mismatch")
}

func TestCompareNonNumericFallback(t *testing.T) {
	c := New(DefaultTolerances())

	got := c.Compare(records.String("TBC"), records.String("TBC"), schema.Currency)
	assert.True(t, got.Match, "string equality is the non-numeric fallback")
	assert.False(t, got.HasDifference)

	got = c.Compare(records.String("=B2*C2"), records.Number(150000), schema.Currency)
	assert.False(t, got.Match)
	assert.False(t, got.HasDifference)
	assert.Equal(t, Mismatch, got.Class)
}

func TestCompareNumericText(t *testing.T) {
	c := New(DefaultTolerances())

	got := c.Compare(records.String("150000"), records.Number(150000), schema.Currency)
	assert.True(t, got.Match, "numeric text coerces before comparison")
}

func TestNewClampsNonPositiveTolerances(t *testing.T) {
	c := New(Tolerances{Currency: -5, Percentage: 0})
	assert.Equal(t, DefaultTolerances(), c.Tolerances())
}
