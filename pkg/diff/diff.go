// Package diff builds a record-grouped changeset between the source-of-truth
// and target collections. Unlike the validator it carries no severity or
// verdict: it is the work list for correcting the target.
package diff

import (
	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/matcher"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// FieldDiff is one mismatching field inside a record diff. Difference is
// source minus target.
type FieldDiff struct {
	Field       string           `json:"field"`
	Label       string           `json:"label"`
	SourceValue any              `json:"source_value"`
	TargetValue any              `json:"target_value"`
	Difference  *float64         `json:"difference"`
	DiffPercent *float64         `json:"diff_percent"`
	Type        schema.FieldType `json:"type"`
}

// RecordDiff groups a record's field differences.
type RecordDiff struct {
	Key         records.Key `json:"key"`
	Market      string      `json:"market"`
	Category    string      `json:"category"`
	Brand       string      `json:"brand"`
	Row         int         `json:"row,omitempty"`
	Differences []FieldDiff `json:"differences"`
}

// Entry is a record present on one side only, flattened for the report.
type Entry struct {
	Key      records.Key    `json:"key"`
	Market   string         `json:"market"`
	Category string         `json:"category"`
	Brand    string         `json:"brand"`
	Fields   map[string]any `json:"fields"`
}

// Summary counts the changeset.
type Summary struct {
	SourceRecords            int `json:"source_records"`
	TargetRecords            int `json:"target_records"`
	MatchingRecords          int `json:"matching_records"`
	RecordsWithDiscrepancies int `json:"records_with_discrepancies"`
	SourceOnlyRecords        int `json:"source_only_records"`
	TargetOnlyRecords        int `json:"target_only_records"`
	TotalFieldDiscrepancies  int `json:"total_field_discrepancies"`
}

// Report is the complete changeset between two collections.
type Report struct {
	Summary       Summary       `json:"summary"`
	SourceOnly    []Entry       `json:"source_only"`
	TargetOnly    []Entry       `json:"target_only"`
	Discrepancies []RecordDiff  `json:"discrepancies"`
	Matches       []records.Key `json:"matches"`
}

// Differ builds diff reports under a schema and comparator.
type Differ struct {
	schema     *schema.Schema
	comparator *compare.Comparator
	duplicates records.DuplicatePolicy
}

// New creates a Differ. A nil schema means the default schema; a nil
// comparator means default tolerances.
func New(s *schema.Schema, c *compare.Comparator) *Differ {
	if s == nil {
		s = schema.Default()
	}
	if c == nil {
		c = compare.New(compare.DefaultTolerances())
	}
	return &Differ{schema: s, comparator: c, duplicates: records.KeepLast}
}

// Report diffs the target collection against the source-of-truth collection.
func (d *Differ) Report(source, target *records.Collection) *Report {
	sourceSet := records.NewSet(source.Records, d.duplicates)
	targetSet := records.NewSet(target.Records, d.duplicates)
	match := matcher.Partition(sourceSet, targetSet)

	report := &Report{
		Summary: Summary{
			SourceRecords:     sourceSet.Len(),
			TargetRecords:     targetSet.Len(),
			SourceOnlyRecords: len(match.SourceOnly),
			TargetOnlyRecords: len(match.TargetOnly),
		},
	}

	for _, key := range match.SourceOnly {
		rec, _ := sourceSet.Get(key)
		report.SourceOnly = append(report.SourceOnly, entry(key, rec))
	}
	for _, key := range match.TargetOnly {
		rec, _ := targetSet.Get(key)
		report.TargetOnly = append(report.TargetOnly, entry(key, rec))
	}

	for _, key := range match.Common {
		expected, _ := sourceSet.Get(key)
		actual, _ := targetSet.Get(key)

		diffs := d.record(expected, actual)
		if len(diffs) == 0 {
			report.Matches = append(report.Matches, key)
			continue
		}
		report.Discrepancies = append(report.Discrepancies, RecordDiff{
			Key:         key,
			Market:      expected.Market,
			Category:    expected.Category,
			Brand:       expected.Brand,
			Row:         actual.Row,
			Differences: diffs,
		})
		report.Summary.TotalFieldDiscrepancies += len(diffs)
	}

	report.Summary.MatchingRecords = len(report.Matches)
	report.Summary.RecordsWithDiscrepancies = len(report.Discrepancies)
	return report
}

// record compares every schema field of a pair, returning the mismatches.
func (d *Differ) record(expected, actual records.Record) []FieldDiff {
	var out []FieldDiff
	for _, field := range d.schema.Fields() {
		sourceVal := expected.Field(field.Name)
		targetVal := actual.Field(field.Name)

		outcome := d.comparator.Compare(sourceVal, targetVal, field.Type)
		if outcome.Match {
			continue
		}

		fd := FieldDiff{
			Field:       field.Name,
			Label:       field.Label,
			SourceValue: sourceVal.Raw(),
			TargetValue: targetVal.Raw(),
			Type:        field.Type,
		}
		if outcome.HasDifference {
			diff := outcome.Difference
			fd.Difference = &diff
			pct := diffPercent(diff, targetVal)
			fd.DiffPercent = &pct
		}
		out = append(out, fd)
	}
	return out
}

// diffPercent expresses the difference relative to the target value. A zero
// target with a non-zero difference reports 100.
func diffPercent(diff float64, target records.Value) float64 {
	n, ok := target.Float()
	if !ok || n == 0 {
		if diff != 0 {
			return 100
		}
		return 0
	}
	return diff / n * 100
}

func entry(key records.Key, rec records.Record) Entry {
	fields := make(map[string]any, len(rec.Fields))
	for name, v := range rec.Fields {
		fields[name] = v.Raw()
	}
	return Entry{
		Key:      key,
		Market:   rec.Market,
		Category: rec.Category,
		Brand:    rec.Brand,
		Fields:   fields,
	}
}
