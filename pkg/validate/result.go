package validate

import (
	"github.com/agentstation/utc"

	"github.com/agentstation/crosscheck/pkg/audit"
	"github.com/agentstation/crosscheck/pkg/classify"
	"github.com/agentstation/crosscheck/pkg/records"
)

// Verdict is the run's overall outcome.
type Verdict string

const (
	// Pass means every checked field matched within tolerance and no
	// source-of-truth record is missing from the target.
	Pass Verdict = "PASS"
	// Fail means at least one mismatch or missing record was found.
	Fail Verdict = "FAIL"
)

// Summary holds the run's counters.
type Summary struct {
	RecordsChecked  int     `json:"total_records_checked"`
	FieldsChecked   int     `json:"total_fields_checked"`
	ExactMatches    int     `json:"exact_matches"`
	WithinTolerance int     `json:"within_tolerance"`
	Mismatches      int     `json:"mismatches"`
	MissingInTarget int     `json:"missing_in_target"`
	MissingInSource int     `json:"missing_in_source"`
	PassRate        float64 `json:"pass_rate"`
}

// Result is the engine's sole deliverable: counters, the full discrepancy
// and duplicate collections, and the edge-case audit. It is immutable once
// Run returns it.
type Result struct {
	Timestamp  utc.Time `json:"timestamp"`
	SourceFile string   `json:"source_file"`
	TargetFile string   `json:"target_file"`
	Summary    Summary  `json:"summary"`
	Status     Verdict  `json:"status"`
	// Discrepancies lists missing-record entries first, then field-level
	// mismatches in key order.
	Discrepancies []classify.Discrepancy `json:"discrepancies"`
	// Duplicates reports key collisions observed inside either collection.
	Duplicates []records.Duplicate `json:"duplicates,omitempty"`
	EdgeCases  []audit.Finding     `json:"edge_cases_tested"`
}

// Verdict computes PASS/FAIL from the counters: PASS iff zero mismatches and
// zero records missing from the target.
func (s Summary) Verdict() Verdict {
	if s.Mismatches == 0 && s.MissingInTarget == 0 {
		return Pass
	}
	return Fail
}

// passRate is the share of checked fields that matched exactly or within
// tolerance, as a percentage. Zero fields checked yields 0, not NaN.
func passRate(tally classify.Tally) float64 {
	fields := tally.Fields()
	if fields == 0 {
		return 0
	}
	return float64(tally.Exact+tally.WithinTolerance) / float64(fields) * 100
}

// Critical returns the critical discrepancies in report order.
func (r *Result) Critical() []classify.Discrepancy {
	return r.bySeverity(classify.Critical)
}

// Warnings returns the warning discrepancies in report order.
func (r *Result) Warnings() []classify.Discrepancy {
	return r.bySeverity(classify.Warning)
}

func (r *Result) bySeverity(sev classify.Severity) []classify.Discrepancy {
	var out []classify.Discrepancy
	for _, d := range r.Discrepancies {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// ByMarket groups discrepancy counts by market, with markets sorted.
func (r *Result) ByMarket() []MarketCount {
	counts := make(map[string]int)
	for _, d := range r.Discrepancies {
		counts[d.Market]++
	}
	out := make([]MarketCount, 0, len(counts))
	for market, n := range counts {
		out = append(out, MarketCount{Market: market, Count: n})
	}
	sortMarketCounts(out)
	return out
}

// MarketCount is a per-market discrepancy count.
type MarketCount struct {
	Market string `json:"market"`
	Count  int    `json:"count"`
}
