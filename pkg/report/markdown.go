package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/crosscheck/pkg/validate"
)

// Markdown renders the human-readable report: summary table, verdict, edge
// cases, critical and warning tables, and per-market counts.
func (w *Writer) Markdown(result *validate.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Data Validation Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", result.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Source (truth):** `%s`\n", result.SourceFile)
	fmt.Fprintf(&b, "**Target:** `%s`\n\n", result.TargetFile)

	s := result.Summary
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Records Checked | %d |\n", s.RecordsChecked)
	fmt.Fprintf(&b, "| Fields Checked | %d |\n", s.FieldsChecked)
	fmt.Fprintf(&b, "| Exact Matches | %d |\n", s.ExactMatches)
	fmt.Fprintf(&b, "| Within Tolerance | %d |\n", s.WithinTolerance)
	fmt.Fprintf(&b, "| Mismatches | %d |\n", s.Mismatches)
	fmt.Fprintf(&b, "| Missing in Target | %d |\n", s.MissingInTarget)
	fmt.Fprintf(&b, "| Missing in Source | %d |\n", s.MissingInSource)
	fmt.Fprintf(&b, "| **Pass Rate** | **%.1f%%** |\n\n", s.PassRate)

	if result.Status == validate.Pass {
		b.WriteString("## Status: PASS\n\n")
		b.WriteString("All target values match the source of truth within tolerance.\n")
	} else {
		b.WriteString("## Status: FAIL\n\n")
		fmt.Fprintf(&b, "Found %d discrepancies requiring attention.\n", len(result.Discrepancies))
	}

	b.WriteString("\n## Edge Cases Tested\n\n")
	b.WriteString("| Test | Count | Status |\n|------|-------|--------|\n")
	for _, finding := range result.EdgeCases {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", finding.Check, finding.Count, finding.Status)
	}

	if len(result.Duplicates) > 0 {
		b.WriteString("\n## Duplicate Keys\n\n")
		b.WriteString("| Key | Count | Resolution |\n|-----|-------|------------|\n")
		for _, dup := range result.Duplicates {
			fmt.Fprintf(&b, "| %s | %d | %s |\n", dup.Key, dup.Count, dup.Resolved)
		}
	}

	if critical := result.Critical(); len(critical) > 0 {
		b.WriteString("\n## CRITICAL Discrepancies\n\n")
		b.WriteString("| Market | Brand | Field | Expected | Actual | Diff | Hint |\n")
		b.WriteString("|--------|-------|-------|----------|--------|------|------|\n")
		for _, d := range critical {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				d.Market, d.Brand, d.Field,
				formatValue(d.Expected), formatValue(d.Actual),
				formatDiff(d.Difference), d.Hint)
		}
	}

	if warnings := result.Warnings(); len(warnings) > 0 {
		limit := w.WarningLimit
		if limit <= 0 {
			limit = WarningCap
		}
		b.WriteString("\n## Warnings\n\n")
		b.WriteString("| Market | Brand | Field | Expected | Actual | Diff |\n")
		b.WriteString("|--------|-------|-------|----------|--------|------|\n")
		shown := warnings
		if len(shown) > limit {
			shown = shown[:limit]
		}
		for _, d := range shown {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				d.Market, d.Brand, d.Field,
				formatValue(d.Expected), formatValue(d.Actual),
				formatDiff(d.Difference))
		}
		if len(warnings) > limit {
			fmt.Fprintf(&b, "*... and %d more warnings*\n", len(warnings)-limit)
		}
	}

	if byMarket := result.ByMarket(); len(byMarket) > 0 {
		b.WriteString("\n## Discrepancies by Market\n\n")
		for _, mc := range byMarket {
			fmt.Fprintf(&b, "- **%s**: %d discrepancies\n", mc.Market, mc.Count)
		}
	}

	return b.String()
}
