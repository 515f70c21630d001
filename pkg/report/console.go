package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/agentstation/crosscheck/pkg/validate"
)

// Console renders a terminal summary: the counter table, the edge-case
// table, and the critical discrepancies.
func (w *Writer) Console(out io.Writer, result *validate.Result) error {
	s := result.Summary

	summary := tablewriter.NewTable(out)
	summary.Header("Metric", "Value")
	rows := [][]string{
		{"Records Checked", strconv.Itoa(s.RecordsChecked)},
		{"Fields Checked", strconv.Itoa(s.FieldsChecked)},
		{"Exact Matches", strconv.Itoa(s.ExactMatches)},
		{"Within Tolerance", strconv.Itoa(s.WithinTolerance)},
		{"Mismatches", strconv.Itoa(s.Mismatches)},
		{"Missing in Target", strconv.Itoa(s.MissingInTarget)},
		{"Missing in Source", strconv.Itoa(s.MissingInSource)},
		{"Pass Rate", fmt.Sprintf("%.1f%%", s.PassRate)},
	}
	for _, row := range rows {
		if err := summary.Append(row[0], row[1]); err != nil {
			return err
		}
	}
	if err := summary.Render(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nStatus: %s\n", result.Status)

	if len(result.EdgeCases) > 0 {
		fmt.Fprintln(out, "\nEdge cases:")
		edge := tablewriter.NewTable(out)
		edge.Header("Test", "Count", "Status")
		for _, finding := range result.EdgeCases {
			if err := edge.Append(finding.Check, strconv.Itoa(finding.Count), string(finding.Status)); err != nil {
				return err
			}
		}
		if err := edge.Render(); err != nil {
			return err
		}
	}

	if critical := result.Critical(); len(critical) > 0 {
		fmt.Fprintln(out, "\nCritical discrepancies:")
		table := tablewriter.NewTable(out)
		table.Header("Market", "Brand", "Field", "Expected", "Actual", "Hint")
		for _, d := range critical {
			err := table.Append(d.Market, d.Brand, d.Field,
				formatValue(d.Expected), formatValue(d.Actual), d.Hint)
			if err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	return nil
}
