// Package diff implements the diff command: a record-grouped changeset
// between the source-of-truth and target collections, without verdict
// semantics.
package diff

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/crosscheck/cmd/application"
	"github.com/agentstation/crosscheck/internal/cmd/output"
	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/diff"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// NewCommand creates the diff command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		sourcePath string
		targetPath string
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show every field difference between two collections",
		Long: `Diff the target collection against the source-of-truth collection and
print the changeset grouped by record: field differences for common records,
plus the records present on only one side.

The output format follows --format (table on a terminal, JSON otherwise).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, sourcePath, targetPath)
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "source-of-truth extractor artifact (required)")
	cmd.Flags().StringVar(&targetPath, "target", "", "target extractor artifact (required)")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, sourcePath, targetPath string) error {
	source, err := records.LoadFile(sourcePath)
	if err != nil {
		return err
	}
	target, err := records.LoadFile(targetPath)
	if err != nil {
		return err
	}

	s := schema.Default()
	if app.SchemaFile() != "" {
		s, err = schema.LoadFile(app.SchemaFile())
		if err != nil {
			return err
		}
	}

	differ := diff.New(s, compare.New(app.Tolerances()))
	report := differ.Report(source, target)

	app.Logger().Info().
		Int("records_with_discrepancies", report.Summary.RecordsWithDiscrepancies).
		Int("field_discrepancies", report.Summary.TotalFieldDiscrepancies).
		Int("source_only", report.Summary.SourceOnlyRecords).
		Int("target_only", report.Summary.TargetOnlyRecords).
		Msg("Diff complete")

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	format = output.DetectFormat(string(format))

	if format == output.FormatTable {
		return renderTable(cmd, report)
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), report)
}

// renderTable prints the changeset as one row per field difference.
func renderTable(cmd *cobra.Command, report *diff.Report) error {
	data := output.Data{
		Headers: []string{"Market", "Category", "Brand", "Field", "Source", "Target", "Diff", "Diff %"},
	}
	for _, rd := range report.Discrepancies {
		for _, fd := range rd.Differences {
			data.Rows = append(data.Rows, []string{
				rd.Market, rd.Category, rd.Brand, fd.Label,
				formatAny(fd.SourceValue), formatAny(fd.TargetValue),
				formatFloat(fd.Difference), formatFloat(fd.DiffPercent),
			})
		}
	}

	out := cmd.OutOrStdout()
	if err := (&output.TableFormatter{}).Format(out, data); err != nil {
		return err
	}

	s := report.Summary
	fmt.Fprintf(out, "\n%d matching records, %d with discrepancies (%d fields), %d source-only, %d target-only\n",
		s.MatchingRecords, s.RecordsWithDiscrepancies, s.TotalFieldDiscrepancies,
		s.SourceOnlyRecords, s.TargetOnlyRecords)
	return nil
}

func formatAny(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}
