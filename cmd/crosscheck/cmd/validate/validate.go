// Package validate implements the validate command: a full reconciliation
// run of a target collection against the source of truth, with report
// artifacts and an exit status.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/crosscheck/cmd/application"
	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/report"
	"github.com/agentstation/crosscheck/pkg/schema"
	"github.com/agentstation/crosscheck/pkg/validate"
)

// ErrValidationFailed is returned when the run verdict is FAIL, so the
// process exits non-zero for CI gates.
var ErrValidationFailed = fmt.Errorf("validation failed")

// options holds the per-run flag values, seeded from the application
// configuration so flags, env, and config file agree.
type options struct {
	sourcePath          string
	targetPath          string
	outDir              string
	schemaFile          string
	toleranceCurrency   float64
	tolerancePercentage float64
	workers             int
	duplicates          string
}

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a target collection against the source of truth",
		Long: `Validate every field of every matched record in the target collection
against the source-of-truth collection.

Both inputs are extractor JSON artifacts. The command writes
validation_report.json and validation_report.md into the output directory,
prints a summary, and exits 1 when the verdict is FAIL.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, opts)
		},
	}

	tol := app.Tolerances()
	cmd.Flags().StringVar(&opts.sourcePath, "source", "", "source-of-truth extractor artifact (required)")
	cmd.Flags().StringVar(&opts.targetPath, "target", "", "target extractor artifact (required)")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", app.OutDir(), "report output directory")
	cmd.Flags().StringVar(&opts.schemaFile, "schema", app.SchemaFile(), "field schema YAML (default: built-in budget schema)")
	cmd.Flags().Float64Var(&opts.toleranceCurrency, "tolerance-currency", tol.Currency, "absolute currency tolerance")
	cmd.Flags().Float64Var(&opts.tolerancePercentage, "tolerance-percentage", tol.Percentage, "absolute percentage-fraction tolerance")
	cmd.Flags().IntVar(&opts.workers, "workers", app.Workers(), "classification worker count")
	cmd.Flags().StringVar(&opts.duplicates, "duplicates", string(app.DuplicatePolicy()), "duplicate key policy: keep-last, keep-first, reject")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, opts *options) error {
	logger := app.Logger()

	policy := records.DuplicatePolicy(opts.duplicates)
	if !policy.Valid() {
		return fmt.Errorf("invalid duplicate policy %q", opts.duplicates)
	}

	source, err := records.LoadFile(opts.sourcePath)
	if err != nil {
		return err
	}
	target, err := records.LoadFile(opts.targetPath)
	if err != nil {
		return err
	}

	runOpts := []validate.Option{
		validate.WithTolerances(compare.Tolerances{
			Currency:   opts.toleranceCurrency,
			Percentage: opts.tolerancePercentage,
		}),
		validate.WithDuplicatePolicy(policy),
		validate.WithWorkers(opts.workers),
		validate.WithLogger(*logger),
	}
	if opts.schemaFile != "" {
		s, err := schema.LoadFile(opts.schemaFile)
		if err != nil {
			return err
		}
		// Schema must precede tolerances so the classifier sees both.
		runOpts = append([]validate.Option{validate.WithSchema(s)}, runOpts...)
	}

	runner := validate.New(runOpts...)
	result := runner.Run(source, target)

	writer := &report.Writer{WarningLimit: app.WarningLimit()}
	jsonPath, mdPath, err := writer.WriteFiles(result, opts.outDir)
	if err != nil {
		return err
	}
	logger.Info().Str("json", jsonPath).Str("markdown", mdPath).Msg("Reports written")

	if err := writer.Console(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if result.Status == validate.Fail {
		return ErrValidationFailed
	}
	return nil
}
