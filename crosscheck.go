// Package crosscheck reconciles two extracted record collections describing
// the same business entities: a source of truth and a target to be
// corrected. Records are matched by normalized key, every schema field is
// compared under type-aware tolerances, and each discrepancy is classified
// with a severity and a likely root cause.
//
// The reconciliation engine lives under pkg/; this package is the
// convenience entry point:
//
//	result, err := crosscheck.Validate("plan.json", "tracker.json")
//	if err != nil {
//		return err
//	}
//	if result.Status == validate.Fail {
//		// inspect result.Discrepancies
//	}
package crosscheck

import (
	"io"

	"github.com/agentstation/crosscheck/pkg/diff"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/validate"
)

// Validate loads two extractor artifacts and runs a full validation of the
// target against the source of truth.
func Validate(sourcePath, targetPath string, opts ...validate.Option) (*validate.Result, error) {
	source, err := records.LoadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	target, err := records.LoadFile(targetPath)
	if err != nil {
		return nil, err
	}
	return validate.New(opts...).Run(source, target), nil
}

// ValidateReaders runs a full validation over artifacts read from streams
// instead of files.
func ValidateReaders(source, target io.Reader, opts ...validate.Option) (*validate.Result, error) {
	src, err := records.Load(source)
	if err != nil {
		return nil, err
	}
	tgt, err := records.Load(target)
	if err != nil {
		return nil, err
	}
	return validate.New(opts...).Run(src, tgt), nil
}

// Diff loads two extractor artifacts and builds the record-grouped changeset
// between them, without verdict semantics.
func Diff(sourcePath, targetPath string) (*diff.Report, error) {
	source, err := records.LoadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	target, err := records.LoadFile(targetPath)
	if err != nil {
		return nil, err
	}
	return diff.New(nil, nil).Report(source, target), nil
}
