// Package validate wires the matcher, classifier, and auditor into the
// reconciliation engine and aggregates their output into one immutable
// result.
package validate

import (
	"sort"
	"sync"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/agentstation/crosscheck/pkg/audit"
	"github.com/agentstation/crosscheck/pkg/classify"
	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/logging"
	"github.com/agentstation/crosscheck/pkg/matcher"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// Runner runs full validations of a target collection against a
// source-of-truth collection. A Runner is safe for concurrent use; each Run
// owns its accumulators.
type Runner struct {
	schema     *schema.Schema
	classifier *classify.Classifier
	auditor    *audit.Auditor
	duplicates records.DuplicatePolicy
	workers    int
	logger     zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithTolerances overrides the run tolerances.
func WithTolerances(tol compare.Tolerances) Option {
	return func(r *Runner) {
		r.classifier = classify.New(r.schema, compare.New(tol))
	}
}

// WithSchema replaces the default field schema.
func WithSchema(s *schema.Schema) Option {
	return func(r *Runner) {
		r.schema = s
	}
}

// WithDuplicatePolicy sets how key collisions inside one collection resolve.
func WithDuplicatePolicy(p records.DuplicatePolicy) Option {
	return func(r *Runner) {
		r.duplicates = p
	}
}

// WithWorkers shards per-record classification across n goroutines. Results
// are identical for any worker count; the default is sequential.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner. Options apply in order, so WithSchema should precede
// WithTolerances when both are given.
func New(opts ...Option) *Runner {
	r := &Runner{
		schema:     schema.Default(),
		duplicates: records.KeepLast,
		workers:    1,
		logger:     *logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.classifier == nil {
		r.classifier = classify.New(r.schema, compare.New(compare.DefaultTolerances()))
	}
	if r.auditor == nil {
		r.auditor = audit.New(r.schema)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	return r
}

// Run validates the target collection against the source-of-truth
// collection. It always completes: every anomaly is represented as data in
// the result, never as an error.
func (r *Runner) Run(source, target *records.Collection) *Result {
	sourceSet := records.NewSet(source.Records, r.duplicates)
	targetSet := records.NewSet(target.Records, r.duplicates)

	r.logger.Info().
		Int("source_records", sourceSet.Len()).
		Int("target_records", targetSet.Len()).
		Msg("Loaded record sets")

	match := matcher.Partition(sourceSet, targetSet)

	result := &Result{
		Timestamp:  utc.Now(),
		SourceFile: source.Source,
		TargetFile: target.Source,
	}

	// Missing source-of-truth records come first: one critical discrepancy
	// each, with the sentinel field label.
	for _, key := range match.SourceOnly {
		rec, _ := sourceSet.Get(key)
		result.Discrepancies = append(result.Discrepancies, classify.MissingRecord(rec))
	}

	discrepancies, tally := r.classifyCommon(match.Common, sourceSet, targetSet)
	result.Discrepancies = append(result.Discrepancies, discrepancies...)

	result.Summary = Summary{
		RecordsChecked:  len(match.Common),
		FieldsChecked:   tally.Fields(),
		ExactMatches:    tally.Exact,
		WithinTolerance: tally.WithinTolerance,
		Mismatches:      tally.Mismatches,
		MissingInTarget: len(match.SourceOnly),
		MissingInSource: len(match.TargetOnly),
		PassRate:        passRate(tally),
	}
	result.Status = result.Summary.Verdict()

	result.Duplicates = append(result.Duplicates, sourceSet.Duplicates()...)
	result.Duplicates = append(result.Duplicates, targetSet.Duplicates()...)

	// The auditor's global set-difference pass runs after classification.
	result.EdgeCases = r.auditor.Scan(sourceSet, match)

	r.logger.Info().
		Int("fields_checked", result.Summary.FieldsChecked).
		Int("mismatches", result.Summary.Mismatches).
		Float64("pass_rate", result.Summary.PassRate).
		Str("status", string(result.Status)).
		Msg("Validation complete")

	return result
}

// shard holds one worker's private accumulator. Shards own disjoint key
// ranges and are merged once, sequentially, after all workers finish.
type shard struct {
	discrepancies []classify.Discrepancy
	tally         classify.Tally
}

// classifyCommon classifies every common record, sharded across the
// configured worker count. Key order is preserved in the output regardless
// of worker count.
func (r *Runner) classifyCommon(common []records.Key, sourceSet, targetSet *records.Set) ([]classify.Discrepancy, classify.Tally) {
	workers := r.workers
	if workers > len(common) {
		workers = len(common)
	}
	if workers <= 1 {
		return r.classifyRange(common, sourceSet, targetSet)
	}

	shards := make([]shard, workers)
	chunk := (len(common) + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := min(start+chunk, len(common))
		wg.Add(1)
		go func(s *shard, keys []records.Key) {
			defer wg.Done()
			s.discrepancies, s.tally = r.classifyRange(keys, sourceSet, targetSet)
		}(&shards[i], common[start:end])
	}
	wg.Wait()

	var discrepancies []classify.Discrepancy
	var tally classify.Tally
	for _, s := range shards {
		discrepancies = append(discrepancies, s.discrepancies...)
		tally.Add(s.tally)
	}
	return discrepancies, tally
}

func (r *Runner) classifyRange(keys []records.Key, sourceSet, targetSet *records.Set) ([]classify.Discrepancy, classify.Tally) {
	var discrepancies []classify.Discrepancy
	var tally classify.Tally
	for _, key := range keys {
		expected, _ := sourceSet.Get(key)
		actual, _ := targetSet.Get(key)
		recDiscrepancies, recTally := r.classifier.Record(actual, expected)
		discrepancies = append(discrepancies, recDiscrepancies...)
		tally.Add(recTally)
	}
	return discrepancies, tally
}

func sortMarketCounts(counts []MarketCount) {
	sort.Slice(counts, func(i, j int) bool { return counts[i].Market < counts[j].Market })
}
