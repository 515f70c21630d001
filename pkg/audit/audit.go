// Package audit sweeps the source-of-truth collection for structurally
// notable conditions. Findings are informational: they enrich the report but
// never move the verdict.
package audit

import (
	"fmt"

	"github.com/agentstation/crosscheck/pkg/matcher"
	"github.com/agentstation/crosscheck/pkg/records"
	"github.com/agentstation/crosscheck/pkg/schema"
)

// Status tags how a finding should be read.
type Status string

const (
	// Tested means the condition was swept and counted.
	Tested Status = "TESTED"
	// OK means the condition was swept and nothing was found.
	OK Status = "OK"
	// Flagged means the condition deserves review.
	Flagged Status = "FLAGGED"
	// Critical means the condition represents missing target data.
	Critical Status = "CRITICAL"
)

// sampleLimit caps the keys quoted per finding.
const sampleLimit = 3

// Finding is one audited condition: a name, how many records hit it, and a
// small sample of affected keys.
type Finding struct {
	Check   string        `json:"test"`
	Count   int           `json:"count"`
	Samples []records.Key `json:"samples"`
	Status  Status        `json:"status"`
}

// Auditor scans record sets for the schema's structural edge cases.
type Auditor struct {
	schema *schema.Schema
}

// New returns an auditor over the given schema.
func New(s *schema.Schema) *Auditor {
	return &Auditor{schema: s}
}

// Scan sweeps the source-of-truth set and the matcher's set differences.
// The returned findings are ordered: value conditions first, then the two
// set-difference checks.
func (a *Auditor) Scan(source *records.Set, match matcher.Match) []Finding {
	findings := []Finding{
		a.zeroGaps(source),
		a.missingPrimaryChannel(source),
		a.singleChannel(source),
		a.zeroCounts(source),
		a.negativeGaps(source),
	}

	targetOnly := Finding{Check: "records in target only", Count: len(match.TargetOnly), Status: OK}
	if len(match.TargetOnly) > 0 {
		targetOnly.Status = Flagged
		targetOnly.Samples = sample(match.TargetOnly)
	}
	findings = append(findings, targetOnly)

	sourceOnly := Finding{Check: "records in source only", Count: len(match.SourceOnly), Status: OK}
	if len(match.SourceOnly) > 0 {
		sourceOnly.Status = Critical
		sourceOnly.Samples = sample(match.SourceOnly)
	}
	findings = append(findings, sourceOnly)

	return findings
}

// zeroGaps finds records whose gap fields hold zero.
func (a *Auditor) zeroGaps(source *records.Set) Finding {
	return a.sweep("zero gap values", source, a.schema.WithRole(schema.RoleGap), func(v records.Value) bool {
		n, ok := v.Float()
		return ok && !v.IsAbsent() && v.Kind() != records.KindPlaceholder && n == 0
	})
}

// missingPrimaryChannel finds records with no allocation on the primary
// channel (zero, absent, or the dash placeholder).
func (a *Auditor) missingPrimaryChannel(source *records.Set) Finding {
	fields := a.schema.WithRole(schema.RolePrimaryChannel)
	check := "missing primary channel allocation"
	if len(fields) == 1 {
		check = fmt.Sprintf("missing %s allocation", fields[0].Label)
	}
	return a.sweep(check, source, fields, func(v records.Value) bool {
		n, ok := v.Float()
		return !ok || n == 0
	})
}

// singleChannel finds records allocating 100% to a single channel.
func (a *Auditor) singleChannel(source *records.Set) Finding {
	fields := a.schema.WithRole(schema.RolePrimaryChannel)
	fields = append(fields, a.schema.WithRole(schema.RoleChannel)...)
	return a.sweep("100% single media channel", source, fields, func(v records.Value) bool {
		n, ok := v.Float()
		return ok && n == 1.0
	})
}

// zeroCounts finds records with a zero on any count field.
func (a *Auditor) zeroCounts(source *records.Set) Finding {
	return a.sweep("zero campaign count", source, a.schema.WithRole(schema.RoleCount), func(v records.Value) bool {
		n, ok := v.Float()
		return ok && v.Kind() == records.KindNumber && n == 0
	})
}

// negativeGaps finds records with a negative value on a gap field.
func (a *Auditor) negativeGaps(source *records.Set) Finding {
	return a.sweep("negative gap (underfunded)", source, a.schema.WithRole(schema.RoleGap), func(v records.Value) bool {
		n, ok := v.Float()
		return ok && n < 0
	})
}

// sweep counts records where any of the given fields satisfies pred.
func (a *Auditor) sweep(check string, source *records.Set, fields []schema.Field, pred func(records.Value) bool) Finding {
	var hits []records.Key
	for _, key := range source.Keys() {
		rec, _ := source.Get(key)
		for _, f := range fields {
			if pred(rec.Field(f.Name)) {
				hits = append(hits, key)
				break
			}
		}
	}
	return Finding{Check: check, Count: len(hits), Samples: sample(hits), Status: Tested}
}

func sample(keys []records.Key) []records.Key {
	if len(keys) <= sampleLimit {
		return keys
	}
	return keys[:sampleLimit]
}
