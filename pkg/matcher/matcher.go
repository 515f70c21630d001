// Package matcher partitions two keyed record sets into the keys they share
// and the keys unique to each side.
package matcher

import (
	"sort"

	"github.com/agentstation/crosscheck/pkg/records"
)

// Match is the partition of the keys of two record sets. The three slices
// are pairwise disjoint and their union is the union of both sets' keys.
type Match struct {
	// Common holds keys present in both sets.
	Common []records.Key
	// SourceOnly holds keys present only in the source-of-truth set.
	SourceOnly []records.Key
	// TargetOnly holds keys present only in the target set.
	TargetOnly []records.Key
}

// Partition splits the keys of the source-of-truth and target sets. Output
// slices are sorted for deterministic reports.
func Partition(source, target *records.Set) Match {
	var m Match
	for _, key := range source.Keys() {
		if target.Has(key) {
			m.Common = append(m.Common, key)
		} else {
			m.SourceOnly = append(m.SourceOnly, key)
		}
	}
	for _, key := range target.Keys() {
		if !source.Has(key) {
			m.TargetOnly = append(m.TargetOnly, key)
		}
	}
	sortKeys(m.Common)
	sortKeys(m.SourceOnly)
	sortKeys(m.TargetOnly)
	return m
}

// Total returns the number of distinct keys across both sets.
func (m Match) Total() int {
	return len(m.Common) + len(m.SourceOnly) + len(m.TargetOnly)
}

func sortKeys(keys []records.Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
