package records

import "sort"

// DuplicatePolicy controls what happens when two records in one collection
// normalize to the same key.
type DuplicatePolicy string

const (
	// KeepLast keeps the later record, matching the historical overwrite
	// behavior of the extractors.
	KeepLast DuplicatePolicy = "keep-last"
	// KeepFirst keeps the earlier record.
	KeepFirst DuplicatePolicy = "keep-first"
	// Reject drops every record whose key collided.
	Reject DuplicatePolicy = "reject"
)

// Valid reports whether the policy is one of the defined values.
func (p DuplicatePolicy) Valid() bool {
	switch p {
	case KeepLast, KeepFirst, Reject:
		return true
	}
	return false
}

// Duplicate is a data-quality entry describing a key collision inside one
// collection. Collisions are always reported, whichever policy resolved them.
type Duplicate struct {
	Key      Key             `json:"key"`
	Count    int             `json:"count"`
	Resolved DuplicatePolicy `json:"resolved"`
}

// Set is a keyed record collection built from extractor output. Rollup rows
// are excluded at construction time and key collisions are resolved by an
// explicit policy.
type Set struct {
	byKey      map[Key]Record
	duplicates []Duplicate
}

// NewSet builds a Set from extracted records. Records with IsTotal set are
// skipped. Collisions are resolved per policy; an invalid policy falls back
// to KeepLast.
func NewSet(recs []Record, policy DuplicatePolicy) *Set {
	if !policy.Valid() {
		policy = KeepLast
	}

	byKey := make(map[Key]Record, len(recs))
	seen := make(map[Key]int)
	for _, rec := range recs {
		if rec.IsTotal {
			continue
		}
		key := rec.Key()
		seen[key]++
		if seen[key] > 1 && policy == KeepFirst {
			continue
		}
		byKey[key] = rec
	}

	var dups []Duplicate
	for key, count := range seen {
		if count < 2 {
			continue
		}
		dups = append(dups, Duplicate{Key: key, Count: count, Resolved: policy})
		if policy == Reject {
			delete(byKey, key)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Key.Less(dups[j].Key) })

	return &Set{byKey: byKey, duplicates: dups}
}

// Len returns the number of keyed records in the set.
func (s *Set) Len() int { return len(s.byKey) }

// Get returns the record for a key.
func (s *Set) Get(key Key) (Record, bool) {
	rec, ok := s.byKey[key]
	return rec, ok
}

// Keys returns the set's keys in sorted order.
func (s *Set) Keys() []Key {
	keys := make([]Key, 0, len(s.byKey))
	for key := range s.byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Has reports whether the set contains a key.
func (s *Set) Has(key Key) bool {
	_, ok := s.byKey[key]
	return ok
}

// Duplicates returns the key collisions observed while building the set.
func (s *Set) Duplicates() []Duplicate { return s.duplicates }
