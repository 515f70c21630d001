package records

// Record is one extracted row: a market/category/brand identity, a rollup
// flag, and the raw field values keyed by schema field name. Records are
// produced by the extractors and only read by the engine.
type Record struct {
	// Market is the geographic market (e.g. "KSA").
	Market string
	// Category is the product category (e.g. "Oral Health Care").
	Category string
	// Brand is the brand or entity name.
	Brand string
	// IsTotal marks rollup rows, which are excluded from reconciliation.
	IsTotal bool
	// Row is the source row number when the extractor knows it, 0 otherwise.
	Row int
	// Fields holds the raw values by field name.
	Fields map[string]Value
}

// Field returns the raw value for a field name, or the absent value when the
// record carries no entry for it.
func (r Record) Field(name string) Value {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	return Absent()
}

// Key returns the record's normalized matching key.
func (r Record) Key() Key {
	return NormalizeKey(r.Market, r.Category, r.Brand)
}
