// Package records defines the record model shared by the extractors and the
// reconciliation engine: tagged raw values, record identity, key
// normalization, and keyed record sets.
package records

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the shape of a raw cell value.
type Kind int

const (
	// KindAbsent marks a value that was not present in the source document.
	KindAbsent Kind = iota
	// KindNumber is a numeric value.
	KindNumber
	// KindText is a non-numeric string value.
	KindText
	// KindPlaceholder is the dash marker documents use for "no value".
	KindPlaceholder
	// KindFormula is raw formula text that was never computed (e.g. "=B2*C2").
	KindFormula
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindPlaceholder:
		return "placeholder"
	case KindFormula:
		return "formula"
	default:
		return "absent"
	}
}

// Value is a tagged raw field value. Extractors produce numbers, strings,
// placeholders, and occasionally uncomputed formula text; the comparator
// dispatches on the tag instead of probing dynamic types.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Absent returns the absent value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// String classifies a raw string into a placeholder, formula text, or plain
// text value. A string that parses as a number is kept as text: the document
// stored it as text, and the comparator's coercion decides what to do with it.
func String(s string) Value {
	trimmed := strings.TrimSpace(s)
	switch {
	case trimmed == "-":
		return Value{kind: KindPlaceholder, text: s}
	case strings.HasPrefix(trimmed, "="):
		return Value{kind: KindFormula, text: s}
	default:
		return Value{kind: KindText, text: s}
	}
}

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Float returns the numeric form of the value. Absent and placeholder values
// coerce to zero; text coerces when it parses as a number. The second return
// reports whether a numeric form exists.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindAbsent, KindPlaceholder:
		return 0, true
	case KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Text returns the string form of the value for display and for the string
// equality fallback.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindAbsent:
		return ""
	default:
		return v.text
	}
}

// Raw returns the value in its natural Go form for serialized reports:
// float64 for numbers, string for text-like kinds, nil for absent.
func (v Value) Raw() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindAbsent:
		return nil
	default:
		return v.text
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindAbsent {
		return "<absent>"
	}
	return v.Text()
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

// UnmarshalJSON implements json.Unmarshaler. Numbers, strings, booleans, and
// null all have a defined mapping; anything else is an input error.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Absent()
	case float64:
		*v = Number(t)
	case string:
		*v = String(t)
	case bool:
		// Extractors occasionally emit booleans for checkbox cells.
		if t {
			*v = Number(1)
		} else {
			*v = Number(0)
		}
	default:
		return fmt.Errorf("unsupported value type %T", raw)
	}
	return nil
}
