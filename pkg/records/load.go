package records

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Collection is a parsed extractor artifact: a labeled set of records from
// one source document. The extractors own the artifact format; this loader
// is the boundary contract and performs no layout inference.
type Collection struct {
	// Source labels the originating document (e.g. a file path).
	Source string
	// Records holds the extracted rows in document order.
	Records []Record
}

// Reserved top-level keys in a record object. Everything else is a field.
const (
	keyMarket   = "market"
	keyCategory = "category"
	keyBrand    = "brand"
	keyIsTotal  = "is_total"
	keyRow      = "excel_row"
)

type rawArtifact struct {
	Source  string                       `json:"source"`
	Records []map[string]json.RawMessage `json:"records"`
}

// Load parses an extractor JSON artifact from r.
func Load(r io.Reader) (*Collection, error) {
	var raw rawArtifact
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding extractor artifact: %w", err)
	}

	coll := &Collection{
		Source:  raw.Source,
		Records: make([]Record, 0, len(raw.Records)),
	}
	for i, obj := range raw.Records {
		rec, err := parseRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		coll.Records = append(coll.Records, rec)
	}
	return coll, nil
}

// LoadFile parses an extractor JSON artifact from disk.
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	coll, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if coll.Source == "" {
		coll.Source = path
	}
	return coll, nil
}

func parseRecord(obj map[string]json.RawMessage) (Record, error) {
	rec := Record{Fields: make(map[string]Value, len(obj))}

	for name, data := range obj {
		switch name {
		case keyMarket:
			if err := json.Unmarshal(data, &rec.Market); err != nil {
				return rec, fmt.Errorf("field %q: %w", name, err)
			}
		case keyCategory:
			if err := json.Unmarshal(data, &rec.Category); err != nil {
				return rec, fmt.Errorf("field %q: %w", name, err)
			}
		case keyBrand:
			if err := json.Unmarshal(data, &rec.Brand); err != nil {
				return rec, fmt.Errorf("field %q: %w", name, err)
			}
		case keyIsTotal:
			if err := json.Unmarshal(data, &rec.IsTotal); err != nil {
				return rec, fmt.Errorf("field %q: %w", name, err)
			}
		case keyRow:
			// The row hint is optional and may be null.
			var row *int
			if err := json.Unmarshal(data, &row); err != nil {
				return rec, fmt.Errorf("field %q: %w", name, err)
			}
			if row != nil {
				rec.Row = *row
			}
		default:
			var v Value
			if err := v.UnmarshalJSON(data); err != nil {
				return rec, fmt.Errorf("field %q: %w", name, err)
			}
			rec.Fields[name] = v
		}
	}
	return rec, nil
}
