// Package schema defines the static table of comparable fields: each field's
// value type, display label, and structural role. The schema drives both the
// comparator and the report layout.
package schema

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// FieldType declares how a field's values are compared.
type FieldType string

const (
	// Currency values compare under an absolute currency-unit tolerance.
	Currency FieldType = "currency"
	// Percentage values are stored as 0-1 fractions and compare under an
	// absolute fraction tolerance.
	Percentage FieldType = "percentage"
	// Integer values must be equal after truncation to whole numbers.
	Integer FieldType = "integer"
)

// Valid reports whether the field type is one of the defined values.
func (t FieldType) Valid() bool {
	switch t {
	case Currency, Percentage, Integer:
		return true
	}
	return false
}

// Role tags fields with the structural meaning the edge-case auditor keys on.
type Role string

const (
	// RoleNone is the default role.
	RoleNone Role = ""
	// RoleGap marks funding-gap fields checked for zero and negative values.
	RoleGap Role = "gap"
	// RoleChannel marks media-allocation fields checked for missing and
	// single-channel allocations.
	RoleChannel Role = "channel"
	// RolePrimaryChannel marks the lead allocation channel.
	RolePrimaryChannel Role = "primary_channel"
	// RoleCount marks count fields checked for zeroes.
	RoleCount Role = "count"
)

// Field is one comparable field.
type Field struct {
	Name  string    `yaml:"name"`
	Type  FieldType `yaml:"type"`
	Label string    `yaml:"label"`
	Role  Role      `yaml:"role,omitempty"`
}

// Schema is an ordered list of comparable fields.
type Schema struct {
	fields []Field
	byName map[string]int
}

// New builds a schema from an ordered field list.
func New(fields []Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema field with empty name")
		}
		if !f.Type.Valid() {
			return nil, fmt.Errorf("schema field %q: unknown type %q", f.Name, f.Type)
		}
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("schema field %q declared twice", f.Name)
		}
		if f.Label == "" {
			f.Label = f.Name
		}
		s.byName[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// LoadFile reads a schema from a YAML file with a top-level `fields` list.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	var doc struct {
		Fields []Field `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schema %s declares no fields", path)
	}
	return New(doc.Fields)
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field { return s.fields }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Lookup returns the field with the given name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// WithRole returns the fields carrying a role, in declaration order.
func (s *Schema) WithRole(role Role) []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}
