package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, "format %q", s)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
	assert.Equal(t, FormatTable, DetectFormat("Table"))
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&JSONFormatter{Indent: "  "}).Format(&buf, map[string]int{"mismatches": 3})
	require.NoError(t, err)
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), `"mismatches": 3`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&YAMLFormatter{}).Format(&buf, map[string]string{"status": "PASS"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "status: PASS")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := Data{
		Headers: []string{"Market", "Count"},
		Rows:    [][]string{{"KSA", "3"}, {"UAE", "1"}},
	}
	require.NoError(t, (&TableFormatter{}).Format(&buf, data))
	assert.Contains(t, buf.String(), "KSA")

	// Non-tabular data falls back to JSON.
	buf.Reset()
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"n": 1}))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "Pass Rate", Header("pass_rate"))
	assert.Equal(t, "Missing In Target", Header("missing_in_target"))
}
