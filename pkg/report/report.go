// Package report renders a validation result as the two run artifacts (a
// JSON document and a markdown report) and as a console summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/agentstation/crosscheck/pkg/errors"
	"github.com/agentstation/crosscheck/pkg/validate"
)

// WarningCap is the default cap on warnings listed in the markdown report.
const WarningCap = 50

// Writer renders and writes report artifacts for one validation run.
type Writer struct {
	// WarningLimit caps the warnings table in the markdown report.
	// Zero means WarningCap.
	WarningLimit int
}

// JSON renders the machine-readable report document.
func (w *Writer) JSON(result *validate.Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding validation report")
	}
	return append(data, '\n'), nil
}

// WriteFiles writes validation_report.json and validation_report.md into
// dir, creating it if needed. It returns the written paths.
func (w *Writer) WriteFiles(result *validate.Result, dir string) (jsonPath, mdPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", errors.NewIOError("creating", dir, err)
	}

	jsonPath = filepath.Join(dir, "validation_report.json")
	data, err := w.JSON(result)
	if err != nil {
		return "", "", err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", errors.NewIOError("writing", jsonPath, err)
	}

	mdPath = filepath.Join(dir, "validation_report.md")
	if err := os.WriteFile(mdPath, []byte(w.Markdown(result)), 0o644); err != nil {
		return "", "", errors.NewIOError("writing", mdPath, err)
	}

	return jsonPath, mdPath, nil
}

// formatValue renders a raw report value for tables. Absent values render
// as an empty cell.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// formatDiff renders an optional numeric difference.
func formatDiff(diff *float64) string {
	if diff == nil {
		return ""
	}
	return strconv.FormatFloat(*diff, 'f', -1, 64)
}
