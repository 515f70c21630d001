package records

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const artifactJSON = `{
  "source": "budget_plan.pptx",
  "records": [
    {
      "market": "KSA",
      "category": "Oral Health Care",
      "brand": "Sensodyne",
      "excel_row": 12,
      "budget_2026": 150000,
      "gap_pct": 0.12,
      "tv": "-",
      "digital": null
    },
    {
      "market": "KSA",
      "category": "Oral Health Care",
      "brand": "TOTAL",
      "is_total": true,
      "budget_2026": 450000
    }
  ]
}`

func TestLoad(t *testing.T) {
	coll, err := Load(strings.NewReader(artifactJSON))
	require.NoError(t, err)

	assert.Equal(t, "budget_plan.pptx", coll.Source)
	require.Len(t, coll.Records, 2)

	rec := coll.Records[0]
	assert.Equal(t, "KSA", rec.Market)
	assert.Equal(t, "Oral Health Care", rec.Category)
	assert.Equal(t, "Sensodyne", rec.Brand)
	assert.Equal(t, 12, rec.Row)
	assert.False(t, rec.IsTotal)

	n, ok := rec.Field("budget_2026").Float()
	require.True(t, ok)
	assert.Equal(t, 150000.0, n)
	assert.Equal(t, KindPlaceholder, rec.Field("tv").Kind())
	assert.Equal(t, KindAbsent, rec.Field("digital").Kind())

	assert.True(t, coll.Records[1].IsTotal, "rollup flag survives parsing")
}

func TestLoadRejectsMalformedArtifact(t *testing.T) {
	_, err := Load(strings.NewReader(`{"records": [{"budget_2026": {"nested": 1}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0")
}

func TestLoadFileDefaultsSourceToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"records": []}`), 0o644))

	coll, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, coll.Source, "an unlabeled artifact is labeled by its path")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
