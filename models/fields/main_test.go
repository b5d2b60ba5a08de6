package fields

import (
	"os"
	"path/filepath"
	"testing"

	styleTag "github.com/hmartiniano/variant-catalog/models/constants/style-tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHighlightRules(t *testing.T) {
	rules := Default().Display.AcmgHighlighting

	for value, expected := range map[string]string{
		"Likely Pathogenic": string(styleTag.AcmgLikelyPathogenic),
		"Pathogenic":        string(styleTag.AcmgPathogenic),
		"VUS":               string(styleTag.AcmgVus),
		"Likely benign":     string(styleTag.AcmgLikelyBenign),
		"BENIGN":            string(styleTag.AcmgBenign),
		"Conflicting interpretations of pathogenicity": string(styleTag.AcmgConflicting),
	} {
		tag, ok := rules.Match(value)
		assert.True(t, ok, value)
		assert.Equal(t, expected, string(tag), value)
	}

	_, ok := rules.Match("Risk factor")
	assert.False(t, ok)
}

func TestLoadSettings(t *testing.T) {
	t.Run("should return defaults without a path", func(t *testing.T) {
		settings, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, Default(), settings)
	})

	t.Run("should keep the document order of highlight rules", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "fields.yml")
		require.NoError(t, os.WriteFile(p, []byte(`
display:
  acmgHighlighting:
    Pathogenic: acmg-pathogenic
    likely pathogenic: acmg-likely-pathogenic
  summaryFields:
    - key: id
    - key: c.
      label: DNA change
`), 0o644))

		settings, err := LoadSettings(p)
		require.NoError(t, err)

		rules := settings.Display.AcmgHighlighting
		require.Len(t, rules, 2)
		assert.Equal(t, "pathogenic", rules[0].Match)
		assert.Equal(t, "likely pathogenic", rules[1].Match)

		// the first rule wins, so this ordering shadows the specific match
		tag, _ := rules.Match("Likely pathogenic")
		assert.Equal(t, styleTag.AcmgPathogenic, tag)

		assert.Equal(t, []Field{{Key: "id", Label: "id"}, {Key: "c.", Label: "DNA change"}}, settings.Display.SummaryFields)

		// untouched sections keep their defaults
		assert.Equal(t, Default().Search, settings.Search)
		assert.Equal(t, StudyTypePrefix, settings.Display.StudyFields.Type)
	})

	t.Run("should reject a config without searchable fields", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "fields.yml")
		require.NoError(t, os.WriteFile(p, []byte("search:\n  searchableFields: []\n  aliasField: \"\"\n"), 0o644))

		_, err := LoadSettings(p)
		assert.Error(t, err)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})
}

func TestTooltip(t *testing.T) {
	cfg := Default().Display
	assert.Equal(t, "Variant at the DNA level", cfg.Tooltip(DnaChangeKey))
	assert.Empty(t, cfg.Tooltip("unknown"))
}
