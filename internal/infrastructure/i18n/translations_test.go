package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator(t *testing.T) {
	tr := NewTranslator("en")
	data := map[string]any{"File": "a.json", "Target": "b.json"}

	assert.Equal(t, "renamed a.json -> b.json", tr.T("en", "report.renamed", data))
	assert.Equal(t, "döpte om a.json -> b.json", tr.T("sv", "report.renamed", data))
	assert.Equal(t, "skipped a.json: unknown source", tr.T("", "report.unknown_source", data))

	t.Run("Fallback to default language", func(t *testing.T) {
		assert.Equal(t, "a.json already has its target name", tr.T("de", "report.already_named", data))
	})

	t.Run("Fallback to key", func(t *testing.T) {
		assert.Equal(t, "report.nope", tr.T("en", "report.nope", nil))
		assert.Empty(t, tr.T("en", "", nil))
	})

	t.Run("Every status has a message in every language", func(t *testing.T) {
		for _, lang := range []string{"en", "sv"} {
			for _, key := range []string{"report.renamed", "report.already_named", "report.malformed_catalog", "report.missing_source", "report.unknown_source", "report.summary"} {
				assert.NotEqual(t, key, tr.T(lang, key, data), lang)
			}
		}
	})

	t.Run("Summary", func(t *testing.T) {
		tr := NewTranslator("sv")
		assert.Equal(t, "languages: 3 omdöpta, 1 överhoppade", tr.T("", "report.summary", map[string]any{"Dir": "languages", "Renamed": 3, "Skipped": 1}))
	})
}
