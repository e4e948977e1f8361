package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranslations(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(content), 0600))
}

func TestTranslator_LooksUpDottedKeys(t *testing.T) {
	dir := t.TempDir()
	writeTranslations(t, dir, "[search]\nplaceholder = \"Search courses, lessons...\"\n\n[results]\nempty = \"No results found\"\n")

	tr, err := NewTranslator(dir, "en")
	require.NoError(t, err)
	defer tr.Close()

	assert.Equal(t, "Search courses, lessons...", tr.T("search.placeholder", "Search"))
	assert.Equal(t, "No results found", tr.T("results.empty", "Nothing"))
}

func TestTranslator_MissingKeyFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeTranslations(t, dir, "[search]\nplaceholder = \"Suche\"\n")

	tr, err := NewTranslator(dir, "en")
	require.NoError(t, err)
	defer tr.Close()

	assert.Equal(t, "History", tr.T("history.title", "History"))
}

func TestTranslator_MissingFileFallsBack(t *testing.T) {
	tr, err := NewTranslator(t.TempDir(), "en")
	require.NoError(t, err)
	defer tr.Close()

	assert.Equal(t, "Search", tr.T("search.placeholder", "Search"))
}

func TestTranslator_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeTranslations(t, dir, "[search]\nplaceholder = \"Before\"\n")

	tr, err := NewTranslator(dir, "en")
	require.NoError(t, err)
	defer tr.Close()
	require.Equal(t, "Before", tr.T("search.placeholder", ""))

	writeTranslations(t, dir, "[search]\nplaceholder = \"After\"\n")

	assert.Eventually(t, func() bool {
		return tr.T("search.placeholder", "") == "After"
	}, 3*time.Second, 20*time.Millisecond)
}

func TestTranslator_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeTranslations(t, dir, "[search]\nplaceholder = \"English\"\n")

	tr, err := NewTranslator(dir, "en")
	require.NoError(t, err)
	defer tr.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.toml"), []byte("[search]\nplaceholder = \"Deutsch\"\n"), 0600))
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, "English", tr.T("search.placeholder", ""))
}

func TestStatic(t *testing.T) {
	tr := Static(map[string]string{"results.empty": "Nothing here"})

	assert.Equal(t, "Nothing here", tr.T("results.empty", ""))
	assert.Equal(t, "fallback", tr.T("missing", "fallback"))
	assert.NoError(t, tr.Close())
}
