package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusAddCmd_StoresRecord(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { corpusAddTitle, corpusAddBody, corpusAddData = "", "", nil }()

	out, err := executeCommand("corpus", "add", "course", "42",
		"--title", "Rust for Gophers",
		"--body", "A course for Go developers learning Rust",
		"--data", "slug=rust-for-gophers",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Stored courses:42")

	searchOut, err := executeCommand("search", "rust")
	require.NoError(t, err)
	assert.Contains(t, searchOut, "Rust for Gophers")
	assert.Contains(t, searchOut, "/courses/rust-for-gophers")
}

func TestCorpusAddCmd_RejectsUnknownType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("corpus", "add", "webinar", "9")

	assert.Error(t, err)
}

func TestCorpusImportCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "records.json")
	payload := `[
		{"table_name": "quizzes", "record_id": "5", "content_type": "quiz", "title": "Interfaces Quiz", "body": "Test your interface knowledge"},
		{"record_id": "6", "content_type": "note", "title": "Generics Notes", "body": "Notes on type parameters"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	out, err := executeCommand("corpus", "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 records.")

	countOut, err := executeCommand("corpus", "count")
	require.NoError(t, err)
	// 3 seeded plus 2 imported
	assert.Contains(t, countOut, "5 records")
}

func TestCorpusImportCmd_BadJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := executeCommand("corpus", "import", path)

	assert.Error(t, err)
}

func TestCorpusImportCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("corpus", "import", filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestCorpusCountCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("corpus", "count")

	require.NoError(t, err)
	assert.Contains(t, out, "3 records")
}
