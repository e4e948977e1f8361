package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCmd_Use(t *testing.T) {
	assert.Equal(t, "resolve [content-type] [record-id]", resolveCmd.Use)
}

func TestResolveCmd_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("resolve", "course")

	assert.Error(t, err)
}

func TestResolveCmd_CourseWithSlug(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { resolveData = nil }()

	out, err := executeCommand("resolve", "course", "42", "--data", "slug=go-fundamentals")

	require.NoError(t, err)
	assert.Contains(t, out, "/courses/go-fundamentals")
}

func TestResolveCmd_LessonFallsBackToCourseID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { resolveData = nil }()

	out, err := executeCommand("resolve", "lesson", "7", "--data", "course_id=3")

	require.NoError(t, err)
	assert.Contains(t, out, "/courses/3/learn?lesson=7")
}

func TestResolveCmd_UnknownTypeFallsBackToSearch(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("resolve", "webinar", "9")

	require.NoError(t, err)
	assert.Contains(t, out, "/search?type=webinar&id=9")
}

func TestResolveCmd_MalformedData(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { resolveData = nil }()

	_, err := executeCommand("resolve", "course", "42", "--data", "slugless")

	assert.Error(t, err)
}
