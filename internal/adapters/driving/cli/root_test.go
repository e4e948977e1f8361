package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unisearch/internal/adapters/driven/navigate"
	"github.com/custodia-labs/unisearch/internal/adapters/driven/provider/local"
	"github.com/custodia-labs/unisearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/services"
)

// setupTestServices wires the commands to in-memory services with a
// small seeded corpus. The cleanup undoes the wiring.
func setupTestServices() func() {
	records := memory.NewRecordStore()
	seed := []driven.Record{
		{TableName: "courses", ID: "1", ContentType: domain.ContentTypeCourse, Title: "Go Fundamentals", Body: "Learn the Go language from scratch", Fields: map[string]any{"slug": "go-fundamentals"}},
		{TableName: "lessons", ID: "2", ContentType: domain.ContentTypeLesson, Title: "Goroutines", Body: "Concurrency with goroutines and channels", Fields: map[string]any{"course_id": "1"}},
		{TableName: "posts", ID: "3", ContentType: domain.ContentTypePost, Title: "Why I like Go", Body: "A community post about the Go language"},
	}
	for _, r := range seed {
		_ = records.Put(context.Background(), r)
	}

	analytics := services.NewAnalyticsService(memory.NewSearchLogStore())

	appSettings = domain.DefaultAppSettings()
	recordStore = records
	historyStore = memory.NewHistoryStore()
	analyticsService = analytics
	searchService = services.NewSearchService(local.NewProvider(records), services.WithAnalytics(analytics))
	actionService = services.NewResultActions(navigate.NewNullNavigator(), analytics)
	translator = nil
	wired = true

	return func() {
		wired = false
		searchService = nil
		actionService = nil
		analyticsService = nil
		historyStore = nil
		recordStore = nil
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "unisearch", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "base-url", "memory"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s should exist", name)
	}
}

func TestSearchFilters_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	filters, err := searchFilters("", nil, 0)

	require.NoError(t, err)
	assert.Equal(t, domain.ContextGeneral, filters.Context)
	assert.Empty(t, filters.ContentTypes)
	assert.Equal(t, domain.DefaultResultLimit, filters.Limit)
}

func TestSearchFilters_Overrides(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	filters, err := searchFilters("learning", []string{"course", "lesson"}, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.ContextLearning, filters.Context)
	assert.Equal(t, []domain.ContentType{domain.ContentTypeCourse, domain.ContentTypeLesson}, filters.ContentTypes)
	assert.Equal(t, 5, filters.Limit)
}

func TestSearchFilters_InvalidContext(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := searchFilters("admin", nil, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchFilters_InvalidContentType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := searchFilters("", []string{"webinar"}, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
