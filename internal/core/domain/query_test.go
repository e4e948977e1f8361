package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQueryState_PushHistoryDeduplicates tests most-recent-first
// de-duplicated ordering.
func TestQueryState_PushHistoryDeduplicates(t *testing.T) {
	state := NewQueryState()

	for _, q := range []string{"a", "b", "a", "c"} {
		state.PushHistory(q)
	}

	assert.Equal(t, []string{"c", "a", "b"}, state.History)
}

// TestQueryState_PushHistoryCaseSensitiveDedup tests that de-dup is
// exact string match.
func TestQueryState_PushHistoryCaseSensitiveDedup(t *testing.T) {
	state := NewQueryState()

	state.PushHistory("Go")
	state.PushHistory("go")

	assert.Equal(t, []string{"go", "Go"}, state.History)
}

// TestQueryState_PushHistoryBounded tests the entry cap.
func TestQueryState_PushHistoryBounded(t *testing.T) {
	state := NewQueryState()

	for _, q := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		state.PushHistory(q)
	}

	assert.Equal(t, []string{"seven", "six", "five", "four", "three"}, state.History)
	assert.Len(t, state.History, HistoryLimit)
}

// TestQueryState_PushHistoryIgnoresBlank tests blank query handling.
func TestQueryState_PushHistoryIgnoresBlank(t *testing.T) {
	state := NewQueryState()

	state.PushHistory("")
	state.PushHistory("   ")
	state.PushHistory("\t\n")

	assert.Empty(t, state.History)
}

// TestQueryState_ClearHistory tests emptying the history.
func TestQueryState_ClearHistory(t *testing.T) {
	state := NewQueryState()
	state.PushHistory("something")

	state.ClearHistory()

	assert.Empty(t, state.History)
}

// TestQueryState_Defaults tests the initial state.
func TestQueryState_Defaults(t *testing.T) {
	state := NewQueryState()

	assert.Empty(t, state.Query)
	assert.Empty(t, state.SelectedContentTypes)
	assert.Equal(t, ContextGeneral, state.Context)
	assert.Empty(t, state.History)
}

// TestQueryState_FiltersCopiesTypes tests that derived filters do not
// alias the state's slice.
func TestQueryState_FiltersCopiesTypes(t *testing.T) {
	state := NewQueryState()
	state.SelectedContentTypes = []ContentType{ContentTypeCourse}
	state.Context = ContextLearning

	filters := state.Filters()
	filters.ContentTypes[0] = ContentTypePost

	assert.Equal(t, []ContentType{ContentTypeCourse}, state.SelectedContentTypes)
	assert.Equal(t, ContextLearning, filters.Context)
}

// TestSearchContext_IsValid tests the context enum.
func TestSearchContext_IsValid(t *testing.T) {
	assert.True(t, ContextGeneral.IsValid())
	assert.True(t, ContextLearning.IsValid())
	assert.True(t, ContextTeaching.IsValid())
	assert.False(t, SearchContext("admin").IsValid())
	assert.False(t, SearchContext("").IsValid())
}
