package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// TestRecordSearch verifies search events carry query, context, and count.
func TestRecordSearch(t *testing.T) {
	store := &mockLogStore{}
	svc := NewAnalyticsService(store)
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	err := svc.RecordSearch(context.Background(), "golang", domain.ContextLearning, 7)
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	event := store.events[0]
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventKindSearch, event.Kind)
	assert.Equal(t, "golang", event.Query)
	assert.Equal(t, "learning", event.Context)
	assert.Equal(t, 7, event.ResultCount)
	assert.Equal(t, fixed, event.OccurredAt)
}

// TestRecordClick verifies click events carry identity and position.
func TestRecordClick(t *testing.T) {
	store := &mockLogStore{}
	svc := NewAnalyticsService(store)

	result := domain.SearchResult{TableName: "posts", RecordID: "9", ContentType: domain.ContentTypePost}
	err := svc.RecordClick(context.Background(), "golang", result, 2)
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	event := store.events[0]
	assert.Equal(t, EventKindClick, event.Kind)
	assert.Equal(t, "posts:9", event.ResultIdentity)
	assert.Equal(t, 2, event.Position)
}

// TestRecordEventIDsUnique verifies each event gets its own identifier.
func TestRecordEventIDsUnique(t *testing.T) {
	store := &mockLogStore{}
	svc := NewAnalyticsService(store)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordSearch(context.Background(), "golang", domain.ContextGeneral, i))
	}

	seen := make(map[string]struct{})
	for _, event := range store.events {
		_, dup := seen[event.ID]
		assert.False(t, dup, "duplicate event ID %s", event.ID)
		seen[event.ID] = struct{}{}
	}
}

// TestRecent verifies reads pass through and errors are wrapped.
func TestRecent(t *testing.T) {
	store := &mockLogStore{}
	svc := NewAnalyticsService(store)
	require.NoError(t, svc.RecordSearch(context.Background(), "a1", domain.ContextGeneral, 0))
	require.NoError(t, svc.RecordSearch(context.Background(), "b2", domain.ContextGeneral, 0))

	events, err := svc.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "b2", events[0].Query)

	store.recentErr = errors.New("table locked")
	_, err = svc.Recent(context.Background(), 1)
	assert.Error(t, err)
}
