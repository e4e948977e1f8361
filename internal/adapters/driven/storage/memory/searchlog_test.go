package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

func logEvent(id, query string) driven.SearchEvent {
	return driven.SearchEvent{
		ID:         id,
		Kind:       "search",
		Query:      query,
		OccurredAt: time.Now(),
	}
}

func TestSearchLogStore_AppendAndRecent(t *testing.T) {
	store := NewSearchLogStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, logEvent("1", "first")))
	require.NoError(t, store.Append(ctx, logEvent("2", "second")))
	require.NoError(t, store.Append(ctx, logEvent("3", "third")))

	events, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "third", events[0].Query)
	assert.Equal(t, "second", events[1].Query)
}

func TestSearchLogStore_RecentUnlimited(t *testing.T) {
	store := NewSearchLogStore()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, logEvent("1", "first")))
	require.NoError(t, store.Append(ctx, logEvent("2", "second")))

	events, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestSearchLogStore_BoundedGrowth(t *testing.T) {
	store := NewSearchLogStore()
	ctx := context.Background()

	for i := 0; i < maxLogEntries+10; i++ {
		require.NoError(t, store.Append(ctx, logEvent(fmt.Sprintf("%d", i), "q")))
	}

	events, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, maxLogEntries)
	assert.Equal(t, fmt.Sprintf("%d", maxLogEntries+9), events[0].ID)
}
