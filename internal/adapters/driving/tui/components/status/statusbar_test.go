package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, domain.ContextGeneral, bar.Context())
}

func TestBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "[general]")
}

func TestBar_View_Searching(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateSearching)

	view := bar.View()

	assert.Contains(t, view, "Searching...")
}

func TestBar_View_Results(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateResults)
	bar.SetResults(7, 0.03)

	view := bar.View()

	assert.Contains(t, view, "7 results")
	assert.Contains(t, view, "0.03s")
}

func TestBar_View_ResultsWithoutTime(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateResults)
	bar.SetResults(2, 0)

	view := bar.View()

	assert.Contains(t, view, "2 results")
	assert.NotContains(t, view, " in ")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateError)
	bar.SetMessage("provider unavailable")

	view := bar.View()

	assert.Contains(t, view, "Error: provider unavailable")
}

func TestBar_SetContext(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetContext(domain.ContextLearning)

	assert.Equal(t, domain.ContextLearning, bar.Context())
	assert.Contains(t, bar.View(), "[learning]")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetResults(4, 0.1)
	bar.SetContext(domain.ContextTeaching)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
	// Context survives a clear
	assert.Equal(t, domain.ContextTeaching, bar.Context())
}
