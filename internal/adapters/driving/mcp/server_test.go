package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresSearchService(t *testing.T) {
	_, err := NewServer(&Ports{Actions: &mockActionService{}})
	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestNewServer_RequiresActionService(t *testing.T) {
	_, err := NewServer(&Ports{Search: &mockSearchService{}})
	assert.ErrorIs(t, err, ErrMissingActionService)
}

func TestNewServer_HistoryOptional(t *testing.T) {
	server, err := NewServer(&Ports{
		Search:  &mockSearchService{},
		Actions: &mockActionService{},
	})
	require.NoError(t, err)
	assert.NotNil(t, server)
}
