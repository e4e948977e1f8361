package mcp

import (
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides one-shot search.
	Search driving.SearchService

	// Actions resolves results to navigation paths.
	Actions driving.ResultActionService

	// History exposes recent queries as a resource. Optional.
	History driven.HistoryStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Actions == nil {
		return ErrMissingActionService
	}
	return nil
}
