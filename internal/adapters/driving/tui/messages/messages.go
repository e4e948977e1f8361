// Package messages defines the bubbletea messages exchanged between
// the TUI and the query controller bridge.
package messages

import (
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
)

// QueryUpdated carries a controller state change into the TUI event
// loop.
type QueryUpdated struct {
	Update driving.QueryUpdate
}

// ResultOpened reports the outcome of opening a result.
type ResultOpened struct {
	// Path is the resolved navigation path.
	Path string

	// Err is non-nil when navigation failed.
	Err error
}

// ErrorOccurred carries a failure into the TUI event loop.
type ErrorOccurred struct {
	Err error
}
