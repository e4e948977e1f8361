// Package tui provides the interactive terminal interface. It is a
// driving adapter: keystrokes flow into the query controller and
// controller updates flow back in as bubbletea messages.
package tui

import (
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query owns live search state. The host must construct it with an
	// update callback that feeds Updates.
	Query driving.QueryController

	// Actions opens and resolves search results.
	Actions driving.ResultActionService

	// Updates delivers controller state changes into the event loop.
	// The callback given to the controller should send on the channel
	// backing this receiver.
	Updates <-chan driving.QueryUpdate

	// Translator localises interface strings. Optional; built-in
	// fallbacks are used when nil.
	Translator driven.Translator
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryController
	}
	if p.Actions == nil {
		return ErrMissingActionService
	}
	if p.Updates == nil {
		return ErrMissingUpdates
	}
	return nil
}
