package navigate

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure NullNavigator implements the interface.
var _ driven.Navigator = (*NullNavigator)(nil)

// NullNavigator records nothing and goes nowhere. It serves hosts that
// only want resolved paths printed, such as the CLI and the MCP
// server.
type NullNavigator struct{}

// NewNullNavigator creates a no-op navigator.
func NewNullNavigator() *NullNavigator {
	return &NullNavigator{}
}

// Navigate logs the path and succeeds.
func (NullNavigator) Navigate(_ context.Context, path string) error {
	logger.Debug("Navigation suppressed for %s", path)
	return nil
}

// Prefetch succeeds without doing anything.
func (NullNavigator) Prefetch(context.Context, string) error {
	return nil
}
