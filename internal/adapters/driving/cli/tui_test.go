package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_LongMentionsControls(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Tab")
	assert.Contains(t, tuiCmd.Long, "Ctrl+R")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// Test processes have no TTY on stdin
	_, err := executeCommand("tui")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestMCPCmd_Use(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	assert.NotNil(t, mcpServeCmd.Flags().Lookup("port"))
}
