// Package mcp provides an MCP (Model Context Protocol) server adapter
// for unisearch. It lets AI assistants search platform content and
// resolve results to navigable paths.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingActionService is returned when the result action service is not provided.
var ErrMissingActionService = errors.New("mcp: result action service is required")
