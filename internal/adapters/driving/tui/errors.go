package tui

import "errors"

// ErrMissingQueryController is returned when the query controller is not provided.
var ErrMissingQueryController = errors.New("tui: query controller is required")

// ErrMissingActionService is returned when the result action service is not provided.
var ErrMissingActionService = errors.New("tui: result action service is required")

// ErrMissingUpdates is returned when the update channel is not provided.
var ErrMissingUpdates = errors.New("tui: update channel is required")
