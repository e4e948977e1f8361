// Package memory provides in-memory implementations of the storage
// ports. They back the default session-scoped configuration and are
// the stores of choice in tests.
package memory
