// Package driven defines the outbound ports of the search pipeline:
// contracts the core depends on but does not implement. Adapters
// under internal/adapters/driven satisfy these interfaces.
package driven
