// Package services implements the driving ports: the orchestration
// layer between adapters and the pure domain. Services own the search
// lifecycle (debounce, staleness, history), result actions, and
// analytics, delegating fetching and persistence to driven ports.
package services
