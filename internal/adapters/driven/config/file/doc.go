// Package file provides the TOML-backed ConfigStore. Configuration is
// persisted to the local filesystem under the unisearch config
// directory and exposed to the rest of the application as dotted keys
// plus a typed settings snapshot.
package file
