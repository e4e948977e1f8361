package driven

// ConfigStore provides keyed access to application configuration.
// Implementations own persistence (e.g. a TOML file) and the
// conversion from stored values to Go types. Keys are dotted paths
// such as "search.context" or "history.persist".
type ConfigStore interface {
	// Get retrieves a raw value by key. The boolean reports whether
	// the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when the key is
	// missing or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when the key is missing
	// or not numeric.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when the key is
	// missing or not a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value, or nil when the
	// key is missing or not a slice.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save writes the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file location.
	Path() string
}
