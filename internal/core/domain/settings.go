package domain

// SearchSettings holds query behaviour configuration.
type SearchSettings struct {
	// Context is the default search context.
	Context SearchContext

	// MinQueryLength is the minimum query length before a search runs.
	MinQueryLength int

	// DebounceMillis is the debounce delay for live queries.
	DebounceMillis int

	// Limit is the maximum number of results requested per search.
	Limit int

	// RatePerSecond caps provider calls per second. Zero disables
	// rate limiting.
	RatePerSecond int

	// RateBurst is the token bucket burst size when rate limiting
	// is enabled.
	RateBurst int
}

// ExcerptSettings holds excerpt construction configuration.
type ExcerptSettings struct {
	// MaxLength is the excerpt length ceiling in runes.
	MaxLength int

	// ContextRadius is the minimum context kept before the first match.
	ContextRadius int
}

// HistorySettings holds search history configuration.
type HistorySettings struct {
	// Persist enables durable history storage. When false, history is
	// session-scoped.
	Persist bool
}

// UISettings holds presentation configuration.
type UISettings struct {
	// Language is the translation language code, e.g. "en".
	Language string

	// TranslationsPath is the directory holding translation files.
	// Empty means built-in strings only.
	TranslationsPath string
}

// StorageSettings holds local storage configuration.
type StorageSettings struct {
	// DatabasePath is the sqlite database location. Empty selects the
	// default path under the user config directory.
	DatabasePath string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Search holds query behaviour settings.
	Search SearchSettings

	// Excerpt holds excerpt construction settings.
	Excerpt ExcerptSettings

	// History holds search history settings.
	History HistorySettings

	// UI holds presentation settings.
	UI UISettings

	// Storage holds local storage settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Context:        ContextGeneral,
			MinQueryLength: MinQueryLength,
			DebounceMillis: DefaultDebounceMillis,
			Limit:          DefaultResultLimit,
			RateBurst:      DefaultRateBurst,
		},
		Excerpt: ExcerptSettings{
			MaxLength:     DefaultExcerptLength,
			ContextRadius: DefaultContextRadius,
		},
		History: HistorySettings{
			Persist: false,
		},
		UI: UISettings{
			Language: "en",
		},
		Storage: StorageSettings{},
	}
}
