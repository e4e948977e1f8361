package driven

// Translator resolves user-facing strings by key. Implementations may
// reload translations at runtime; T must be safe for concurrent use.
type Translator interface {
	// T returns the translation for key, or fallback when the key is
	// missing.
	T(key, fallback string) string
}
