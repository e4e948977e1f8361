package driven

import "context"

// Navigator performs the side effects of following a resolved result
// path: opening it in the host environment and warming caches ahead of
// an expected visit.
type Navigator interface {
	// Navigate opens the given path.
	Navigate(ctx context.Context, path string) error

	// Prefetch warms any caches for the given path. Implementations
	// for which prefetching is meaningless return nil.
	Prefetch(ctx context.Context, path string) error
}
