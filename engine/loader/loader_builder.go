package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets the maximum number of concurrent Preload workers.
//
// Parameters:
//   - n: worker count, values below 1 are raised to 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithCaching enables or disables the path-keyed mesh cache. Caching is on by default.
//
// Parameters:
//   - enabled: false to read every Load from disk
//
// Returns:
//   - LoaderBuilderOption: a function that applies the caching option to a loader
func WithCaching(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.caching = enabled
	}
}
