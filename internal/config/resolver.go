package config

import "context"

// loadedKey is the context key for Loaded
type loadedKey struct{}

// WithLoaded returns a new context with the loaded config stored in it.
func WithLoaded(ctx context.Context, l *Loaded) context.Context {
	return context.WithValue(ctx, loadedKey{}, l)
}

// FromContext returns the loaded config from context.
// Returns nil if none is stored.
func FromContext(ctx context.Context) *Loaded {
	if l, ok := ctx.Value(loadedKey{}).(*Loaded); ok {
		return l
	}
	return nil
}
