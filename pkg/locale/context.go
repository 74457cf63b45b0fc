package locale

import (
	"context"
	"net/http"
)

// bridgeContextKey is the context key for the provided bridge.
type bridgeContextKey struct{}

// WithBridge attaches b to the context. Nested consumers retrieve the same
// bridge — and therefore the same store instance — via BridgeFromContext,
// so a setter reached through the context and the top-level setter stay
// mutually consistent.
func WithBridge(ctx context.Context, b *Bridge) context.Context {
	return context.WithValue(ctx, bridgeContextKey{}, b)
}

// BridgeFromContext returns the bridge provided by an enclosing WithBridge
// or Provider. Calling it without one is programmer error and returns
// ErrMissingProvider; it never falls back to a default locale.
func BridgeFromContext(ctx context.Context) (*Bridge, error) {
	b, ok := ctx.Value(bridgeContextKey{}).(*Bridge)
	if !ok || b == nil {
		return nil, ErrMissingProvider
	}
	return b, nil
}

// Provider is HTTP middleware exposing b to every request in the subtree,
// the scoped-provider pattern for handler chains.
func Provider(b *Bridge) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithBridge(r.Context(), b)))
		})
	}
}
