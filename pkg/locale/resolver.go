package locale

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DefaultCookieName is the cookie the resolver and middleware consult.
const DefaultCookieName = "PARAGLIDE_LOCALE"

// RequestScope holds the locale resolved for exactly one request. Each
// request owns its scope, which is the isolation boundary between
// concurrent requests: the scope lives in the request context and must
// never be stored anywhere that outlives the request.
type RequestScope struct {
	id string

	mu     sync.RWMutex
	locale string
}

// NewRequestScope creates an empty scope with an opaque identity.
func NewRequestScope() *RequestScope {
	return &RequestScope{id: uuid.NewString()}
}

// ID returns the scope's opaque per-request identity.
func (s *RequestScope) ID() string {
	return s.id
}

// Locale returns the resolved locale and whether one has been resolved.
func (s *RequestScope) Locale() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale, s.locale != ""
}

func (s *RequestScope) setLocale(locale string) {
	s.mu.Lock()
	s.locale = locale
	s.mu.Unlock()
}

// requestScopeContextKey is the context key for the request scope.
type requestScopeContextKey struct{}

// WithRequestScope attaches scope to the context for the remainder of
// request handling.
func WithRequestScope(ctx context.Context, scope *RequestScope) context.Context {
	return context.WithValue(ctx, requestScopeContextKey{}, scope)
}

// RequestScopeFromContext returns the request's scope, or nil outside
// request handling (e.g. pure client evaluation).
func RequestScopeFromContext(ctx context.Context) *RequestScope {
	scope, _ := ctx.Value(requestScopeContextKey{}).(*RequestScope)
	return scope
}

// resolverConfig holds resolver settings shared with the middleware.
type resolverConfig struct {
	cookieName string
}

// ResolverOption configures Resolve.
type ResolverOption func(*resolverConfig)

// WithResolveCookieName overrides the cookie name consulted during
// resolution. Empty names are ignored.
func WithResolveCookieName(name string) ResolverOption {
	return func(c *resolverConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// Resolve derives the locale for one request and records it in scope.
// First match wins:
//
//  1. the locale cookie, when its value is in the runtime's locale set;
//  2. the Accept-Language header, quality-ordered, exact tag first and
//     primary subtag second, first supported candidate;
//  3. the runtime's base locale.
//
// Unsupported cookie or header values are not errors; they are skipped in
// favor of the next step.
func Resolve(r *http.Request, scope *RequestScope, rt *Runtime, opts ...ResolverOption) string {
	cfg := resolverConfig{cookieName: DefaultCookieName}
	for _, opt := range opts {
		opt(&cfg)
	}

	resolved := rt.BaseLocale()

	if candidate := cookieLocale(r, cfg.cookieName); candidate != "" && rt.IsLocale(candidate) {
		resolved = candidate
	} else if match := matchAcceptLanguage(r.Header.Get("Accept-Language"), rt.locales); match != "" {
		resolved = match
	}

	scope.setLocale(resolved)
	return resolved
}

func cookieLocale(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}
