package locale

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/localekit/localekit/pkg/cookie"
)

// DefaultCookieMaxAge is the locale cookie lifetime in seconds (~400 days).
const DefaultCookieMaxAge = 34560000

// Config is the environment surface of the middleware.
type Config struct {
	CookieName    string `env:"LOCALE_COOKIE_NAME" envDefault:"PARAGLIDE_LOCALE"`
	CookieMaxAge  int    `env:"LOCALE_COOKIE_MAX_AGE" envDefault:"34560000"`
	RefreshCookie bool   `env:"LOCALE_REFRESH_COOKIE" envDefault:"false"`
}

// middlewareConfig holds the assembled middleware settings.
type middlewareConfig struct {
	cookieName    string
	cookieMaxAge  int
	refreshCookie bool
	cookies       *cookie.Manager
	logger        *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithCookieName overrides the locale cookie name. Empty names are ignored.
func WithCookieName(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithCookieMaxAge overrides the refreshed cookie's lifetime in seconds.
func WithCookieMaxAge(seconds int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if seconds > 0 {
			c.cookieMaxAge = seconds
		}
	}
}

// WithRefreshCookie makes the middleware append a refreshed Set-Cookie
// header with the resolved locale on every request.
func WithRefreshCookie(refresh bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.refreshCookie = refresh
	}
}

// WithCookieManager overrides the cookie manager used for refresh writes.
func WithCookieManager(m *cookie.Manager) MiddlewareOption {
	return func(c *middlewareConfig) {
		if m != nil {
			c.cookies = m
		}
	}
}

// WithMiddlewareLogger sets the structured logger. Logging is discarded by
// default.
func WithMiddlewareLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware resolves the locale once per incoming request: it creates a
// fresh RequestScope, runs Resolve against rt, and stores the scope in the
// request context. With refresh enabled it also re-issues the locale cookie
// so the expiry window slides on every visit.
func Middleware(rt *Runtime, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		cookieName:   DefaultCookieName,
		cookieMaxAge: DefaultCookieMaxAge,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cookies == nil {
		cfg.cookies = cookie.New()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := NewRequestScope()
			resolved := Resolve(r, scope, rt, WithResolveCookieName(cfg.cookieName))

			cfg.logger.DebugContext(r.Context(), "locale resolved",
				"locale", resolved, "scope", scope.ID(), "path", r.URL.Path)

			if cfg.refreshCookie {
				_ = cfg.cookies.Set(w, cfg.cookieName, resolved,
					cookie.WithPath("/"),
					cookie.WithMaxAge(cfg.cookieMaxAge),
					cookie.WithSameSite(http.SameSiteLaxMode),
				)
			}

			next.ServeHTTP(w, r.WithContext(WithRequestScope(r.Context(), scope)))
		})
	}
}

// NewMiddlewareFromConfig builds the middleware from an env-loaded Config.
// Additional options are applied after the config and take precedence.
func NewMiddlewareFromConfig(rt *Runtime, cfg Config, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	configOpts := []MiddlewareOption{
		WithCookieName(cfg.CookieName),
		WithCookieMaxAge(cfg.CookieMaxAge),
		WithRefreshCookie(cfg.RefreshCookie),
	}
	configOpts = append(configOpts, opts...)
	return Middleware(rt, configOpts...)
}
