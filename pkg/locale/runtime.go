package locale

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// GetLocaleFunc is a read strategy returning the active locale.
type GetLocaleFunc func() string

// SetLocaleFunc is a write strategy persisting a new locale.
type SetLocaleFunc func(locale string, opts SetOptions) error

// SetOptions control a single SetLocale call. Reload defaults to true,
// mirroring a runtime that refreshes the page after a locale switch.
type SetOptions struct {
	Reload bool
}

// SetOption mutates SetOptions.
type SetOption func(*SetOptions)

// WithoutReload instructs the write strategy to perform its persistence
// side effects without triggering the reload hook.
func WithoutReload() SetOption {
	return func(o *SetOptions) {
		o.Reload = false
	}
}

// CookieWriter persists a locale identifier to its cookie.
type CookieWriter interface {
	WriteLocale(locale string) error
}

// CookieWriterFunc adapts a function to the CookieWriter interface.
type CookieWriterFunc func(locale string) error

func (f CookieWriterFunc) WriteLocale(locale string) error {
	return f(locale)
}

// Runtime models the external message runtime: a base locale, the closed
// set of supported locales, and swappable read/write strategies. The zero
// strategies are the runtime's own native resolution and persistence;
// OverwriteGetLocale and OverwriteSetLocale replace them in place.
//
// Only one read strategy is active at a time. See the package documentation
// for which installer is authoritative per execution context.
type Runtime struct {
	base    string
	locales []string

	mu          sync.RWMutex
	getFn       GetLocaleFunc // nil means native resolution
	setFn       SetLocaleFunc // nil means native persistence
	current     string
	initialized bool

	resolver func() string // one-time native resolution source
	cookies  CookieWriter
	reload   func()
	logger   *slog.Logger
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithCookieWriter sets the persistence target the native write strategy
// uses. Without one, native writes only update the in-memory locale.
func WithCookieWriter(w CookieWriter) RuntimeOption {
	return func(rt *Runtime) {
		rt.cookies = w
	}
}

// WithReloadHook sets the hook the native write strategy fires after a
// locale change, unless the call suppresses it via WithoutReload.
func WithReloadHook(fn func()) RuntimeOption {
	return func(rt *Runtime) {
		rt.reload = fn
	}
}

// WithNativeResolver sets the source the native read strategy consults
// exactly once, on first read — typically an existing cookie. Values not in
// the locale set are ignored in favor of the base locale.
func WithNativeResolver(fn func() string) RuntimeOption {
	return func(rt *Runtime) {
		rt.resolver = fn
	}
}

// WithRuntimeLogger sets the structured logger. Logging is discarded by
// default.
func WithRuntimeLogger(l *slog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		if l != nil {
			rt.logger = l
		}
	}
}

// New creates a Runtime for the given base locale and locale set. Every
// locale must be a well-formed BCP 47 tag and base must be a member of
// locales.
func New(base string, locales []string, opts ...RuntimeOption) (*Runtime, error) {
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}
	for _, l := range locales {
		if _, err := language.Parse(l); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocaleTag, l)
		}
	}
	if !slices.Contains(locales, base) {
		return nil, fmt.Errorf("%w: %q", ErrBaseLocaleNotInSet, base)
	}

	rt := &Runtime{
		base:    base,
		locales: slices.Clone(locales),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt, nil
}

// BaseLocale returns the designated fallback locale.
func (rt *Runtime) BaseLocale() string {
	return rt.base
}

// Locales returns the ordered set of supported locales.
func (rt *Runtime) Locales() []string {
	return slices.Clone(rt.locales)
}

// IsLocale reports whether l is a member of the locale set. Equality is
// exact string match.
func (rt *Runtime) IsLocale(l string) bool {
	return slices.Contains(rt.locales, l)
}

// Locale returns the active locale through the currently installed read
// strategy.
func (rt *Runtime) Locale() string {
	rt.mu.RLock()
	fn := rt.getFn
	rt.mu.RUnlock()

	if fn != nil {
		return fn()
	}
	return rt.nativeLocale()
}

// SetLocale persists a new locale through the currently installed write
// strategy.
func (rt *Runtime) SetLocale(locale string, opts ...SetOption) error {
	options := SetOptions{Reload: true}
	for _, opt := range opts {
		opt(&options)
	}

	rt.mu.RLock()
	fn := rt.setFn
	rt.mu.RUnlock()

	if fn != nil {
		return fn(locale, options)
	}
	return rt.nativeSetLocale(locale, options)
}

// OverwriteGetLocale installs fn as the active read strategy, replacing the
// previous one. Passing nil restores native resolution.
func (rt *Runtime) OverwriteGetLocale(fn GetLocaleFunc) {
	rt.mu.Lock()
	rt.getFn = fn
	rt.mu.Unlock()
}

// OverwriteSetLocale installs fn as the active write strategy, replacing
// the previous one. Passing nil restores native persistence.
func (rt *Runtime) OverwriteSetLocale(fn SetLocaleFunc) {
	rt.mu.Lock()
	rt.setFn = fn
	rt.mu.Unlock()
}

// nativeLocale resolves the locale the runtime's own way. The first read
// runs the one-time resolver (e.g. an existing cookie); later reads return
// the in-memory value.
func (rt *Runtime) nativeLocale() string {
	rt.mu.RLock()
	if rt.initialized {
		current := rt.current
		rt.mu.RUnlock()
		return current
	}
	rt.mu.RUnlock()

	resolved := rt.base
	if rt.resolver != nil {
		if candidate := rt.resolver(); rt.IsLocale(candidate) {
			resolved = candidate
		}
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.initialized {
		rt.current = resolved
		rt.initialized = true
	}
	return rt.current
}

// nativeSetLocale persists locale the runtime's own way: cookie first, then
// the in-memory variable, then the reload hook. The change guard consults
// the active read strategy, so an installed override that already reflects
// the new value suppresses the reload.
func (rt *Runtime) nativeSetLocale(locale string, opts SetOptions) error {
	if !rt.IsLocale(locale) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	changed := rt.Locale() != locale

	if rt.cookies != nil {
		if err := rt.cookies.WriteLocale(locale); err != nil {
			return fmt.Errorf("persist locale %q: %w", locale, err)
		}
	}

	rt.mu.Lock()
	rt.current = locale
	rt.initialized = true
	rt.mu.Unlock()

	rt.logger.Debug("locale persisted", "locale", locale, "reload", opts.Reload && changed)

	if opts.Reload && changed && rt.reload != nil {
		rt.reload()
	}
	return nil
}
