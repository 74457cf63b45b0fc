package locale_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/locale"
)

func TestInstallServerResolution(t *testing.T) {
	t.Parallel()

	t.Run("reads the current request scope", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)

		var current *locale.RequestScope
		locale.InstallServerResolution(rt, func() *locale.RequestScope { return current })

		scope := locale.NewRequestScope()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "de"})
		locale.Resolve(r, scope, rt)

		current = scope
		assert.Equal(t, "de", rt.Locale())
	})

	t.Run("falls back to base without a scope", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		locale.InstallServerResolution(rt, func() *locale.RequestScope { return nil })

		assert.Equal(t, "en", rt.Locale())
	})

	t.Run("falls back to base for an unresolved scope", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		scope := locale.NewRequestScope()
		locale.InstallServerResolution(rt, func() *locale.RequestScope { return scope })

		assert.Equal(t, "en", rt.Locale())
	})

	t.Run("read is idempotent between writes", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		scope := locale.NewRequestScope()
		locale.InstallServerResolution(rt, func() *locale.RequestScope { return scope })

		assert.Equal(t, rt.Locale(), rt.Locale())
	})

	t.Run("last installer is authoritative", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)

		// A bridge override first, then the server override: the server
		// override must win for this runtime instance.
		b := locale.NewBridge(rt)
		require.NoError(t, b.SetLocale("de"))

		locale.InstallServerResolution(rt, func() *locale.RequestScope { return nil })
		assert.Equal(t, "en", rt.Locale())
	})
}

func TestRequestLocale(t *testing.T) {
	t.Parallel()

	t.Run("returns the scope's resolved locale", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		scope := locale.NewRequestScope()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "de"})
		locale.Resolve(r, scope, rt)

		ctx := locale.WithRequestScope(context.Background(), scope)
		assert.Equal(t, "de", locale.RequestLocale(ctx, rt))
	})

	t.Run("base locale outside request handling", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		assert.Equal(t, "en", locale.RequestLocale(context.Background(), rt))
	})
}
