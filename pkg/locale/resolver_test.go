package locale_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/locale"
)

func newTestRuntime(t *testing.T) *locale.Runtime {
	t.Helper()
	rt, err := locale.New("en", []string{"en", "de"})
	require.NoError(t, err)
	return rt
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("valid cookie wins over a conflicting header", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "de"})
		r.Header.Set("Accept-Language", "fr")

		scope := locale.NewRequestScope()
		assert.Equal(t, "de", locale.Resolve(r, scope, rt))
	})

	t.Run("invalid cookie falls through to the header", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "xx"})
		r.Header.Set("Accept-Language", "de-DE,en;q=0.8")

		scope := locale.NewRequestScope()
		assert.Equal(t, "de", locale.Resolve(r, scope, rt))
	})

	t.Run("no cookie and no header yields the base locale", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		scope := locale.NewRequestScope()
		assert.Equal(t, "en", locale.Resolve(r, scope, rt))
	})

	t.Run("unsupported header values yield the base locale", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "ja,ko;q=0.8")

		scope := locale.NewRequestScope()
		assert.Equal(t, "en", locale.Resolve(r, scope, rt))
	})

	t.Run("records the result in the scope", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "de"})

		scope := locale.NewRequestScope()
		locale.Resolve(r, scope, rt)

		got, ok := scope.Locale()
		require.True(t, ok)
		assert.Equal(t, "de", got)
	})

	t.Run("custom cookie name", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "de"})

		scope := locale.NewRequestScope()
		got := locale.Resolve(r, scope, rt, locale.WithResolveCookieName("lang"))
		assert.Equal(t, "de", got)
	})
}

func TestRequestScopeIsolation(t *testing.T) {
	t.Parallel()

	t.Run("scopes have distinct identities", func(t *testing.T) {
		t.Parallel()

		a, b := locale.NewRequestScope(), locale.NewRequestScope()
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("concurrent requests never observe each other's locale", func(t *testing.T) {
		t.Parallel()

		rt := newTestRuntime(t)

		reqFor := func(l string) *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: l})
			return r
		}

		scopeEN := locale.NewRequestScope()
		scopeDE := locale.NewRequestScope()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			locale.Resolve(reqFor("en"), scopeEN, rt)
		}()
		go func() {
			defer wg.Done()
			locale.Resolve(reqFor("de"), scopeDE, rt)
		}()
		wg.Wait()

		gotEN, _ := scopeEN.Locale()
		gotDE, _ := scopeDE.Locale()
		assert.Equal(t, "en", gotEN)
		assert.Equal(t, "de", gotDE)
	})

	t.Run("empty scope reports no locale", func(t *testing.T) {
		t.Parallel()

		_, ok := locale.NewRequestScope().Locale()
		assert.False(t, ok)
	})
}
