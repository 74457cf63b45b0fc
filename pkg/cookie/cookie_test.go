package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/cookie"
)

func TestManagerSet(t *testing.T) {
	t.Parallel()

	t.Run("writes cookie with defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()

		err := m.Set(w, "PARAGLIDE_LOCALE", "de")
		require.NoError(t, err)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "PARAGLIDE_LOCALE", cookies[0].Name)
		assert.Equal(t, "de", cookies[0].Value)
		assert.Equal(t, "/", cookies[0].Path)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		assert.False(t, cookies[0].HttpOnly, "locale cookie must stay readable by client scripts")
	})

	t.Run("per-call options override manager defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithMaxAge(60))
		w := httptest.NewRecorder()

		err := m.Set(w, "lang", "en", cookie.WithMaxAge(34560000), cookie.WithDomain("example.com"))
		require.NoError(t, err)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, 34560000, cookies[0].MaxAge)
		assert.Equal(t, "example.com", cookies[0].Domain)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()

		err := m.Set(w, "", "de")
		assert.ErrorIs(t, err, cookie.ErrEmptyName)
	})
}

func TestManagerGet(t *testing.T) {
	t.Parallel()

	t.Run("returns cookie value", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})

		value, err := m.Get(r, "lang")
		require.NoError(t, err)
		assert.Equal(t, "fr", value)
	})

	t.Run("returns ErrCookieNotFound when absent", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.Get(r, "lang")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))
	w := httptest.NewRecorder()

	m.Delete(w, "lang")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "lang", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, "example.com", cookies[0].Domain)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Path:     "/app",
		MaxAge:   3600,
		SameSite: http.SameSiteStrictMode,
	}

	m := cookie.NewFromConfig(cfg)
	w := httptest.NewRecorder()

	require.NoError(t, m.Set(w, "lang", "de"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "/app", cookies[0].Path)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}
