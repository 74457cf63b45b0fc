package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads plain cookies with a set of default attributes.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults: path "/", SameSite Lax, not HttpOnly so
// client-side code can read the value back.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a cookie to the response. Per-call options override the
// manager defaults for this write only.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

// Get returns the value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete expires the named cookie using the manager's default attributes.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
