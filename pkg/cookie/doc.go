// Package cookie provides a small cookie manager used as the serialization
// target for the persisted locale identifier.
//
// A Manager carries default attributes (path, domain, max-age, SameSite) and
// writes plain, unsigned cookies. The locale cookie is deliberately readable
// by client-side scripts, so HttpOnly defaults to false here.
//
// # Usage
//
//	m := cookie.New(cookie.WithMaxAge(34560000))
//	m.Set(w, "PARAGLIDE_LOCALE", "de")
//
// Per-call options override the manager defaults:
//
//	m.Set(w, "PARAGLIDE_LOCALE", "de", cookie.WithDomain("example.com"))
//
// Configuration can also come from the environment via Config and
// NewFromConfig.
package cookie
