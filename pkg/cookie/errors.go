package cookie

import "errors"

var (
	// ErrCookieNotFound is returned by Get when the request carries no
	// cookie under the requested name.
	ErrCookieNotFound = errors.New("cookie not found")

	// ErrEmptyName is returned when a cookie name is empty.
	ErrEmptyName = errors.New("cookie name is empty")
)
