package locale

import "errors"

var (
	// ErrMissingProvider is returned when a bridge accessor is used
	// outside a provider scope. This is programmer error and is surfaced
	// immediately instead of silently defaulting to a wrong locale.
	ErrMissingProvider = errors.New("locale: no bridge in context; wrap the handler chain with locale.Provider or attach one via locale.WithBridge")

	// ErrUnsupportedLocale is returned when a locale is not a member of
	// the runtime's configured locale set.
	ErrUnsupportedLocale = errors.New("locale: unsupported locale")

	// ErrInvalidLocaleTag is returned by New for locale identifiers that
	// are not well-formed BCP 47 tags.
	ErrInvalidLocaleTag = errors.New("locale: invalid locale tag")

	// ErrBaseLocaleNotInSet is returned by New when the base locale is
	// missing from the locale set.
	ErrBaseLocaleNotInSet = errors.New("locale: base locale is not in the locale set")

	// ErrNoLocales is returned by New when the locale set is empty.
	ErrNoLocales = errors.New("locale: locale set is empty")
)
