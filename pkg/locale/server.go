package locale

import "context"

// InstallServerResolution redirects rt's read override to the current
// request scope during server-side rendering. currentScope returns the
// scope of the request being handled, or nil outside request handling, in
// which case reads fall back to the base locale.
//
// This override and the client bridge's override target the same slot;
// whichever is installed last on a given Runtime is authoritative there.
// The two must never both be active within one execution context — see the
// package documentation.
func InstallServerResolution(rt *Runtime, currentScope func() *RequestScope) {
	rt.OverwriteGetLocale(func() string {
		if scope := currentScope(); scope != nil {
			if l, ok := scope.Locale(); ok && rt.IsLocale(l) {
				return l
			}
		}
		return rt.BaseLocale()
	})
}

// RequestLocale returns the locale resolved for the request carried by ctx,
// falling back to rt's base locale when no scope is present or its value is
// not supported. Handlers use this instead of any process-wide state.
func RequestLocale(ctx context.Context, rt *Runtime) string {
	if scope := RequestScopeFromContext(ctx); scope != nil {
		if l, ok := scope.Locale(); ok && rt.IsLocale(l) {
			return l
		}
	}
	return rt.BaseLocale()
}
