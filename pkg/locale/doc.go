// Package locale synchronizes an imperative locale-resolution runtime with
// reactive consumers: one observable source of truth for the active locale,
// shared by a client-side store, a context-based accessor, and a per-request
// server-side resolution path.
//
// # Components
//
//   - Runtime models the external message runtime: base locale, supported
//     locales, and swappable read/write strategies installed via
//     OverwriteGetLocale and OverwriteSetLocale.
//   - Store is the observable cell holding the active locale. Subscribers
//     are re-invoked synchronously on every write; Watch exposes the same
//     stream as a channel.
//   - Bridge binds a Store to a Runtime for client-side use: it seeds the
//     store from the runtime's native resolution, installs a read override
//     backed by the live store, and exposes the public setter.
//   - Resolve derives a locale per incoming request (cookie, then
//     Accept-Language, then base) into a RequestScope; Middleware wires that
//     into net/http.
//   - InstallServerResolution redirects the runtime's read override to the
//     current request scope during server-side rendering.
//
// # Override authority
//
// A Runtime holds exactly one active read strategy. NewBridge and
// InstallServerResolution both install one, so the last installer wins on a
// given Runtime instance. Client and server paths must therefore use
// separate Runtime instances, or sequence installation so the override
// matching the current execution context is installed last. A process that
// only ever serves requests installs the server override once at startup; a
// process embedding the client bridge never calls InstallServerResolution.
//
// # Request isolation
//
// The resolved server-side locale lives in a RequestScope carried by the
// request context and nowhere else. Concurrent requests each own their
// scope, so no locking and no process-wide mutable locale is involved.
package locale
