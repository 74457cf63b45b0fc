package locale

import "sync"

// Bridge binds a Store to a Runtime on the client side. It owns the store:
// the public setter is the only writer, and it keeps the runtime's
// persisted state and the store consistent as one logical operation.
type Bridge struct {
	rt    *Runtime
	store *Store

	mu      sync.Mutex
	lastSet string
}

// NewBridge constructs the client bridge for rt.
//
// The runtime's locale is read before any override is installed: that first
// read runs the runtime's one-time native initialization (e.g. resolving an
// existing cookie), which must complete under native resolution rather than
// against a not-yet-seeded store. The store is then seeded with the result
// and a read override backed by the live store is installed, so every later
// runtime read observes store writes.
func NewBridge(rt *Runtime) *Bridge {
	initial := rt.Locale()

	b := &Bridge{
		rt:      rt,
		store:   NewStore(initial),
		lastSet: initial,
	}

	// The closure reads the live store, not a snapshot; reading the store
	// inside the override is what ties reactive consumers to it.
	rt.OverwriteGetLocale(b.store.Get)

	return b
}

// Locale returns the store's current value.
func (b *Bridge) Locale() string {
	return b.store.Get()
}

// Store returns the bridge's store instance. Context providers must hand
// out this exact instance, never a copy.
func (b *Bridge) Store() *Store {
	return b.store
}

// SetLocale updates the runtime's persisted state and the store in one
// logical operation.
//
// Setting the value the bridge last set is a no-op: the store is untouched
// and the runtime's native setter is not invoked. Otherwise the last-set
// reference is updated before delegating, so the native setter's own change
// guard never reacts against a stale value; the native set runs without
// reload and performs its persistence side effects; the store is written
// last, publishing to every subscriber.
//
// If the native setter fails, the last-set reference is rolled back and the
// store is left unchanged, so a retry starts from consistent state and no
// half-persisted locale survives.
func (b *Bridge) SetLocale(locale string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if locale == b.lastSet {
		return nil
	}

	prev := b.lastSet
	b.lastSet = locale

	if err := b.rt.SetLocale(locale, WithoutReload()); err != nil {
		b.lastSet = prev
		return err
	}

	b.store.set(locale)
	return nil
}
