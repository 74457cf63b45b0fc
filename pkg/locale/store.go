package locale

import (
	"context"
	"sync"
)

// watchBufferSize bounds each watcher channel. Watchers only care about the
// latest locale, so dropped intermediate values are acceptable.
const watchBufferSize = 4

// Store is the observable cell holding the active locale. It is the single
// reactive source of truth on the client side: reads go through Get,
// writes happen only via the owning Bridge and are published synchronously
// to every subscriber.
//
// All methods are safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	value     string
	observers map[int]func(string)
	nextID    int
	watchers  map[chan string]struct{}
}

// NewStore creates a store seeded with initial.
func NewStore(initial string) *Store {
	return &Store{
		value:     initial,
		observers: make(map[int]func(string)),
		watchers:  make(map[chan string]struct{}),
	}
}

// Get returns the current locale. Calling Get inside a subscriber callback
// is allowed and observes the value being published.
func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Subscribe registers fn to run synchronously on every write, in the
// writer's goroutine. The returned function cancels the subscription and is
// safe to call more than once.
func (s *Store) Subscribe(fn func(locale string)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Watch returns a channel receiving every locale written after the call.
// Sends never block: a watcher that falls behind loses intermediate values,
// not the subscription. The channel is closed and the watcher removed when
// ctx is cancelled.
func (s *Store) Watch(ctx context.Context) <-chan string {
	ch := make(chan string, watchBufferSize)

	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		if _, ok := s.watchers[ch]; ok {
			delete(s.watchers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}()

	return ch
}

// set writes a new value and publishes it. Only the bridge calls set, which
// is what keeps "writable only through the bridge" true.
func (s *Store) set(locale string) {
	s.mu.Lock()
	s.value = locale

	observers := make([]func(string), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	for ch := range s.watchers {
		select {
		case ch <- locale:
		default:
		}
	}
	s.mu.Unlock()

	// Callbacks run outside the lock so they may call Get or Subscribe.
	for _, fn := range observers {
		fn(locale)
	}
}
