package locale

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamLocale serves a datastar SSE stream that re-renders a fragment
// whenever the store publishes a new locale. The current fragment is pushed
// immediately, then once per locale change until the client disconnects.
//
// render receives the active locale and returns the HTML fragment to patch;
// message functions called inside it observe that locale.
func StreamLocale(w http.ResponseWriter, r *http.Request, store *Store, render func(locale string) string) error {
	sse := datastar.NewSSE(w, r)

	// Watch before the initial render so a change landing in between is
	// delivered rather than lost.
	changes := store.Watch(r.Context())

	if err := sse.PatchElements(render(store.Get())); err != nil {
		return err
	}
	for {
		select {
		case <-r.Context().Done():
			return nil
		case loc, ok := <-changes:
			if !ok {
				return nil
			}
			if err := sse.PatchElements(render(loc)); err != nil {
				return err
			}
		}
	}
}
