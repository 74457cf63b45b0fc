package catalog

// MessageFunc produces a localized string for the currently active locale.
// Implementations read the locale at call time, never at construction time.
type MessageFunc func() string

// Catalog maps message keys to compiled message functions.
type Catalog map[string]MessageFunc

// Has reports whether key resolves to a message function.
func (c Catalog) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Keys returns the number of messages in the catalog.
func (c Catalog) Len() int {
	return len(c)
}

// FromTranslations builds a Catalog from parsed translation sources.
//
// The read function supplies the active locale on every message call, which
// is what makes the produced functions reactive: a consumer that re-invokes
// them after a locale change observes the new translation. Lookup order per
// call is the active locale, then base, then the key itself.
func FromTranslations(read func() string, byLocale map[string]map[string]string, base string) Catalog {
	keys := make(map[string]struct{})
	for _, messages := range byLocale {
		for key := range messages {
			keys[key] = struct{}{}
		}
	}

	c := make(Catalog, len(keys))
	for key := range keys {
		c[key] = func() string {
			if messages, ok := byLocale[read()]; ok {
				if msg, ok := messages[key]; ok {
					return msg
				}
			}
			if messages, ok := byLocale[base]; ok {
				if msg, ok := messages[key]; ok {
					return msg
				}
			}
			return key
		}
	}
	return c
}
