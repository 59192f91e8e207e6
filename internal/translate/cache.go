package translate

import "github.com/ryuki04/lexbot/internal/i18n"

// Key identifies one memoized translation.
type Key struct {
	Word string
	Lang i18n.Lang
}

// Cache memoizes word→translation lookups for the lifetime of a session.
// Entries never expire; only a full session reset clears them.
type Cache struct {
	m map[Key]string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[Key]string)}
}

// Get returns the memoized translation. Empty values count as misses so
// a placeholder never suppresses the real lookup.
func (c *Cache) Get(word string, lang i18n.Lang) (string, bool) {
	v, ok := c.m[Key{Word: word, Lang: lang}]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Put stores a translation.
func (c *Cache) Put(word string, lang i18n.Lang, translation string) {
	c.m[Key{Word: word, Lang: lang}] = translation
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return len(c.m)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.m = make(map[Key]string)
}
