package vocab

import (
	"sort"
	"strings"
	"unicode"
)

// List is the learner's current working set of words. Insertion order is
// preserved for display. Repeats are allowed; deduplication is a display
// concern, not a data one.
type List []string

// Normalize lowercases a raw token and reports whether it is a usable
// word (non-empty and composed of letters only).
func Normalize(raw string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if w == "" {
		return "", false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return w, true
}

// Parse splits free-form input on commas and whitespace and returns the
// normalized words, skipping tokens that do not survive Normalize.
func Parse(input string) List {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var out List
	for _, f := range fields {
		if w, ok := Normalize(f); ok {
			out = append(out, w)
		}
	}
	return out
}

// Add appends a normalized word. The second return reports whether the
// raw token was accepted.
func (l List) Add(raw string) (List, bool) {
	w, ok := Normalize(raw)
	if !ok {
		return l, false
	}
	return append(l, w), true
}

// RemoveAt returns the list without the element at index i.
// Out-of-range indexes are a no-op.
func (l List) RemoveAt(i int) List {
	if i < 0 || i >= len(l) {
		return l
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Clone returns an independent copy. Used when snapshotting into a
// history entry so later edits cannot mutate the record.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Sorted returns a sorted copy. Word-set identity (history dedup) is
// computed over this form so ordering differences don't matter.
func (l List) Sorted() []string {
	out := make([]string, len(l))
	copy(out, l)
	sort.Strings(out)
	return out
}
