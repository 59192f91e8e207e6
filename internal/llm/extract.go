package llm

import "strings"

// ExtractJSON normalizes free-text LLM output into a JSON payload.
// Models sometimes wrap structured output in a markdown code fence even
// when asked not to; every response headed for a structural parse goes
// through here first.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Language tag on the opening fence ("json", "JSON", ...).
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		tag := strings.TrimSpace(s[:i])
		if tag == "" || isFenceTag(tag) {
			s = s[i+1:]
		}
	}

	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

func isFenceTag(tag string) bool {
	switch strings.ToLower(tag) {
	case "json", "javascript", "text":
		return true
	}
	return false
}
