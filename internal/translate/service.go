package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
)

const systemPrompt = `You translate single vocabulary words for a language learner.
Respond with the translation only: one word or short phrase, no quotes, no explanation.`

// Translator resolves word translations for the flashcard path:
// session cache first, then the static table, and only then the
// external service.
type Translator struct {
	provider llm.Provider
	cache    *Cache
}

// New creates a Translator over the given provider and session cache.
func New(provider llm.Provider, cache *Cache) *Translator {
	return &Translator{provider: provider, cache: cache}
}

// Translate returns the translation of word into lang, memoizing the
// result. At most one service call is ever made per (word, lang) pair
// within a session.
func (t *Translator) Translate(ctx context.Context, word string, lang i18n.Lang) (string, error) {
	if v, ok := t.cache.Get(word, lang); ok {
		return v, nil
	}

	if v, ok := staticLookup(word, lang); ok {
		t.cache.Put(word, lang, v)
		return v, nil
	}

	if t.provider == nil {
		return "", fmt.Errorf("no translation available for %q", word)
	}

	ctx = llm.WithPurpose(ctx, "translate")

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Translate %q into %s.", word, lang.Name())},
		},
		MaxTokens: 64,
	})
	if err != nil {
		return "", err
	}

	v := cleanTranslation(string(resp.Content))
	if v == "" {
		return "", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("empty translation for %q", word),
		}
	}

	t.cache.Put(word, lang, v)
	return v, nil
}

// cleanTranslation strips the quoting and fencing models sometimes add
// around a bare word.
func cleanTranslation(raw string) string {
	s := strings.TrimSpace(llm.ExtractJSON(raw))
	s = strings.Trim(s, `"'`)
	// Keep only the first line if the model got chatty.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
