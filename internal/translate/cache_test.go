package translate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
)

func TestTranslateMemoizesServiceCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("りんご"),
	})
	tr := New(mock, NewCache())
	ctx := context.Background()

	// "grape" is not in the static table, so the first call hits the service.
	first, err := tr.Translate(ctx, "grape", i18n.Japanese)
	require.NoError(t, err)
	assert.Equal(t, "りんご", first)

	second, err := tr.Translate(ctx, "grape", i18n.Japanese)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, mock.CallCount(), "second lookup must be memoized")
}

func TestTranslateStaticTableTakesPrecedence(t *testing.T) {
	mock := llm.NewMockProvider()
	tr := New(mock, NewCache())

	got, err := tr.Translate(context.Background(), "apple", i18n.Japanese)
	require.NoError(t, err)
	assert.Equal(t, "りんご", got)
	assert.Zero(t, mock.CallCount(), "static lookup must not call the service")
}

func TestTranslateDistinctLanguagesCachedSeparately(t *testing.T) {
	c := NewCache()
	c.Put("grape", i18n.Japanese, "ぶどう")

	_, ok := c.Get("grape", i18n.Spanish)
	assert.False(t, ok)

	v, ok := c.Get("grape", i18n.Japanese)
	assert.True(t, ok)
	assert.Equal(t, "ぶどう", v)
}

func TestCacheEmptyValueIsMiss(t *testing.T) {
	c := NewCache()
	c.Put("grape", i18n.Japanese, "")
	_, ok := c.Get("grape", i18n.Japanese)
	assert.False(t, ok, "placeholder must not suppress a real lookup")
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Put("grape", i18n.Japanese, "ぶどう")
	c.Clear()
	assert.Zero(t, c.Len())
}

func TestTranslateFailurePropagatesUncached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		llm.MockResponse{Content: json.RawMessage("ぶどう")},
	)
	tr := New(mock, NewCache())
	ctx := context.Background()

	_, err := tr.Translate(ctx, "grape", i18n.Japanese)
	var rl *llm.ErrRateLimit
	require.ErrorAs(t, err, &rl)

	// A failed lookup is not memoized; the retry reaches the service.
	got, err := tr.Translate(ctx, "grape", i18n.Japanese)
	require.NoError(t, err)
	assert.Equal(t, "ぶどう", got)
}

func TestCleanTranslation(t *testing.T) {
	assert.Equal(t, "りんご", cleanTranslation("\"りんご\"\n"))
	assert.Equal(t, "sol", cleanTranslation("```\nsol\n```"))
	assert.Equal(t, "sol", cleanTranslation("sol\nThe Spanish word for sun."))
}
