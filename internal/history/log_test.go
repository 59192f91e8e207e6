package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/ryuki04/lexbot/internal/vocab"
)

func testLog(t *testing.T) *Log {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	l := NewLog(s.HistoryRepo(), "tester")
	require.NoError(t, l.Load(context.Background()))
	return l
}

func quizFor(words ...string) []quizgen.Item {
	items := make([]quizgen.Item, len(words))
	for i, w := range words {
		items[i] = quizgen.Item{Question: "meaning of " + w + "?", CorrectAnswer: w}
	}
	return items
}

func TestAppendPersistsAcrossLoads(t *testing.T) {
	l := testLog(t)
	ctx := context.Background()

	_, err := l.Append(ctx, vocab.List{"sun"}, quizFor("sun"), []grading.Answer{{Answer: "moon"}})
	require.NoError(t, err)

	require.NoError(t, l.Load(ctx))
	require.Len(t, l.Entries(), 1)
	assert.Equal(t, vocab.List{"sun"}, l.Entries()[0].Vocab)
}

func TestDisplayDeduplicatesSameTimestampAndWordSet(t *testing.T) {
	l := testLog(t)
	ctx := context.Background()

	// Same timestamp, same word set in a different order.
	l.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	_, err := l.Append(ctx, vocab.List{"cat", "dog"}, quizFor("cat", "dog"), []grading.Answer{{Answer: "cat"}, {Answer: "dog"}})
	require.NoError(t, err)
	_, err = l.Append(ctx, vocab.List{"dog", "cat"}, quizFor("dog", "cat"), []grading.Answer{{Answer: "dog"}, {Answer: "cat"}})
	require.NoError(t, err)

	assert.Len(t, l.Entries(), 2, "append never drops records")
	assert.Len(t, l.Display(), 1, "display dedups by identity")
}

func TestDisplayMostRecentFirst(t *testing.T) {
	l := testLog(t)
	ctx := context.Background()

	ts := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return ts }
	_, err := l.Append(ctx, vocab.List{"a"}, quizFor("a"), []grading.Answer{{Answer: "a"}})
	require.NoError(t, err)

	l.now = func() time.Time { return ts.Add(time.Minute) }
	_, err = l.Append(ctx, vocab.List{"b"}, quizFor("b"), []grading.Answer{{Answer: "b"}})
	require.NoError(t, err)

	display := l.Display()
	require.Len(t, display, 2)
	assert.Equal(t, vocab.List{"b"}, display[0].Vocab)
	assert.Equal(t, vocab.List{"a"}, display[1].Vocab)
}

func TestClearEmptiesLogAndStore(t *testing.T) {
	l := testLog(t)
	ctx := context.Background()

	_, err := l.Append(ctx, vocab.List{"a"}, quizFor("a"), []grading.Answer{{Answer: "a"}})
	require.NoError(t, err)

	require.NoError(t, l.Clear(ctx))
	assert.Empty(t, l.Entries())

	require.NoError(t, l.Load(ctx))
	assert.Empty(t, l.Entries())
}

func TestScoreDerivation(t *testing.T) {
	e := Entry{
		Vocab: vocab.List{"sun", "moon"},
		Quiz:  quizFor("sun", "moon"),
		Answers: []grading.Answer{
			{Answer: "  SUN "},  // case and whitespace insensitive
			{Answer: "planet"}, // wrong
		},
	}

	assert.Equal(t, 50, e.Score())
	assert.Equal(t, e.Score(), e.Score(), "recomputation is stable")
}

func TestScoreEmptyQuizIsZero(t *testing.T) {
	assert.Equal(t, 0, Entry{}.Score())
}

func TestIncorrectWordsKeepsEncounterOrder(t *testing.T) {
	e := Entry{
		Vocab: vocab.List{"sun", "moon", "star"},
		Quiz:  quizFor("sun", "moon", "star"),
		Answers: []grading.Answer{
			{Answer: "wrong"},
			{Answer: "moon"},
			{Answer: "also wrong"},
		},
	}
	assert.Equal(t, vocab.List{"sun", "star"}, e.IncorrectWords())
}

func TestIncorrectWordsMissingAnswersCountIncorrect(t *testing.T) {
	e := Entry{
		Vocab:   vocab.List{"sun"},
		Quiz:    quizFor("sun"),
		Answers: nil,
	}
	assert.Equal(t, vocab.List{"sun"}, e.IncorrectWords())
	assert.Equal(t, 0, e.Score())
}

func TestIdentityIgnoresWordOrder(t *testing.T) {
	a := Entry{Timestamp: "2026-08-29 12:00:00", Vocab: vocab.List{"cat", "dog"}}
	b := Entry{Timestamp: "2026-08-29 12:00:00", Vocab: vocab.List{"dog", "cat"}}
	c := Entry{Timestamp: "2026-08-29 12:00:01", Vocab: vocab.List{"cat", "dog"}}

	assert.Equal(t, a.Identity(), b.Identity())
	assert.NotEqual(t, a.Identity(), c.Identity())
}
