package quizgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/vocab"
)

func testInput(words ...string) Input {
	return Input{
		Vocab:     vocab.List(words),
		Count:     len(words),
		Format:    FormatMultipleChoice,
		Kind:      KindTranslation,
		Direction: i18n.Direction{From: i18n.English, To: i18n.Spanish},
	}
}

func TestGenerateAcceptsValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"question": "What is the Spanish meaning of \"sun\"?", "options": ["sol", "luna", "mar", "cielo"], "correctAnswer": "sun"}]`),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput("sun"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sun", items[0].CorrectAnswer)
	assert.Len(t, items[0].Options, 4)

	// The request embeds exactly the word list and count.
	require.Equal(t, 1, mock.CallCount())
	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "sun")
	assert.Contains(t, prompt, "Number of items: 1")
}

func TestGenerateStripsMarkdownFence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```json\n[{\"question\": \"q\", \"correctAnswer\": \"a\"}]\n```"),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput("cat"))
	require.NoError(t, err)
	assert.Equal(t, "q", items[0].Question)
}

func TestGenerateRepairsMissingQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"correctAnswer": "gato"}, {"correctAnswer": "perro"}]`),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput("cat", "dog"))
	require.NoError(t, err)
	assert.Contains(t, items[0].Question, `"cat"`)
	assert.Contains(t, items[1].Question, `"dog"`)
}

func TestGenerateRejectsUnrepairableItem(t *testing.T) {
	// Three items for two words: the third has no positional word.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"correctAnswer": "a"}, {"correctAnswer": "b"}, {"correctAnswer": "c"}]`),
	})
	g := New(mock, DefaultConfig())

	in := testInput("cat", "dog")
	in.Count = 2
	_, err := g.Generate(context.Background(), in)
	require.ErrorIs(t, err, ErrUnrepairable)
}

func TestGenerateRejectsMissingAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"question": "q"}]`),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput("cat"))
	var inv *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`sorry, I can't do that`),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput("cat"))
	var inv *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestGenerateEmptyVocabularyRefused(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), Input{Count: 1})
	require.ErrorIs(t, err, ErrEmptyVocabulary)
	assert.Zero(t, mock.CallCount(), "service must not be invoked")
}

func TestGenerateBadCount(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	in := testInput("cat")
	in.Count = 2
	_, err := g.Generate(context.Background(), in)
	require.ErrorIs(t, err, ErrBadCount)

	in.Count = 0
	_, err = g.Generate(context.Background(), in)
	require.ErrorIs(t, err, ErrBadCount)
}

func TestGenerateQuotaErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput("cat"))
	var rl *llm.ErrRateLimit
	require.ErrorAs(t, err, &rl)
}

func TestPromptIncludesWorkedExample(t *testing.T) {
	in := Input{
		Vocab:     vocab.List{"apple"},
		Count:     1,
		Format:    FormatMultipleChoice,
		Kind:      KindTranslation,
		Direction: i18n.Direction{From: i18n.English, To: i18n.Japanese},
	}
	msg := buildUserMessage(in)
	assert.Contains(t, msg, "Example output:")
	assert.Contains(t, msg, "りんご")
}

func TestPromptToleratesUnsupportedPair(t *testing.T) {
	in := Input{
		Vocab:     vocab.List{"apple"},
		Count:     1,
		Format:    FormatFreeText,
		Kind:      KindFillBlank,
		Direction: i18n.Direction{From: i18n.Spanish, To: i18n.Japanese},
	}
	msg := buildUserMessage(in)
	assert.NotContains(t, msg, "Example output:")
}
