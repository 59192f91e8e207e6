package grading

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
)

var testQuiz = []quizgen.Item{
	{Question: "What is the Spanish meaning of \"sun\"?", Options: []string{"sol", "luna"}, CorrectAnswer: "sun"},
}

func TestGradeAcceptsValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"scorePercentage": 0,
			"incorrect": [{"question": "q", "yourAnswer": "moon", "yourAnswerMeaning": "la luna", "correctAnswer": "sun", "correctMeaning": "el sol", "feedback": "Close!"}],
			"overallFeedback": "Keep going!"
		}`),
	})
	g := New(mock, DefaultConfig())

	res, err := g.Grade(context.Background(), testQuiz, []Answer{{Answer: "moon"}}, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ScorePercentage)
	require.Len(t, res.Incorrect, 1)
	assert.Equal(t, "sun", res.Incorrect[0].CorrectAnswer)
	assert.False(t, res.IsFailure())
}

func TestGradeFencedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```json\n{\"scorePercentage\": 100, \"overallFeedback\": \"perfect\"}\n```"),
	})
	g := New(mock, DefaultConfig())

	res, err := g.Grade(context.Background(), testQuiz, []Answer{{Answer: "sun"}}, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, 100, res.ScorePercentage)
	assert.Empty(t, res.Incorrect)
}

func TestGradeMissingFieldsYieldsSentinel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"scorePercentage": 50}`),
	})
	g := New(mock, DefaultConfig())

	res, err := g.Grade(context.Background(), testQuiz, []Answer{{Answer: "x"}}, i18n.English)
	var dec *ErrDecode
	require.ErrorAs(t, err, &dec)
	require.NotNil(t, res)
	assert.True(t, res.IsFailure())
	assert.Equal(t, 0, res.ScorePercentage)
	assert.Empty(t, res.Incorrect)
}

func TestGradeMalformedYieldsSentinelWithRaw(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I think they did great`),
	})
	g := New(mock, DefaultConfig())

	res, err := g.Grade(context.Background(), testQuiz, []Answer{{Answer: "x"}}, i18n.English)
	var dec *ErrDecode
	require.ErrorAs(t, err, &dec)
	assert.Contains(t, string(dec.Raw), "great")
	assert.True(t, res.IsFailure())
}

func TestGradeQuotaReturnsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := New(mock, DefaultConfig())

	res, err := g.Grade(context.Background(), testQuiz, []Answer{{Answer: "x"}}, i18n.English)
	var rl *llm.ErrRateLimit
	require.ErrorAs(t, err, &rl)
	assert.Nil(t, res, "no sentinel on quota failure")
}

func TestGradeRejectsMisalignedAnswers(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), testQuiz, nil, i18n.English)
	require.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestGradePromptEmbedsQuizAndLanguage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"scorePercentage": 100, "overallFeedback": "ok"}`),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), testQuiz, []Answer{{Answer: "sun"}}, i18n.Japanese)
	require.NoError(t, err)
	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, `"correctAnswer":"sun"`)
	assert.Contains(t, prompt, "Feedback language: Japanese")
}
