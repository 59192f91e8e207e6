package quiz

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/ryuki04/lexbot/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T, format quizgen.Format, responses ...llm.MockResponse) (*QuizScreen, *session.State, *history.Log) {
	t.Helper()

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	state := session.NewState()
	state.Vocab = vocab.List{"sun"}

	items := []quizgen.Item{{
		Question:      "What is the Japanese meaning of \"sun\"?",
		CorrectAnswer: "太陽",
	}}
	if format == quizgen.FormatMultipleChoice {
		items[0].Options = []string{"月", "太陽", "水"}
	}
	state.SetQuiz(items, format, quizgen.KindTranslation)

	log := history.NewLog(st.HistoryRepo(), "tester")
	require.NoError(t, log.Load(t.Context()))

	grader := grading.New(llm.NewMockProvider(responses...), grading.DefaultConfig())
	return New(state, grader, log, i18n.English), state, log
}

func goodGrade() llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(`{"scorePercentage":100,"incorrect":[],"overallFeedback":"Well done."}`),
	}
}

// drive runs the screen's pending command chain until it produces no
// further message.
func drive(t *testing.T, s *QuizScreen, cmd tea.Cmd) *QuizScreen {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return s
		}
		if _, ok := msg.(router.GoToMsg); ok {
			return s
		}
		updated, next := s.Update(msg)
		s = updated.(*QuizScreen)
		cmd = next
	}
	return s
}

func TestQuizScreenTitle(t *testing.T) {
	s, _, _ := testQuizScreen(t, quizgen.FormatFreeText, goodGrade())
	assert.Equal(t, "Quiz", s.Title())
}

func TestFreeTextAnswerGradesAndRecordsHistory(t *testing.T) {
	s, state, log := testQuizScreen(t, quizgen.FormatFreeText, goodGrade())

	for _, r := range "taiyou" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*QuizScreen)
	}
	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*QuizScreen)
	require.NotNil(t, cmd)
	drive(t, s, cmd)

	require.NotNil(t, state.Result)
	assert.Equal(t, 100, state.Result.ScorePercentage)
	assert.Equal(t, grading.Answer{Answer: "taiyou"}, state.Answers[0])
	assert.Len(t, log.Entries(), 1, "first successful grade records one attempt")
}

func TestMultipleChoiceSelectsHighlightedOption(t *testing.T) {
	s, state, _ := testQuizScreen(t, quizgen.FormatMultipleChoice, goodGrade())

	updated, _ := s.Update(specialKey(tea.KeyDown))
	s = updated.(*QuizScreen)
	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*QuizScreen)
	drive(t, s, cmd)

	assert.Equal(t, grading.Answer{Answer: "太陽"}, state.Answers[0])
}

func TestQuotaFailureCommitsNothing(t *testing.T) {
	s, state, log := testQuizScreen(t, quizgen.FormatFreeText,
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)

	for _, r := range "x" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*QuizScreen)
	}
	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*QuizScreen)
	require.NotNil(t, cmd)

	msg := cmd()
	updated2, noticeCmd := s.Update(msg)
	s = updated2.(*QuizScreen)

	assert.Nil(t, state.Result, "quota failure must not commit a result")
	assert.Empty(t, log.Entries(), "quota failure must not record history")
	require.NotNil(t, noticeCmd)
	notice, ok := noticeCmd().(router.NoticeMsg)
	require.True(t, ok)
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgQuotaExceeded), notice.Text)
}

func TestDecodeFailureCommitsSentinelWithoutHistory(t *testing.T) {
	s, state, log := testQuizScreen(t, quizgen.FormatFreeText,
		llm.MockResponse{Content: json.RawMessage("this is not json")},
	)

	for _, r := range "x" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*QuizScreen)
	}
	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*QuizScreen)
	require.NotNil(t, cmd)

	msg := cmd()
	_, _ = s.Update(msg)

	require.NotNil(t, state.Result)
	assert.True(t, state.Result.IsFailure(), "decode failure commits the sentinel")
	assert.Empty(t, log.Entries(), "sentinel grades are not recorded")
}

func TestHistoryWriteFailureStillShowsResults(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)

	state := session.NewState()
	state.Vocab = vocab.List{"sun"}
	state.SetQuiz([]quizgen.Item{{
		Question:      "What is the Japanese meaning of \"sun\"?",
		CorrectAnswer: "太陽",
	}}, quizgen.FormatFreeText, quizgen.KindTranslation)

	log := history.NewLog(st.HistoryRepo(), "tester")
	require.NoError(t, log.Load(t.Context()))

	grader := grading.New(llm.NewMockProvider(goodGrade()), grading.DefaultConfig())
	s := New(state, grader, log, i18n.English)

	// Kill the store so the history append fails while grading succeeds.
	require.NoError(t, st.Close())

	for _, r := range "x" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*QuizScreen)
	}
	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*QuizScreen)
	require.NotNil(t, cmd)

	msg := cmd()
	updated2, batchCmd := s.Update(msg)
	s = updated2.(*QuizScreen)

	require.NotNil(t, state.Result, "the grade is still committed")
	assert.Equal(t, 100, state.Result.ScorePercentage)
	assert.Empty(t, log.Entries(), "the failed append left nothing in memory")

	require.NotNil(t, batchCmd)
	batch, ok := batchCmd().(tea.BatchMsg)
	require.True(t, ok)

	var noticed, routed bool
	for _, c := range batch {
		switch m := c().(type) {
		case router.NoticeMsg:
			noticed = true
			assert.Equal(t, i18n.T(i18n.English, i18n.MsgHistoryNotSaved), m.Text)
		case router.GoToMsg:
			routed = true
			assert.Equal(t, session.StageResults, m.Stage)
		}
	}
	assert.True(t, noticed, "the learner is told the attempt was not saved")
	assert.True(t, routed, "results are still shown")
}

func TestExistingResultIsReused(t *testing.T) {
	s, state, log := testQuizScreen(t, quizgen.FormatFreeText)
	state.Result = &grading.Result{ScorePercentage: 80, Incorrect: []grading.IncorrectItem{}}

	for _, r := range "x" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*QuizScreen)
	}
	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*QuizScreen)
	require.NotNil(t, cmd)

	goTo, ok := cmd().(router.GoToMsg)
	require.True(t, ok, "existing result routes straight to results")
	assert.Equal(t, session.StageResults, goTo.Stage)
	assert.Equal(t, 80, state.Result.ScorePercentage)
	assert.Empty(t, log.Entries())
}
