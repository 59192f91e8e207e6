package config

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/vocab"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testConfigScreen(responses ...llm.MockResponse) (*ConfigScreen, *session.State) {
	state := session.NewState()
	state.Vocab = vocab.List{"sun", "moon"}
	gen := quizgen.New(llm.NewMockProvider(responses...), quizgen.DefaultConfig())
	return New(state, gen, i18n.English), state
}

func goodQuiz() llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(`[{"question":"What is the Japanese meaning of \"sun\"?","correctAnswer":"太陽","options":["月","太陽","水"]}]`),
	}
}

func TestConfigScreenTitle(t *testing.T) {
	s, _ := testConfigScreen()
	assert.Equal(t, "Quiz Setup", s.Title())
}

func TestCountClampsToVocabSize(t *testing.T) {
	s, _ := testConfigScreen()
	s.row = rowCount

	for i := 0; i < 5; i++ {
		s.adjust(1)
	}
	assert.Equal(t, 2, s.count)

	for i := 0; i < 10; i++ {
		s.adjust(-1)
	}
	assert.Equal(t, 1, s.count)
}

func TestGenerateSuccessCommitsQuiz(t *testing.T) {
	s, state := testConfigScreen(goodQuiz())
	s.row = rowGenerate

	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*ConfigScreen)
	require.NotNil(t, cmd)
	assert.True(t, s.generating)

	msg := cmd()
	updated2, goCmd := s.Update(msg)
	s = updated2.(*ConfigScreen)

	require.Len(t, state.Quiz, 1)
	assert.Equal(t, "太陽", state.Quiz[0].CorrectAnswer)
	assert.Equal(t, session.StageQuiz, state.Stage())
	assert.Len(t, state.Answers, 1)
	assert.Nil(t, state.Result)

	require.NotNil(t, goCmd)
	goTo, ok := goCmd().(router.GoToMsg)
	require.True(t, ok)
	assert.Equal(t, session.StageQuiz, goTo.Stage)
}

func TestQuotaFailureStaysOnConfig(t *testing.T) {
	s, state := testConfigScreen(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	s.row = rowGenerate
	before := state.Stage()

	updated, cmd := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*ConfigScreen)
	require.NotNil(t, cmd)

	msg := cmd()
	updated2, noticeCmd := s.Update(msg)
	s = updated2.(*ConfigScreen)

	assert.Empty(t, state.Quiz, "failed generation must not commit")
	assert.Equal(t, before, state.Stage())
	assert.False(t, s.generating)

	require.NotNil(t, noticeCmd)
	notice, ok := noticeCmd().(router.NoticeMsg)
	require.True(t, ok)
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgQuotaExceeded), notice.Text)
}

func TestGenerateWithEmptyVocabNotices(t *testing.T) {
	state := session.NewState()
	gen := quizgen.New(llm.NewMockProvider(goodQuiz()), quizgen.DefaultConfig())
	s := New(state, gen, i18n.English)
	s.row = rowGenerate

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	notice, ok := cmd().(router.NoticeMsg)
	require.True(t, ok)
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgEmptyVocab), notice.Text)
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	s, _ := testConfigScreen(goodQuiz())
	s.generating = true
	s.row = rowFormat

	updated, _ := s.Update(specialKey(tea.KeyDown))
	s = updated.(*ConfigScreen)
	assert.Equal(t, rowFormat, s.row)
}
