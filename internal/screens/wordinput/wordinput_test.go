package wordinput

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func typeString(s *InputScreen, text string) *InputScreen {
	for _, r := range text {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*InputScreen)
	}
	return s
}

func TestTitleFollowsMode(t *testing.T) {
	state := session.NewState()
	s := New(state, i18n.English)
	assert.Equal(t, "Test Words", s.Title())

	state.Mode = session.ModeFlashcard
	assert.Equal(t, "Flashcard Words", s.Title())
}

func TestEnterAddsTypedWord(t *testing.T) {
	state := session.NewState()
	s := New(state, i18n.English)

	s = typeString(s, "Apple")
	updated, _ := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*InputScreen)

	assert.Equal(t, vocab.List{"apple"}, state.Vocab)
	assert.Empty(t, s.input.Value(), "field resets after adding")
}

func TestPastedListIsSplitAndNormalized(t *testing.T) {
	state := session.NewState()
	s := typeString(New(state, i18n.English), "Sun, moon  star")
	updated, _ := s.Update(specialKey(tea.KeyEnter))
	_ = updated

	assert.Equal(t, vocab.List{"sun", "moon", "star"}, state.Vocab)
}

func TestRejectedInputShowsError(t *testing.T) {
	state := session.NewState()
	s := typeString(New(state, i18n.English), "123")
	updated, _ := s.Update(specialKey(tea.KeyEnter))
	s = updated.(*InputScreen)

	assert.Empty(t, state.Vocab)
	assert.Contains(t, s.errMsg, "no usable words")
}

func TestRemoveLastWord(t *testing.T) {
	state := session.NewState()
	state.Vocab = vocab.List{"sun", "moon"}
	s := New(state, i18n.English)

	updated, _ := s.Update(ctrlKey('d'))
	_ = updated

	assert.Equal(t, vocab.List{"sun"}, state.Vocab)
}

func TestDirectionCycles(t *testing.T) {
	state := session.NewState()
	s := New(state, i18n.English)
	start := state.Direction

	for range i18n.Directions {
		updated, _ := s.Update(ctrlKey('l'))
		s = updated.(*InputScreen)
	}

	assert.Equal(t, start, state.Direction, "a full cycle returns to the start")
}

func TestDoneWithEmptyVocabNotices(t *testing.T) {
	state := session.NewState()
	s := New(state, i18n.English)

	_, cmd := s.Update(specialKey(tea.KeyTab))
	require.NotNil(t, cmd)
	notice, ok := cmd().(router.NoticeMsg)
	require.True(t, ok)
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgEmptyVocab), notice.Text)
}

func TestDoneRoutesByMode(t *testing.T) {
	state := session.NewState()
	state.Vocab = vocab.List{"sun"}
	s := New(state, i18n.English)

	_, cmd := s.Update(specialKey(tea.KeyTab))
	require.NotNil(t, cmd)
	goTo, ok := cmd().(router.GoToMsg)
	require.True(t, ok)
	assert.Equal(t, session.StageConfig, goTo.Stage)

	state.Mode = session.ModeFlashcard
	_, cmd = s.Update(specialKey(tea.KeyTab))
	goTo = cmd().(router.GoToMsg)
	assert.Equal(t, session.StageFlashcard, goTo.Stage)
}
