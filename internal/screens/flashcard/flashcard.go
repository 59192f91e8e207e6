package flashcard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/translate"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

// translationMsg is sent when an on-demand translation finishes.
type translationMsg struct {
	Word string
	Text string
	Err  error
}

// FlashcardScreen flips through the word list, translating each word on
// first flip. Repeat flips hit the session cache.
type FlashcardScreen struct {
	state      *session.State
	translator *translate.Translator
	uiLang     i18n.Lang
	index      int
	flipped    bool
	loading    bool
	back       string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New creates the flashcard screen.
func New(state *session.State, translator *translate.Translator, uiLang i18n.Lang) *FlashcardScreen {
	return &FlashcardScreen{
		state:      state,
		translator: translator,
		uiLang:     uiLang,
	}
}

func (s *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Card"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case translationMsg:
		return s.handleTranslation(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "space", "enter":
			return s.flip()
		case "right", "l", "n":
			if s.index < len(s.state.Vocab)-1 {
				s.index++
				s.resetCard()
			}
		case "left", "h", "p":
			if s.index > 0 {
				s.index--
				s.resetCard()
			}
		case "ctrl+h":
			return s, router.EnterHistory()
		}
	}
	return s, nil
}

func (s *FlashcardScreen) resetCard() {
	s.flipped = false
	s.loading = false
	s.back = ""
}

// flip shows the translation side, requesting it if the memo has no
// value yet.
func (s *FlashcardScreen) flip() (screen.Screen, tea.Cmd) {
	if s.index >= len(s.state.Vocab) || s.loading {
		return s, nil
	}
	if s.flipped {
		s.flipped = false
		return s, nil
	}

	word := s.state.Vocab[s.index]
	target := s.state.Direction.To

	if v, ok := s.state.Cache.Get(word, target); ok {
		s.flipped = true
		s.back = v
		return s, nil
	}

	s.loading = true
	translator := s.translator
	return s, func() tea.Msg {
		text, err := translator.Translate(context.Background(), word, target)
		return translationMsg{Word: word, Text: text, Err: err}
	}
}

func (s *FlashcardScreen) handleTranslation(msg translationMsg) (screen.Screen, tea.Cmd) {
	s.loading = false

	if msg.Err != nil {
		var rateLimit *llm.ErrRateLimit
		if errors.As(msg.Err, &rateLimit) {
			return s, router.Notice(i18n.T(s.uiLang, i18n.MsgQuotaExceeded))
		}
		return s, router.Notice(i18n.T(s.uiLang, i18n.MsgDecodeError))
	}

	// Ignore a stale result if the learner already moved on.
	if s.index < len(s.state.Vocab) && s.state.Vocab[s.index] == msg.Word {
		s.flipped = true
		s.back = msg.Text
	}
	return s, nil
}

func (s *FlashcardScreen) View(width, height int) string {
	if len(s.state.Vocab) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(i18n.T(s.uiLang, i18n.MsgEmptyVocab)))
	}

	word := s.state.Vocab[s.index]

	var face string
	switch {
	case s.loading:
		face = theme.Hint.Render("translating...")
	case s.flipped:
		face = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.back)
	default:
		face = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(word)
	}

	card := theme.Card.Width(40).Align(lipgloss.Center).Render(face)

	var sections []string
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf("Card %d of %d", s.index+1, len(s.state.Vocab))))
	sections = append(sections, "")
	sections = append(sections, card)
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render(s.state.Direction.Label()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
