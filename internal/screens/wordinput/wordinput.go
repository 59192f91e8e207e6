package wordinput

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/ui/components"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
	"github.com/ryuki04/lexbot/internal/vocab"
)

// InputScreen collects the working vocabulary. Words can be typed one at
// a time or pasted as a comma/space separated list.
type InputScreen struct {
	state  *session.State
	input  components.TextInput
	uiLang i18n.Lang
	errMsg string
}

var _ screen.Screen = (*InputScreen)(nil)
var _ screen.KeyHintProvider = (*InputScreen)(nil)

// New creates the word-input screen.
func New(state *session.State, uiLang i18n.Lang) *InputScreen {
	return &InputScreen{
		state:  state,
		uiLang: uiLang,
		input:  components.NewTextInput("Type a word and press Enter...", 40),
	}
}

func (s *InputScreen) Title() string {
	if s.state.Mode == session.ModeFlashcard {
		return "Flashcard Words"
	}
	return "Test Words"
}

func (s *InputScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *InputScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Add word"},
		{Key: "Ctrl+D", Description: "Remove last"},
		{Key: "Ctrl+L", Description: "Direction"},
		{Key: "Tab", Description: "Done"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InputScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s.addWords()

		case "ctrl+d":
			if n := len(s.state.Vocab); n > 0 {
				s.state.Vocab = s.state.Vocab.RemoveAt(n - 1)
			}
			return s, nil

		case "ctrl+l":
			s.state.Direction = nextDirection(s.state.Direction)
			return s, nil

		case "ctrl+h":
			return s, router.EnterHistory()

		case "tab":
			if len(s.state.Vocab) == 0 {
				return s, router.Notice(i18n.T(s.uiLang, i18n.MsgEmptyVocab))
			}
			return s, router.GoTo(s.state.AfterInput())
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// addWords parses the input field and appends every valid token.
func (s *InputScreen) addWords() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}

	parsed := vocab.Parse(raw)
	if len(parsed) == 0 {
		s.errMsg = fmt.Sprintf("%q has no usable words (letters only)", raw)
		return s, nil
	}

	s.errMsg = ""
	s.state.Vocab = append(s.state.Vocab, parsed...)
	s.input = components.NewTextInput("Type a word and press Enter...", 40)
	return s, s.input.Init()
}

func nextDirection(d i18n.Direction) i18n.Direction {
	for i, cand := range i18n.Directions {
		if cand == d {
			return i18n.Directions[(i+1)%len(i18n.Directions)]
		}
	}
	return i18n.DefaultDirection
}

func (s *InputScreen) View(width, height int) string {
	var sections []string

	mode := "test"
	if s.state.Mode == session.ModeFlashcard {
		mode = "flashcard"
	}
	sections = append(sections, theme.Title.Render(fmt.Sprintf("Enter words for your %s session", mode)))
	sections = append(sections, "")
	sections = append(sections, s.input.View())
	sections = append(sections, "")

	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
		sections = append(sections, "")
	}

	if len(s.state.Vocab) > 0 {
		wordStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		sections = append(sections, theme.Body.Render(fmt.Sprintf("Words (%d):", len(s.state.Vocab))))
		sections = append(sections, wordStyle.Render("  "+strings.Join(s.state.Vocab, ", ")))
	} else {
		sections = append(sections, theme.Hint.Render("No words yet."))
	}

	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Direction: "+s.state.Direction.Label()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
