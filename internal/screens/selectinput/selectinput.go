package selectinput

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/ui/components"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

// SelectScreen is the entry screen: pick test or flashcard mode, or jump
// to the guide or past sessions.
type SelectScreen struct {
	state *session.State
	menu  components.Menu
}

var _ screen.Screen = (*SelectScreen)(nil)
var _ screen.KeyHintProvider = (*SelectScreen)(nil)

// New creates the select screen bound to the session state.
func New(state *session.State) *SelectScreen {
	s := &SelectScreen{state: state}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Vocabulary Test", Action: func() tea.Cmd {
			state.Mode = session.ModeTest
			return router.GoTo(session.StageInput)
		}},
		{Label: "Flashcards", Action: func() tea.Cmd {
			state.Mode = session.ModeFlashcard
			return router.GoTo(session.StageInput)
		}},
		{Label: "How to Use", Action: func() tea.Cmd {
			return router.GoTo(session.StageHowto)
		}},
		{Label: "Past Sessions", Action: func() tea.Cmd {
			return router.EnterHistory()
		}},
	})
	return s
}

func (s *SelectScreen) Title() string {
	return "Welcome"
}

func (s *SelectScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SelectScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("LexBot"))
	sections = append(sections, theme.Subtitle.Render("Learn vocabulary with quizzes and flashcards"))
	sections = append(sections, "")
	sections = append(sections, s.menu.View())

	direction := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Direction: " + s.state.Direction.Label())
	sections = append(sections, direction)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
