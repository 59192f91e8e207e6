package historyview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

// entriesMsg carries the loaded history entries.
type entriesMsg struct {
	Entries []history.Entry
	Err     error
}

// clearedMsg is sent after the log has been wiped.
type clearedMsg struct {
	Err error
}

// HistoryScreen lists past sessions with replay actions.
type HistoryScreen struct {
	state    *session.State
	log      *history.Log
	uiLang   i18n.Lang
	entries  []history.Entry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(state *session.State, log *history.Log, uiLang i18n.Lang) *HistoryScreen {
	return &HistoryScreen{state: state, log: log, uiLang: uiLang}
}

func (s *HistoryScreen) Title() string {
	return "Past Sessions"
}

func (s *HistoryScreen) Init() tea.Cmd {
	log := s.log
	return func() tea.Msg {
		if err := log.Load(context.Background()); err != nil {
			return entriesMsg{Err: err}
		}
		return entriesMsg{Entries: log.Display()}
	}
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if len(s.entries) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Entry"},
		{Key: "R", Description: "Redo all"},
		{Key: "I", Description: "Redo missed"},
		{Key: "F", Description: "Flashcards"},
		{Key: "X", Description: "Flash missed"},
		{Key: "C", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		if s.selected >= len(s.entries) {
			s.selected = 0
		}
		return s, nil

	case clearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.entries = nil
		s.selected = 0
		return s, router.Notice(i18n.T(s.uiLang, i18n.MsgHistoryCleared))

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	case "r":
		if e, ok := s.current(); ok {
			s.state.Reseed(e.Vocab, session.StageConfig)
			return s, router.GoTo(session.StageConfig)
		}
	case "i":
		return s.redoIncorrect(session.StageConfig)
	case "f":
		if e, ok := s.current(); ok {
			s.state.Reseed(e.Vocab, session.StageFlashcard)
			return s, router.GoTo(session.StageFlashcard)
		}
	case "x":
		return s.redoIncorrect(session.StageFlashcard)
	case "c":
		log := s.log
		return s, func() tea.Msg {
			return clearedMsg{Err: log.Clear(context.Background())}
		}
	}
	return s, nil
}

func (s *HistoryScreen) current() (history.Entry, bool) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return history.Entry{}, false
	}
	return s.entries[s.selected], true
}

// redoIncorrect reseeds with only the missed words. An entry with no
// missed words shows a warning instead of starting an empty session.
func (s *HistoryScreen) redoIncorrect(to session.Stage) (screen.Screen, tea.Cmd) {
	e, ok := s.current()
	if !ok {
		return s, nil
	}
	words := e.IncorrectWords()
	if len(words) == 0 {
		return s, router.Notice(i18n.T(s.uiLang, i18n.MsgNoIncorrect))
	}
	s.state.Reseed(words, to)
	return s, router.GoTo(to)
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Failed to load history: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.entries) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No sessions yet. Finish a quiz to record one."))
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Past Sessions"))
	sections = append(sections, "")

	for i, e := range s.entries {
		score := e.Score()
		scoreStyle := theme.Correct
		if score < 60 {
			scoreStyle = theme.Incorrect
		}
		line := fmt.Sprintf("%s  %s  (%d words)",
			e.Timestamp,
			scoreStyle.Render(fmt.Sprintf("%3d%%", score)),
			len(e.Vocab),
		)
		if i == s.selected {
			sections = append(sections, theme.Selected.Render("  ▸ "+line))
			words := lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("      " + strings.Join(e.Vocab, ", "))
			sections = append(sections, words)
		} else {
			sections = append(sections, theme.Unselected.Render("    "+line))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
