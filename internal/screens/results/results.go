package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/ui/components"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

// ResultsScreen shows the grade and offers replay actions.
type ResultsScreen struct {
	state  *session.State
	uiLang i18n.Lang
	menu   components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen.
func New(state *session.State, uiLang i18n.Lang) *ResultsScreen {
	s := &ResultsScreen{state: state, uiLang: uiLang}

	incorrect := s.incorrectWords()

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Retry all words", Action: func() tea.Cmd {
			state.Reseed(state.Vocab, session.StageConfig)
			return router.GoTo(session.StageConfig)
		}},
		{Label: "Retry incorrect only", Disabled: len(incorrect) == 0, Action: func() tea.Cmd {
			words := s.incorrectWords()
			if len(words) == 0 {
				return router.Notice(i18n.T(uiLang, i18n.MsgNoIncorrect))
			}
			state.Reseed(words, session.StageConfig)
			return router.GoTo(session.StageConfig)
		}},
		{Label: "Review as flashcards", Action: func() tea.Cmd {
			state.Reseed(state.Vocab, session.StageFlashcard)
			return router.GoTo(session.StageFlashcard)
		}},
		{Label: "Past sessions", Action: func() tea.Cmd {
			return router.EnterHistory()
		}},
		{Label: "Start over", Action: func() tea.Cmd {
			return router.StartOver()
		}},
	})
	return s
}

// incorrectWords derives the missed words by comparing stored answers to
// the answer key, in encounter order.
func (s *ResultsScreen) incorrectWords() []string {
	entry := history.Entry{
		Vocab:   s.state.Vocab,
		Quiz:    s.state.Quiz,
		Answers: s.state.Answers,
	}
	return entry.IncorrectWords()
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	result := s.state.Result
	if result == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No result yet."))
	}

	var sections []string

	scoreStyle := theme.Correct
	if result.ScorePercentage < 60 {
		scoreStyle = theme.Incorrect
	}
	sections = append(sections, theme.Title.Render("Your Score"))
	sections = append(sections, scoreStyle.Render(fmt.Sprintf("%d%%", result.ScorePercentage)))
	sections = append(sections, "")

	if len(result.Incorrect) > 0 {
		sections = append(sections, theme.Body.Render("Missed questions:"))
		for _, item := range result.Incorrect {
			line := fmt.Sprintf("  %s\n    you: %s (%s)\n    correct: %s (%s)\n    %s",
				item.Question,
				item.YourAnswer, item.YourAnswerMeaning,
				item.CorrectAnswer, item.CorrectMeaning,
				item.Feedback,
			)
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		sections = append(sections, "")
	}

	if result.OverallFeedback != "" {
		sections = append(sections, theme.Card.Render(result.OverallFeedback))
		sections = append(sections, "")
	}

	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
