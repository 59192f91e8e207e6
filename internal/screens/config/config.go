package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

const (
	rowFormat = iota
	rowKind
	rowCount
	rowGenerate
	rowMax
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Items []quizgen.Item
	Err   error
}

// ConfigScreen chooses the quiz format, question type and item count,
// then requests generation.
type ConfigScreen struct {
	state      *session.State
	generator  *quizgen.Generator
	uiLang     i18n.Lang
	row        int
	formatIdx  int
	kindIdx    int
	count      int
	generating bool
}

var _ screen.Screen = (*ConfigScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigScreen)(nil)

var formats = []quizgen.Format{quizgen.FormatMultipleChoice, quizgen.FormatFreeText}
var kinds = []quizgen.Kind{quizgen.KindTranslation, quizgen.KindFillBlank}

// New creates the config screen.
func New(state *session.State, generator *quizgen.Generator, uiLang i18n.Lang) *ConfigScreen {
	count := len(state.Vocab)
	if count == 0 {
		count = 1
	}
	return &ConfigScreen{
		state:     state,
		generator: generator,
		uiLang:    uiLang,
		count:     count,
	}
}

func (s *ConfigScreen) Title() string {
	return "Quiz Setup"
}

func (s *ConfigScreen) Init() tea.Cmd {
	return nil
}

func (s *ConfigScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConfigScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case tea.KeyPressMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.row > 0 {
				s.row--
			}
		case "down", "j":
			if s.row < rowMax-1 {
				s.row++
			}
		case "left", "h":
			s.adjust(-1)
		case "right", "l":
			s.adjust(1)
		case "ctrl+h":
			return s, router.EnterHistory()
		case "enter":
			if s.row == rowGenerate {
				return s.generate()
			}
			s.row++
		}
	}
	return s, nil
}

func (s *ConfigScreen) adjust(delta int) {
	switch s.row {
	case rowFormat:
		s.formatIdx = (s.formatIdx + delta + len(formats)) % len(formats)
	case rowKind:
		s.kindIdx = (s.kindIdx + delta + len(kinds)) % len(kinds)
	case rowCount:
		s.count += delta
		if s.count < 1 {
			s.count = 1
		}
		if max := len(s.state.Vocab); s.count > max {
			s.count = max
		}
	}
}

// generate kicks off an asynchronous generation request.
func (s *ConfigScreen) generate() (screen.Screen, tea.Cmd) {
	if len(s.state.Vocab) == 0 {
		return s, router.Notice(i18n.T(s.uiLang, i18n.MsgEmptyVocab))
	}
	if s.generator == nil {
		return s, router.Notice("No AI provider configured. Set an API key and restart.")
	}

	s.generating = true
	input := quizgen.Input{
		Vocab:     s.state.Vocab.Clone(),
		Count:     s.count,
		Format:    formats[s.formatIdx],
		Kind:      kinds[s.kindIdx],
		Direction: s.state.Direction,
	}
	gen := s.generator

	return s, func() tea.Msg {
		items, err := gen.Generate(context.Background(), input)
		return quizReadyMsg{Items: items, Err: err}
	}
}

// handleQuizReady commits the quiz on success; on failure the session
// stays on this screen with a notice.
func (s *ConfigScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	s.generating = false

	if msg.Err != nil {
		var rateLimit *llm.ErrRateLimit
		if errors.As(msg.Err, &rateLimit) {
			return s, router.Notice(i18n.T(s.uiLang, i18n.MsgQuotaExceeded))
		}
		return s, router.Notice(i18n.T(s.uiLang, i18n.MsgDecodeError))
	}

	s.state.SetQuiz(msg.Items, formats[s.formatIdx], kinds[s.kindIdx])
	return s, router.GoTo(session.StageQuiz)
}

func (s *ConfigScreen) View(width, height int) string {
	if s.generating {
		content := theme.Title.Render("Generating your quiz...") + "\n\n" +
			theme.Hint.Render("This usually takes a few seconds.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Quiz Setup"))
	sections = append(sections, "")
	sections = append(sections, s.renderRow(rowFormat, "Format", formats[s.formatIdx].Label()))
	sections = append(sections, s.renderRow(rowKind, "Question type", kinds[s.kindIdx].Label()))
	sections = append(sections, s.renderRow(rowCount, "Questions", fmt.Sprintf("%d of %d words", s.count, len(s.state.Vocab))))
	sections = append(sections, "")

	generate := "  Generate Quiz"
	if s.row == rowGenerate {
		sections = append(sections, theme.ButtonActive.Render(generate))
	} else {
		sections = append(sections, theme.ButtonInactive.Render(generate))
	}

	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Direction: "+s.state.Direction.Label()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ConfigScreen) renderRow(row int, label, value string) string {
	line := fmt.Sprintf("%-16s ◂ %s ▸", label, value)
	if s.row == row {
		return theme.Selected.Render("  ▸ " + line)
	}
	return theme.Unselected.Render("    " + line)
}
