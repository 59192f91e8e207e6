package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/screens/config"
	"github.com/ryuki04/lexbot/internal/screens/flashcard"
	"github.com/ryuki04/lexbot/internal/screens/historyview"
	"github.com/ryuki04/lexbot/internal/screens/howto"
	"github.com/ryuki04/lexbot/internal/screens/quiz"
	"github.com/ryuki04/lexbot/internal/screens/results"
	"github.com/ryuki04/lexbot/internal/screens/selectinput"
	"github.com/ryuki04/lexbot/internal/screens/wordinput"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/translate"
	"github.com/ryuki04/lexbot/internal/ui/layout"
)

// Deps bundles everything the screens need.
type Deps struct {
	State      *session.State
	Generator  *quizgen.Generator
	Grader     *grading.Grader
	Translator *translate.Translator
	Log        *history.Log
	UILang     i18n.Lang
}

// AppModel is the root Bubble Tea model. It owns the session state and
// rebuilds the active screen from the registry on every stage change.
type AppModel struct {
	deps     Deps
	registry *router.Registry
	current  screen.Screen
	notice   string
	width    int
	height   int
}

// newAppModel wires the stage registry and builds the initial screen.
func newAppModel(deps Deps) AppModel {
	reg := router.NewRegistry()
	reg.Register(session.StageSelectInput, func() screen.Screen {
		return selectinput.New(deps.State)
	})
	reg.Register(session.StageHowto, func() screen.Screen {
		return howto.New()
	})
	reg.Register(session.StageInput, func() screen.Screen {
		return wordinput.New(deps.State, deps.UILang)
	})
	reg.Register(session.StageConfig, func() screen.Screen {
		return config.New(deps.State, deps.Generator, deps.UILang)
	})
	reg.Register(session.StageQuiz, func() screen.Screen {
		return quiz.New(deps.State, deps.Grader, deps.Log, deps.UILang)
	})
	reg.Register(session.StageResults, func() screen.Screen {
		return results.New(deps.State, deps.UILang)
	})
	reg.Register(session.StageFlashcard, func() screen.Screen {
		return flashcard.New(deps.State, deps.Translator, deps.UILang)
	})
	reg.Register(session.StageHistory, func() screen.Screen {
		return historyview.New(deps.State, deps.Log, deps.UILang)
	})

	m := AppModel{deps: deps, registry: reg}
	m.current = reg.Build(deps.State.Stage())
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.current != nil {
		return m.current.Init()
	}
	return nil
}

// rebuild swaps in a fresh screen for the current stage.
func (m *AppModel) rebuild() tea.Cmd {
	m.current = m.registry.Build(m.deps.State.Stage())
	if m.current == nil {
		return nil
	}
	return m.current.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.GoToMsg:
		m.deps.State.ChangeStage(msg.Stage)
		return m, m.rebuild()

	case router.BackMsg:
		if _, ok := m.deps.State.GoBack(); !ok {
			m.notice = i18n.T(m.deps.UILang, i18n.MsgNothingToGoBack)
			return m, nil
		}
		return m, m.rebuild()

	case router.EnterHistoryMsg:
		m.deps.State.EnterHistory()
		return m, m.rebuild()

	case router.StartOverMsg:
		m.deps.State.Reset()
		return m, m.rebuild()

	case router.NoticeMsg:
		m.notice = msg.Text
		return m, nil

	case tea.KeyPressMsg:
		m.notice = ""
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, router.Back()
		}
	}

	if m.current == nil {
		return m, nil
	}
	updated, cmd := m.current.Update(msg)
	m.current = updated
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if m.current != nil {
		title = m.current.Title()
	}

	header := layout.RenderHeader(title, m.deps.State.Direction.Label(), m.width)

	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := m.current.(screen.KeyHintProvider); ok {
		if h := provider.KeyHints(); len(h) > 0 {
			hints = h
		}
	}

	footer := layout.RenderFooter(hints, m.notice, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := ""
	if m.current != nil {
		content = m.current.View(m.width, contentHeight)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
