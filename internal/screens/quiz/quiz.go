package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/ui/components"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

// gradeReadyMsg is sent when grading finishes. LogErr carries a failed
// history write so the screen can tell the learner the attempt was not
// recorded.
type gradeReadyMsg struct {
	Result *grading.Result
	Err    error
	LogErr error
}

// QuizScreen walks through the generated items and submits the answers
// for grading once every item has one.
type QuizScreen struct {
	state   *session.State
	grader  *grading.Grader
	log     *history.Log
	uiLang  i18n.Lang
	index   int
	mc      components.MultiChoice
	input   components.TextInput
	grading bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen.
func New(state *session.State, grader *grading.Grader, log *history.Log, uiLang i18n.Lang) *QuizScreen {
	s := &QuizScreen{
		state:  state,
		grader: grader,
		log:    log,
		uiLang: uiLang,
	}
	s.setupItem()
	return s
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.state.Format == quizgen.FormatFreeText {
		return s.input.Init()
	}
	return nil
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.grading {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if s.state.Format == quizgen.FormatMultipleChoice {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

// setupItem prepares the answer widget for the current item.
func (s *QuizScreen) setupItem() {
	if s.index >= len(s.state.Quiz) {
		return
	}
	item := s.state.Quiz[s.index]
	if s.state.Format == quizgen.FormatMultipleChoice && len(item.Options) > 0 {
		s.mc = components.NewMultiChoice(item.Question, item.Options)
	} else {
		s.input = components.NewTextInput("Type your answer...", 40)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradeReadyMsg:
		return s.handleGradeReady(msg)

	case tea.KeyPressMsg:
		if s.grading {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.submitAnswer()
		}
	}

	if s.grading || s.index >= len(s.state.Quiz) {
		return s, nil
	}

	item := s.state.Quiz[s.index]
	if s.state.Format == quizgen.FormatMultipleChoice && len(item.Options) > 0 {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer records the answer for the current item and either moves
// on or, after the last item, requests grading.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.index >= len(s.state.Quiz) {
		return s.grade()
	}

	item := s.state.Quiz[s.index]
	var answer string
	if s.state.Format == quizgen.FormatMultipleChoice && len(item.Options) > 0 {
		answer = item.Options[s.mc.Selected]
	} else {
		answer = strings.TrimSpace(s.input.Value())
		if answer == "" {
			return s, nil
		}
	}

	s.state.Answers[s.index] = grading.Answer{Answer: answer}
	s.index++

	if s.index >= len(s.state.Quiz) {
		return s.grade()
	}

	s.setupItem()
	return s, s.Init()
}

// grade sends quiz and answers out for scoring. A quiz that already has
// a result is never re-graded.
func (s *QuizScreen) grade() (screen.Screen, tea.Cmd) {
	if s.state.Result != nil {
		return s, router.GoTo(session.StageResults)
	}
	if s.grader == nil {
		return s, router.Notice("No AI provider configured. Set an API key and restart.")
	}

	s.grading = true
	grader := s.grader
	log := s.log
	quiz := s.state.Quiz
	answers := s.state.Answers
	words := s.state.Vocab.Clone()
	lang := s.uiLang

	return s, func() tea.Msg {
		ctx := context.Background()
		result, err := grader.Grade(ctx, quiz, answers, lang)
		var logErr error
		if err == nil && result != nil {
			// First successful grade for this quiz: record the attempt.
			_, logErr = log.Append(ctx, words, quiz, answers)
		}
		return gradeReadyMsg{Result: result, Err: err, LogErr: logErr}
	}
}

func (s *QuizScreen) handleGradeReady(msg gradeReadyMsg) (screen.Screen, tea.Cmd) {
	s.grading = false

	if msg.Err != nil {
		var rateLimit *llm.ErrRateLimit
		if errors.As(msg.Err, &rateLimit) {
			// Nothing committed; the learner can press Enter to retry.
			return s, router.Notice(i18n.T(s.uiLang, i18n.MsgQuotaExceeded))
		}

		var decode *grading.ErrDecode
		if errors.As(msg.Err, &decode) && msg.Result != nil {
			// The failure sentinel is shown on the results screen with a
			// notice; the attempt is not recorded.
			s.state.SetResult(msg.Result)
			return s, tea.Batch(
				router.Notice(i18n.T(s.uiLang, i18n.MsgDecodeError)),
				router.GoTo(session.StageResults),
			)
		}

		return s, router.Notice(i18n.T(s.uiLang, i18n.MsgGradingFailed))
	}

	s.state.SetResult(msg.Result)
	if msg.LogErr != nil {
		// Grading succeeded but the attempt could not be persisted; show
		// the results anyway and say so.
		return s, tea.Batch(
			router.Notice(i18n.T(s.uiLang, i18n.MsgHistoryNotSaved)),
			router.GoTo(session.StageResults),
		)
	}
	return s, router.GoTo(session.StageResults)
}

func (s *QuizScreen) View(width, height int) string {
	if s.grading {
		content := theme.Title.Render("Grading your answers...") + "\n\n" +
			theme.Hint.Render("Hang tight.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	if s.index >= len(s.state.Quiz) {
		content := theme.Body.Render("All questions answered.") + "\n\n" +
			theme.Hint.Render("Press Enter to submit for grading.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	item := s.state.Quiz[s.index]

	var sections []string
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.index+1, len(s.state.Quiz)),
		float64(s.index)/float64(len(s.state.Quiz)),
		50,
	)
	sections = append(sections, progress.View())
	sections = append(sections, "")

	if s.state.Format == quizgen.FormatMultipleChoice && len(item.Options) > 0 {
		sections = append(sections, s.mc.View())
	} else {
		question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Question)
		sections = append(sections, question)
		sections = append(sections, "")
		sections = append(sections, s.input.View())
	}

	if item.Hint != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Hint: "+item.Hint))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
