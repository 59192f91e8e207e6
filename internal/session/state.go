package session

import (
	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/translate"
	"github.com/ryuki04/lexbot/internal/vocab"
)

// State is the single session aggregate. Every screen handler receives
// it and mutates it through the methods below; there are no ambient
// globals. One State per running session, no sharing.
type State struct {
	stage Stage
	stack []Stage

	Mode      InputMode
	Direction i18n.Direction

	Vocab   vocab.List
	Quiz    []quizgen.Item
	Format  quizgen.Format
	Kind    quizgen.Kind
	Answers []grading.Answer

	// Result is nil until the current quiz has been graded once.
	// Grading checks it before calling out so a finished quiz is
	// never re-graded.
	Result *grading.Result

	Cache *translate.Cache
}

// NewState returns a fresh session on the initial screen.
func NewState() *State {
	return &State{
		stage:     StageSelectInput,
		Direction: i18n.DefaultDirection,
		Cache:     translate.NewCache(),
	}
}

// Stage returns the current screen.
func (s *State) Stage() Stage {
	return s.stage
}

// StackDepth returns the number of frames on the navigation stack.
func (s *State) StackDepth() int {
	return len(s.stack)
}

// ChangeStage moves to next. The current stage is pushed onto the stack
// only when next differs from it, so idempotent re-renders never grow
// the stack. Push and set happen together; the stack always holds the
// true predecessor of the current screen.
func (s *State) ChangeStage(next Stage) {
	if next == s.stage {
		return
	}
	s.stack = append(s.stack, s.stage)
	s.stage = next
}

// EnterHistory moves to the history screen. Entering from the word-input
// screen pushes the StageInputWords marker instead of the generic frame,
// so returning from history always lands on the input screen no matter
// what happened in between.
func (s *State) EnterHistory() {
	if s.stage == StageHistory {
		return
	}
	if s.stage == StageInput {
		s.stack = append(s.stack, StageInputWords)
		s.stage = StageHistory
		return
	}
	s.ChangeStage(StageHistory)
}

// GoBack pops the stack and returns the restored stage. The legacy
// StageInputWords marker resolves to StageInput. An empty stack is a
// no-op reporting false; the caller shows a notice and stays put.
func (s *State) GoBack() (Stage, bool) {
	if len(s.stack) == 0 {
		return s.stage, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if top == StageInputWords {
		top = StageInput
	}
	s.stage = top
	return top, true
}

// AfterInput returns the destination screen for a submitted word list,
// decided by the mode chosen on the select screen.
func (s *State) AfterInput() Stage {
	if s.Mode == ModeFlashcard {
		return StageFlashcard
	}
	return StageConfig
}

// SetQuiz commits a validated quiz and moves to the quiz screen. Answers
// and any previous result are discarded; the new quiz has not been
// graded yet.
func (s *State) SetQuiz(items []quizgen.Item, format quizgen.Format, kind quizgen.Kind) {
	s.Quiz = items
	s.Format = format
	s.Kind = kind
	s.Answers = make([]grading.Answer, len(items))
	s.Result = nil
	s.ChangeStage(StageQuiz)
}

// SetResult commits a grade and moves to the results screen.
func (s *State) SetResult(r *grading.Result) {
	s.Result = r
	s.ChangeStage(StageResults)
}

// Reseed replaces the working vocabulary for a replay and routes to the
// given screen, dropping the stale quiz, answers and result.
func (s *State) Reseed(words vocab.List, to Stage) {
	s.Vocab = words.Clone()
	s.Quiz = nil
	s.Answers = nil
	s.Result = nil
	s.ChangeStage(to)
}

// Reset tears the session down to its initial defaults: empty vocabulary,
// no quiz, no result, empty stack, empty cache, back on the select
// screen.
func (s *State) Reset() {
	s.stage = StageSelectInput
	s.stack = nil
	s.Mode = ModeTest
	s.Direction = i18n.DefaultDirection
	s.Vocab = nil
	s.Quiz = nil
	s.Format = ""
	s.Kind = ""
	s.Answers = nil
	s.Result = nil
	s.Cache.Clear()
}
