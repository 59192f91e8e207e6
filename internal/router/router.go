package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/session"
)

// GoToMsg requests a transition to the given stage.
type GoToMsg struct {
	Stage session.Stage
}

// BackMsg requests popping the navigation stack.
type BackMsg struct{}

// EnterHistoryMsg requests the history screen. Routed separately from
// GoToMsg because entering history from the word-input screen pushes a
// special return marker.
type EnterHistoryMsg struct{}

// StartOverMsg requests a full session reset back to the select screen.
type StartOverMsg struct{}

// NoticeMsg shows a transient message in the footer.
type NoticeMsg struct {
	Text string
}

// GoTo returns a command that transitions to the given stage.
func GoTo(stage session.Stage) tea.Cmd {
	return func() tea.Msg { return GoToMsg{Stage: stage} }
}

// Back returns a command that pops the navigation stack.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// EnterHistory returns a command that opens the history screen.
func EnterHistory() tea.Cmd {
	return func() tea.Msg { return EnterHistoryMsg{} }
}

// StartOver returns a command that resets the session.
func StartOver() tea.Cmd {
	return func() tea.Msg { return StartOverMsg{} }
}

// Notice returns a command that shows a footer notice.
func Notice(text string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text} }
}

// Factory builds a fresh screen for a stage.
type Factory func() screen.Screen

// Registry maps stages to screen factories. The app rebuilds the active
// screen from the registry on every stage change, so screens never hold
// stale session state.
type Registry struct {
	factories map[session.Stage]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[session.Stage]Factory)}
}

// Register binds a stage to its screen factory.
func (r *Registry) Register(stage session.Stage, f Factory) {
	r.factories[stage] = f
}

// Build constructs the screen for the given stage, or nil if the stage
// has no registered factory.
func (r *Registry) Build(stage session.Stage) screen.Screen {
	f, ok := r.factories[stage]
	if !ok {
		return nil
	}
	return f()
}
