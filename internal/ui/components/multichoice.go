package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/ui/theme"
)

// MultiChoice renders a question with lettered options and tracks the
// highlighted one. Choosing is the caller's decision; the widget only
// navigates.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
}

func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{Question: question, Options: options}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the highlight with up/down or k/j.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}
	return m, nil
}

func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		letter := string(rune('A' + i))
		if i == m.Selected {
			line := fmt.Sprintf("▸ %s)  %s", letter, opt)
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			line := fmt.Sprintf("  %s)  %s", letter, opt)
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
