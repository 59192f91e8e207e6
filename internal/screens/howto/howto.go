package howto

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ryuki04/lexbot/internal/router"
	"github.com/ryuki04/lexbot/internal/screen"
	"github.com/ryuki04/lexbot/internal/ui/layout"
	"github.com/ryuki04/lexbot/internal/ui/theme"
)

const guideText = `1. Pick "Vocabulary Test" or "Flashcards" on the start screen.

2. Enter the words you want to practice, one at a time.
   Words are lowercased; only alphabetic entries are accepted.

3. Test mode: choose a question format, a question type and how many
   questions to generate, then answer the quiz. You get a score,
   per-question feedback and an overall review at the end.

4. Flashcard mode: flip each card to see the translation. Common
   words resolve instantly; rarer ones are translated on demand.

5. Every finished test is saved. Open "Past Sessions" to review
   scores, retry a full word list or retry only the words you missed.`

// HowtoScreen shows the usage guide.
type HowtoScreen struct{}

var _ screen.Screen = (*HowtoScreen)(nil)
var _ screen.KeyHintProvider = (*HowtoScreen)(nil)

// New creates the guide screen.
func New() *HowtoScreen {
	return &HowtoScreen{}
}

func (h *HowtoScreen) Title() string {
	return "How to Use"
}

func (h *HowtoScreen) Init() tea.Cmd {
	return nil
}

func (h *HowtoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HowtoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" {
			return h, router.Back()
		}
	}
	return h, nil
}

func (h *HowtoScreen) View(width, height int) string {
	title := theme.Title.Render("How to Use LexBot")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(guideText)

	card := theme.Card.Render(body)
	content := title + "\n\n" + card

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
