package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkline/tutora/internal/ui/theme"
)

var choiceLetters = []string{"A", "B", "C", "D"}

// MultiChoice is a multiple-choice selector. It only collects the
// learner's pick; correctness is scored elsewhere, so nothing here is
// revealed as right or wrong.
type MultiChoice struct {
	Question string
	Options  []string // pre-labeled, e.g. "A) Target output"
	Selected int
	Chosen   string // letter of the submitted choice, "" until submit
}

// NewMultiChoice creates a selector over pre-labeled options.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles navigation and submission. Enter records the selected
// option's letter; number keys jump and submit in one stroke.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.submit(m.Selected)
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.submit(i)
		}
	}

	return m, nil
}

func (m *MultiChoice) submit(i int) {
	if i >= 0 && i < len(m.Options) && i < len(choiceLetters) {
		m.Chosen = choiceLetters[i]
	}
}

// Submitted reports whether a choice has been recorded.
func (m MultiChoice) Submitted() bool {
	return m.Chosen != ""
}

// Reset clears the recorded choice so the next question starts fresh.
func (m *MultiChoice) Reset(question string, options []string) {
	m.Question = question
	m.Options = options
	m.Selected = 0
	m.Chosen = ""
}

// View renders the question with its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := prefix + opt

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
