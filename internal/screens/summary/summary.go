package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkline/tutora/internal/router"
	"github.com/mkline/tutora/internal/screen"
	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/session"
	"github.com/mkline/tutora/internal/ui/layout"
	"github.com/mkline/tutora/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s — session complete!", sum.Topic)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %.1f/10        Questions: %d        Correct: %d        Sections: %d",
		sum.Score, sum.QuestionsServed, sum.CorrectAnswers, sum.SegmentsCompleted)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(sum.Strengths) > 0 {
		b.WriteString(sectionHeader(width, divider, "Strengths"))
		for _, c := range sum.Strengths {
			b.WriteString(conceptLine(width, c, theme.Success))
		}
		b.WriteString("\n")
	}

	if len(sum.Gaps) > 0 {
		b.WriteString(sectionHeader(width, divider, "Focus areas"))
		for _, c := range sum.Gaps {
			b.WriteString(conceptLine(width, c, theme.Accent))
		}
		b.WriteString("\n")
	}

	if len(sum.Recommendations) > 0 {
		b.WriteString(sectionHeader(width, divider, "Up next"))
		for _, r := range sum.Recommendations {
			b.WriteString(conceptLine(width, r, theme.Secondary))
		}
		b.WriteString("\n")
	}

	if sum.Sentiment != nil {
		b.WriteString(sectionHeader(width, divider, "How it felt"))
		b.WriteString(s.renderSentiment(width, sum.Sentiment))
	}

	return b.String()
}

func (s *SummaryScreen) renderSentiment(width int, sent *sentiment.Summary) string {
	var b strings.Builder
	line := fmt.Sprintf("  Confidence %.0f%%    Confusion %.0f%%    Engagement %.0f%%    (%d reflections)",
		sent.AvgConfidence*100, sent.AvgConfusion*100, sent.AvgEngagement*100, sent.ReadingCount)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Italic(true).
		Render(sent.Note))
	b.WriteString("\n")
	return b.String()
}

func sectionHeader(width int, divider, label string) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")
	return b.String()
}

func conceptLine(width int, text string, c color.Color) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(c).Render("  "+text)) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
