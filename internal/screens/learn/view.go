package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkline/tutora/internal/assessment"
	sess "github.com/mkline/tutora/internal/session"
	"github.com/mkline/tutora/internal/ui/theme"
)

func (s *LearnScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg, !s.started)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case !s.started:
		return centeredDim(width, "\n\n\n  Preparing your assessment...")
	}

	switch s.session.Phase() {
	case sess.PhaseAssessing:
		return s.renderAssessment(width)
	case sess.PhaseLessonWait:
		return s.renderLessonWait(width)
	case sess.PhaseLesson:
		return s.renderSegment(width)
	default:
		return centeredDim(width, "\n\n  Wrapping up...")
	}
}

func (s *LearnScreen) renderAssessment(width int) string {
	questions := s.session.Runner.Questions()
	if len(questions) == 0 {
		return centeredDim(width, "\n\n  Loading questions...")
	}

	phaseLabel := "Warm-up"
	if s.session.Runner.Phase() == assessment.AdaptivePhase {
		phaseLabel = "Follow-up"
	}

	var b strings.Builder
	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s — question %d of %d", phaseLabel, s.qIndex+1, len(questions)))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")
	b.WriteString(centeredDim(width, "Select (1-4) or use arrows + Enter"))
	return b.String()
}

func (s *LearnScreen) renderLessonWait(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Assessment score: %.1f / 10", s.session.PreScore)))
	b.WriteString("\n\n")

	if s.degradedNote != "" {
		b.WriteString(centeredDim(width, s.degradedNote))
		b.WriteString("\n\n")
	}

	b.WriteString(centeredDim(width, "Building a lesson around your gaps..."))
	return b.String()
}

func (s *LearnScreen) renderSegment(width int) string {
	seg, ok := s.session.Sequencer.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	progress := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Section %d of %d", s.session.Sequencer.Index()+1, s.session.Sequencer.Len()))
	b.WriteString(progress)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(seg.Title)
	b.WriteString(title)
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(seg.Body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	if seg.KeyPoint != "" {
		key := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Accent).
			Italic(true).
			Render("Key point: " + seg.KeyPoint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, key))
		b.WriteString("\n\n")
	}

	switch {
	case s.awaitingReading:
		b.WriteString(centeredDim(width, "Reading your reflection..."))
	case s.reflecting:
		line := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Reflection: " + s.input.View())
		b.WriteString(line)
	default:
		b.WriteString(centeredDim(width, "Press Enter to reflect on this section"))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session early?"))
	b.WriteString("\n")
	b.WriteString(centeredDim(width, "Everything answered so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string, retryable bool) string {
	hint := "Press Esc to go back."
	if retryable {
		hint = "Press R to retry or Esc to go back."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  %s", errMsg, hint))
}

func centeredDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
