package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mkline/tutora/internal/router"
	"github.com/mkline/tutora/internal/screen"
	"github.com/mkline/tutora/internal/store"
	"github.com/mkline/tutora/internal/topics"
	"github.com/mkline/tutora/internal/ui/layout"
	"github.com/mkline/tutora/internal/ui/theme"
)

// historyLimit caps how many past sessions are loaded.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRow
	Err      error
}

// HistoryScreen displays past learning sessions, most recent first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRow
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.SessionHistory(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Pick a topic to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range s.sessions {
		dateStr := row.Timestamp.Format("Jan 02, 2006")
		mins := row.DurationSecs / 60
		secs := row.DurationSecs % 60

		status := "abandoned"
		if row.Completed {
			status = "completed"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d:%02d  score %.1f  %d questions  %d sections  %s",
			prefix, dateStr, topics.DisplayName(row.Topic), mins, secs,
			row.PreScore, row.QuestionsServed, row.SegmentsCompleted, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !row.Completed {
			style = style.Foreground(theme.TextDim)
		}
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
