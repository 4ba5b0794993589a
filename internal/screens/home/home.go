package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkline/tutora/internal/router"
	"github.com/mkline/tutora/internal/screen"
	"github.com/mkline/tutora/internal/screens/history"
	"github.com/mkline/tutora/internal/screens/learn"
	sess "github.com/mkline/tutora/internal/session"
	"github.com/mkline/tutora/internal/speech"
	"github.com/mkline/tutora/internal/topics"
	"github.com/mkline/tutora/internal/ui/components"
	"github.com/mkline/tutora/internal/ui/theme"
)

// HomeScreen is the topic picker and entry point of the application.
type HomeScreen struct {
	menu     components.Menu
	topics   []topics.Topic
	accuracy map[string]float64 // historical answer accuracy per topic
	llmReady bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Deps flow into every learn session
// started from here; llmReady gates the topic entries so a missing
// provider degrades to history browsing instead of broken sessions.
func New(deps sess.Deps, narrator speech.Narrator) *HomeScreen {
	all := topics.All()
	llmReady := deps.Source != nil

	accuracy := make(map[string]float64, len(all))
	if deps.Events != nil {
		ctx := context.Background()
		for _, t := range all {
			acc, err := deps.Events.TopicAccuracy(ctx, t.ID)
			if err == nil && acc > 0 {
				accuracy[t.ID] = acc
			}
		}
	}

	items := make([]components.MenuItem, 0, len(all)+2)
	for _, t := range all {
		topicID := t.ID
		items = append(items, components.MenuItem{
			Label:    t.Name,
			Disabled: !llmReady,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: learn.New(topicID, deps, narrator),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "History",
		Disabled: deps.Events == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:     components.NewMenu(items),
		topics:   all,
		accuracy: accuracy,
		llmReady: llmReady,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Tutora"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Pick a topic to assess, learn, and reflect"))

	if !h.llmReady {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No question source configured — set a TUTORA_*_API_KEY to start learning."))
	}

	menu := h.menu.View()
	if desc := h.selectedDescription(); desc != "" {
		menu += "\n" + theme.Hint.Render("    "+desc)
	}
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// selectedDescription returns the hint line for the highlighted entry:
// the topic description plus historical accuracy when any exists.
func (h *HomeScreen) selectedDescription() string {
	i := h.menu.Selected
	if i < 0 || i >= len(h.topics) {
		return ""
	}
	t := h.topics[i]
	desc := t.Description
	if acc, ok := h.accuracy[t.ID]; ok {
		desc += fmt.Sprintf("  (past accuracy %.0f%%)", acc*100)
	}
	return desc
}

func (h *HomeScreen) Title() string {
	return "Home"
}
