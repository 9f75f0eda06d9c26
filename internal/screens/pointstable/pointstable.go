// Package pointstable shows the points every item earns at every position.
package pointstable

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/quiz"
	"github.com/abhisek/showrank/internal/router"
	"github.com/abhisek/showrank/internal/screen"
	"github.com/abhisek/showrank/internal/ui/components"
	"github.com/abhisek/showrank/internal/ui/layout"
	"github.com/abhisek/showrank/internal/ui/theme"
)

// PointsTableScreen renders the quiz's points table.
type PointsTableScreen struct {
	quiz *quiz.Quiz
}

var _ screen.Screen = (*PointsTableScreen)(nil)
var _ screen.KeyHintProvider = (*PointsTableScreen)(nil)

// New creates a PointsTableScreen for q.
func New(q *quiz.Quiz) *PointsTableScreen {
	return &PointsTableScreen{quiz: q}
}

func (s *PointsTableScreen) Init() tea.Cmd {
	return nil
}

func (s *PointsTableScreen) Title() string {
	return "Points Table"
}

func (s *PointsTableScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PointsTableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *PointsTableScreen) View(width, height int) string {
	caption := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Shows in the correct order. Highlighted cells mark each show's true position.")

	sections := []string{
		caption,
		components.PointsTable(s.quiz).Render(),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}
