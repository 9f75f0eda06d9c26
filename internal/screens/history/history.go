package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/quiz"
	"github.com/abhisek/showrank/internal/router"
	"github.com/abhisek/showrank/internal/screen"
	"github.com/abhisek/showrank/internal/store"
	"github.com/abhisek/showrank/internal/ui/layout"
	"github.com/abhisek/showrank/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Rounds []store.RoundRecord
	Err    error
}

// HistoryScreen lists the rounds played in this session, newest first.
type HistoryScreen struct {
	rounds   store.RoundRepo
	quiz     *quiz.Quiz
	records  []store.RoundRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(rounds store.RoundRepo, q *quiz.Quiz) *HistoryScreen {
	return &HistoryScreen{
		rounds:   rounds,
		quiz:     q,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.rounds.ListRounds(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Rounds: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
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
			s.records = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
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
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Go play one!")
	}

	maxScore := s.quiz.BestScore()

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%sRound %d  %s  %3d/%d points",
			prefix, rec.Sequence, rec.PlayedAt.Format("15:04:05"), rec.Total, maxScore)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if rec.Total == maxScore {
			style = style.Foreground(theme.Success)
		}
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for pos, name := range rec.Ordering {
				var pts int
				if pos < len(rec.Points) {
					pts = rec.Points[pos]
				}
				detail := fmt.Sprintf("    %d. %-20s %2d", pos+1, name, pts)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
