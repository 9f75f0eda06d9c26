package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/scoring"
	"github.com/abhisek/showrank/internal/ui/components"
	"github.com/abhisek/showrank/internal/ui/theme"
)

const rowWidth = 48

func (s *QuizScreen) View(width, height int) string {
	if s.summary != nil {
		return s.renderSummary(width, height)
	}

	center := func(line string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}

	// Everything above the list must be exactly listTop lines so pointer
	// rows line up with the list geometry.
	var lines []string
	if !s.compact {
		lines = append(lines, "")
	}
	lines = append(lines, center(s.renderNotice()), "")

	if s.round.Submitted() {
		lines = append(lines, s.renderResults(center)...)
	} else {
		lines = append(lines, s.renderSurface(center)...)
	}

	lines = append(lines, "", center(s.submit.View()))
	return strings.Join(lines, "\n")
}

// renderNotice shows the toast when one is up, the instructions otherwise.
func (s *QuizScreen) renderNotice() string {
	if s.toast != "" {
		return lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(s.toast)
	}
	text := "Drag the shows into order, or grab one with Space and move it with ↑↓"
	if s.round.Submitted() {
		text = "Your results"
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(text)
}

// padRow emits line followed by the blank lines that fill a row.
func (s *QuizScreen) padRow(line string) []string {
	out := []string{line}
	for i := 1; i < s.rowHeight(); i++ {
		out = append(out, "")
	}
	return out
}

// renderSurface draws one item per row, top to bottom.
func (s *QuizScreen) renderSurface(center func(string) string) []string {
	surface := s.round.Surface
	moving := surface.Moving()

	var lines []string
	for i := 0; i < surface.Len(); i++ {
		label := fmt.Sprintf("%d. %s", i+1, surface.At(i))

		style := lipgloss.NewStyle().Width(rowWidth).Foreground(theme.Text)
		prefix := "  "
		switch {
		case i == moving && surface.Styled():
			style = theme.Moving.Width(rowWidth)
			prefix = "≡ "
		case i == s.cursor:
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}

		lines = append(lines, s.padRow(center(style.Render(prefix+label)))...)
	}
	return lines
}

// renderResults replaces the surface with one scored line per position,
// then the total and a bar against the best possible score.
func (s *QuizScreen) renderResults(center func(string) string) []string {
	res := s.round.Result

	var lines []string
	for _, it := range res.Items {
		line := fmt.Sprintf("%s (%s) - %d points", it.Item, it.Expected, it.Points)
		style := lipgloss.NewStyle().
			Width(rowWidth).
			Foreground(proximityColor(it.Proximity))
		if it.Proximity == scoring.ProximityCorrect {
			style = style.Bold(true)
		}
		lines = append(lines, s.padRow(center(style.Render("  "+line)))...)
	}

	total := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("Total Score: %d", res.Total))
	bar := components.NewScoreBar("", res.Total, s.deps.Session.Quiz().BestScore(), rowWidth)

	return append(lines, center(total), center(bar.View()))
}

// renderSummary draws the post-submit notice card.
func (s *QuizScreen) renderSummary(width, height int) string {
	cw := components.ContentWidth(width)
	if cw > 40 {
		cw = 40
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(s.summary.Lines(), "\n"))
	footer := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key")

	card := components.ArcadeCard("ROUND COMPLETE", body+"\n\n"+footer, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func proximityColor(p scoring.Proximity) color.Color {
	switch p {
	case scoring.ProximityCorrect:
		return theme.ProximityCorrect
	case scoring.ProximityVeryClose:
		return theme.ProximityVeryClose
	case scoring.ProximityClose:
		return theme.ProximityClose
	case scoring.ProximitySomewhatClose:
		return theme.ProximitySomewhatClose
	default:
		return theme.ProximityFar
	}
}
