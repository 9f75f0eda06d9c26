package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/ui/theme"
)

// ScoreBar displays a round total as a horizontal bar against the maximum.
type ScoreBar struct {
	Label string
	Score int
	Max   int
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score, max, width int) ScoreBar {
	return ScoreBar{
		Label: label,
		Score: score,
		Max:   max,
		Width: width,
	}
}

// Fraction returns Score/Max clamped to [0, 1].
func (b ScoreBar) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	f := float64(b.Score) / float64(b.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// View renders the score bar.
func (b ScoreBar) View() string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d", b.Score, b.Max)
	barWidth := b.Width - lipgloss.Width(result) - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Fraction())
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.ArcadeYellow).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(suffix)

	return result
}
