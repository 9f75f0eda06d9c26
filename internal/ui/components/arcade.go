package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/ui/theme"
)

// ButtonState selects how an arcade button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonLocked
)

// ContentWidth returns the uniform inner width used for all arcade sections.
// The cap fits the 70-column banner plus a margin.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard renders a marquee title over body in a rounded card cw wide.
func ArcadeCard(title, body string, cw int) string {
	marquee := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(title)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(marquee + "\n\n" + body)
}

// ArcadeButton renders a bordered, fixed-width button.
func ArcadeButton(label string, state ButtonState, width int) string {
	base := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return base.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonLocked:
		return base.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Faint(true).
			Render(label)
	default:
		return base.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}

// ArcadeLine is the borderless single-line form of ArcadeButton.
func ArcadeLine(label string, state ButtonState) string {
	switch state {
	case ButtonSelected:
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Bold(true).
			Render(" ▸ " + label + " ")
	case ButtonLocked:
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Faint(true).
			Render("   " + label + " ")
	default:
		return lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   " + label + " ")
	}
}
