package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/scoring"
	"github.com/abhisek/showrank/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ███████╗██╗  ██╗ ██████╗ ██╗    ██╗██████╗  █████╗ ███╗   ██╗██╗  ██╗
 ██╔════╝██║  ██║██╔═══██╗██║    ██║██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝
 ███████╗███████║██║   ██║██║ █╗ ██║██████╔╝███████║██╔██╗ ██║█████╔╝
 ╚════██║██╔══██║██║   ██║██║███╗██║██╔══██╗██╔══██║██║╚██╗██║██╔═██╗
 ███████║██║  ██║╚██████╔╝╚███╔███╔╝██║  ██║██║  ██║██║ ╚████║██║  ██╗
 ╚══════╝╚═╝  ╚═╝ ╚═════╝  ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝`

const arcadeTitleCompact = "S · H · O · W · R · A · N · K"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact || lipgloss.Width(arcadeTitleFull) > cw {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the session stats in a bordered box matching content width.
func renderStatsBar(st scoring.Stats, cw int, compact bool) string {
	highStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	gamesStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	avgStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			highStyle.Render(fmt.Sprintf("★%d", st.HighScore)),
			gamesStyle.Render(fmt.Sprintf("▶%d", st.GamesPlayed)),
			averageText(st, true, avgStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			highStyle.Render(fmt.Sprintf("★ HIGH %d", st.HighScore)),
			gamesStyle.Render(fmt.Sprintf("▶ %d PLAYED", st.GamesPlayed)),
			averageText(st, false, avgStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func averageText(st scoring.Stats, compact bool, active, dim lipgloss.Style) string {
	avg, ok := st.Average()
	if !ok {
		if compact {
			return dim.Render("⌀-")
		}
		return dim.Render("⌀ NO GAMES")
	}
	if compact {
		return active.Render(fmt.Sprintf("⌀%.1f", avg))
	}
	return active.Render(fmt.Sprintf("⌀ AVG %.2f", avg))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
