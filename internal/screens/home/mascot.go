package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/scoring"
	"github.com/abhisek/showrank/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star screen: a perfect round was played
)

const mascotIdle = `  \ /
┌──┴──┐
│ ▶ ■ │
└┬───┬┘`

const mascotCelebrating = `  \ /
┌──┴──┐
│ ★ ★ │
└┬───┬┘
 ╚═══╝`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// mascotFor picks the mascot for the session so far.
func mascotFor(st scoring.Stats, maxScore int) MascotVariant {
	if st.GamesPlayed > 0 && st.HighScore >= maxScore {
		return MascotCelebrating
	}
	return MascotIdle
}
