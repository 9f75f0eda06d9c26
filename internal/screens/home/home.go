package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showrank/internal/router"
	"github.com/abhisek/showrank/internal/screen"
	"github.com/abhisek/showrank/internal/screens/history"
	"github.com/abhisek/showrank/internal/screens/pointstable"
	quizscreen "github.com/abhisek/showrank/internal/screens/quiz"
	"github.com/abhisek/showrank/internal/ui/components"
	"github.com/abhisek/showrank/internal/ui/layout"
)

const (
	itemPlay = iota
	itemHistory
	itemTable
	itemExit
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps quizscreen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. deps is handed to every quiz screen it opens.
func New(deps quizscreen.Deps) *HomeScreen {
	items := []components.MenuItem{
		itemPlay: {Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(deps)}
			}
		}},
		itemHistory: {Label: "HISTORY", Locked: historyLocked(deps), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Session.Rounds(), deps.Session.Quiz())}
			}
		}},
		itemTable: {Label: "POINTS TABLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pointstable.New(deps.Session.Quiz())}
			}
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

// historyLocked keeps HISTORY shut until a round log exists and holds at
// least one scored round.
func historyLocked(deps quizscreen.Deps) func() bool {
	return func() bool {
		return deps.Session.Rounds() == nil || deps.Session.Stats().GamesPlayed == 0
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
	// height is the content area; add back header + footer to get the terminal height
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)
	st := h.deps.Session.Stats()

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(st, h.deps.Session.Quiz().BestScore()), cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(st, cw, compact))

	// 4. Menu
	sections = append(sections, h.menu.View(cw, compact))

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
