package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showrank/internal/ui/theme"
)

// MenuItem is one entry of an arcade menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd

	// Locked reports whether the item is unavailable right now. It is
	// consulted on every key and render, so availability can follow
	// session state. Nil means always available.
	Locked func() bool
}

func (it MenuItem) available() bool {
	return it.Locked == nil || !it.Locked()
}

// Menu is a vertical menu that skips locked items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first available item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if item.available() {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j":
		m.Selected = m.step(1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && item.available() {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// step returns the next available index in direction dir, or the current
// selection when there is none.
func (m Menu) step(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if m.Items[i].available() {
			return i
		}
	}
	return m.Selected
}

// menuButtonWidth is the fixed width of a bordered menu button.
const menuButtonWidth = 22

// View renders the menu centered in cw columns. Compact mode drops the
// button borders so each item takes a single line.
func (m Menu) View(cw int, compact bool) string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		state := ButtonNormal
		switch {
		case !item.available():
			state = ButtonLocked
		case i == m.Selected:
			state = ButtonSelected
		}
		if compact {
			lines = append(lines, ArcadeLine(item.Label, state))
		} else {
			lines = append(lines, ArcadeButton(item.Label, state, menuButtonWidth))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(strings.Join(lines, "\n"))
}
