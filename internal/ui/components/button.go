package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showrank/internal/ui/theme"
)

// Button fires OnPress on enter while Active. A one-shot button fires at
// most once: pressing it deactivates it and marks it Pressed.
type Button struct {
	Label   string
	Active  bool
	OneShot bool
	Pressed bool
	OnPress func() tea.Cmd
}

// NewButton creates a reusable button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// NewOneShotButton creates an active button that disables itself after
// its first press.
func NewOneShotButton(label string, onPress func() tea.Cmd) Button {
	b := NewButton(label, true, onPress)
	b.OneShot = true
	return b
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || kmsg.String() != "enter" || b.OnPress == nil {
		return b, nil
	}

	if b.OneShot {
		b.Active = false
		b.Pressed = true
	}
	return b, b.OnPress()
}

// View renders the button on a single line in every state.
func (b Button) View() string {
	switch {
	case b.Pressed:
		return theme.ButtonInactive.Render("  ✓ " + b.Label + " ")
	case b.Active:
		return theme.ButtonActive.Render("  ▸ " + b.Label + " ")
	default:
		return theme.ButtonInactive.Render("    " + b.Label + " ")
	}
}
