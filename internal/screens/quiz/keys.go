package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/showrank/internal/ui/layout"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Grab     key.Binding
	Submit   key.Binding
	Share    key.Binding
	NewRound key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "Move down"),
		),
		Grab: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("Space", "Grab/Drop"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Submit"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "Share"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("N", "New round"),
		),
	}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
