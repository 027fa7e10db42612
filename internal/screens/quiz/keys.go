package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Submit  key.Binding
	Next    key.Binding
	Restart key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "Move")),
	Down:    key.NewBinding(key.WithKeys("down")),
	Toggle:  key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Toggle")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit")),
	Next:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Next")),
	Restart: key.NewBinding(key.WithKeys("esc", "ctrl+r"), key.WithHelp("Esc", "Restart")),
}
