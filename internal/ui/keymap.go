package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects the state-independent bindings handled outside the filter
// machine.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Left     key.Binding
	Right    key.Binding
	Refresh  key.Binding
	Contexts key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		Left:     key.NewBinding(key.WithKeys("left", "shift+tab")),
		Right:    key.NewBinding(key.WithKeys("right", "tab")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
		Contexts: key.NewBinding(key.WithKeys("ctrl+s")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
