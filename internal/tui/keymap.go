package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Rerun       key.Binding
	ToggleValue key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rerun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rerun"),
		),
		ToggleValue: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full value"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rerun, k.ToggleValue, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Rerun, k.ToggleValue, k.Quit}}
}
