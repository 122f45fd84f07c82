package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings used across all views
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	ToggleTips key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default shared key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns keybindings for the monitoring view mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchView, k.ToggleTips, k.Quit}
}

// FullHelp returns keybindings for the monitoring view expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.SwitchView, k.ToggleTips, k.Quit, k.ForceQuit}}
}
