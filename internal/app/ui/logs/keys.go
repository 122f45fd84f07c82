package logs

import (
	"github.com/charmbracelet/bubbles/key"

	"metroems/internal/app/ui/components"
)

// KeyMap defines the key bindings for logs view
type KeyMap struct {
	components.KeyMap
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Filter    key.Binding
	ClearLogs key.Binding
	Apply     key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings for logs view
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "scroll up")
	base.Down.SetHelp("↓/j", "scroll down")
	base.SwitchView.SetHelp("tab", "monitoring")

	return KeyMap{
		KeyMap: base,
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "follow"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearLogs: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear logs"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings for logs view mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Bottom, k.Filter, k.ClearLogs, k.SwitchView, k.Quit}
}

// FullHelp returns keybindings for logs view expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Filter, k.ClearLogs, k.SwitchView, k.Quit},
	}
}

// FilterHelp returns keybindings shown while typing a filter
func (k KeyMap) FilterHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel}
}
