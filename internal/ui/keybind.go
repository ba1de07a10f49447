package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every key the dashboard recognizes. Keys not bound here are
// ignored.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	FocusDiagram key.Binding
	FocusInfo    key.Binding
	FocusSelect  key.Binding
	NextPanel    key.Binding
	PrevPanel    key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the dashboard bindings.
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
		FocusDiagram: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main board"),
		),
		FocusInfo: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "menu info"),
		),
		FocusSelect: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "menu select"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ForPanel returns a copy whose navigation hints describe what up/down do in
// panel p. Navigation is disabled on the diagram, which has no handler.
func (km KeyMap) ForPanel(p Panel) KeyMap {
	switch p {
	case PanelSelect:
		km.Up.SetHelp("↑/k", "prev item")
		km.Down.SetHelp("↓/j", "next item")
	case PanelInfo:
		km.Up.SetHelp("↑/k", "scroll up")
		km.Down.SetHelp("↓/j", "scroll down")
	case PanelDiagram:
		km.Up.SetEnabled(false)
		km.Down.SetEnabled(false)
	default:
		panic("ui: unknown panel " + p.String())
	}
	return km
}

var _ help.KeyMap = KeyMap{}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.FocusDiagram, km.FocusInfo, km.FocusSelect, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.FocusDiagram, km.FocusInfo, km.FocusSelect},
		{km.NextPanel, km.PrevPanel},
		{km.Help, km.Quit},
	}
}
