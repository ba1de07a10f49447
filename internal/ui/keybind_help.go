package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the footer for the focused panel: one line of
// short hints, or the full grouped help when full is set.
func RenderKeybindHelp(km KeyMap, focused Panel, width int, full bool) string {
	h := help.New()
	h.Width = width
	h.ShowAll = full
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	return h.View(km.ForPanel(focused))
}
