package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused borders
	ColorHighlight = "205" // Magenta - selected items
	ColorMuted     = "241" // Gray - unfocused borders, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - ring outlines
	ColorWarning   = "208" // Orange - inner ring labels
	ColorMinor     = "111" // Blue - middle ring labels
)

// Styles contains shared style definitions used across the panels.
var Styles = struct {
	Box        lipgloss.Style // Unfocused panel box
	BoxFocused lipgloss.Style // Focused panel box (accent border)

	Title        lipgloss.Style // Panel caption
	TitleFocused lipgloss.Style // Caption of the focused panel

	Selected lipgloss.Style // Highlighted list item
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text
	Empty    lipgloss.Style // Empty state text

	Ring      lipgloss.Style // Ring outline dots
	Major     lipgloss.Style // Outer ring labels
	Minor     lipgloss.Style // Middle ring labels
	Signature lipgloss.Style // Inner ring labels
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TitleFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Ring: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Major: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Minor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMinor)),
	Signature: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// boxStyle returns the border style for a panel given the focused panel.
func boxStyle(p, focused Panel) lipgloss.Style {
	if p == focused {
		return Styles.BoxFocused
	}
	return Styles.Box
}

func titleStyle(p, focused Panel) lipgloss.Style {
	if p == focused {
		return Styles.TitleFocused
	}
	return Styles.Title
}
