package ui

import "fmt"

// Panel identifies one of the three on-screen regions that can hold focus.
// The zero value is PanelSelect, the panel focused on the first frame.
type Panel int

const (
	PanelSelect Panel = iota
	PanelInfo
	PanelDiagram
)

// AllPanels is the focus rotation order: left to right, top to bottom.
var AllPanels = []Panel{PanelDiagram, PanelInfo, PanelSelect}

func (p Panel) String() string {
	switch p {
	case PanelSelect:
		return "Select"
	case PanelInfo:
		return "Info"
	case PanelDiagram:
		return "Diagram"
	default:
		return fmt.Sprintf("Panel(%d)", int(p))
	}
}

// Title is the caption drawn at the top of the panel's box.
func (p Panel) Title() string {
	switch p {
	case PanelSelect:
		return "Menu Select"
	case PanelInfo:
		return "Menu Info"
	case PanelDiagram:
		return "Main Board"
	default:
		panic(fmt.Sprintf("ui: unknown panel %d", int(p)))
	}
}
