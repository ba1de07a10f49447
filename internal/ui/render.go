package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"theoryboard/internal/ui/textutil"
)

// Render draws a complete frame from the current state. Nothing is cached
// between frames apart from the select list's scroll window.
func (a *AppModel) Render() string {
	width, height := a.Size()
	focused := a.Focus.Current()

	layout := DefaultLayout
	footer := RenderKeybindHelp(a.Keys, focused, max(width-2*layout.Margin, 0), a.ShowFullHelp)
	layout.Footer = lipgloss.Height(footer)
	regions := layout.Regions(width, height)

	diagram := a.renderDiagramPanel(regions[PanelDiagram], focused)
	info := a.renderInfoPanel(regions[PanelInfo], focused)
	sel := a.renderSelectPanel(regions[PanelSelect], focused)

	right := lipgloss.JoinVertical(lipgloss.Left, info, sel)
	body := lipgloss.JoinHorizontal(lipgloss.Top, diagram, right)
	return lipgloss.NewStyle().
		Margin(layout.Margin).
		Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

// panelBox draws a bordered panel with its title on the first inner row.
// body must already fit in the remaining rows.
func panelBox(p, focused Panel, r Rect, title, body string) string {
	w, h := r.Inner()
	if title == "" {
		title = p.Title()
	}
	content := titleStyle(p, focused).Render(textutil.Truncate(title, w))
	if body != "" {
		content += "\n" + body
	}
	return boxStyle(p, focused).
		Width(w).
		Height(h).
		MaxWidth(r.W).
		MaxHeight(r.H).
		Render(content)
}

// bodySize is the area left under the title row.
func bodySize(r Rect) (w, h int) {
	w, h = r.Inner()
	return w, max(h-1, 0)
}

func (a *AppModel) renderDiagramPanel(r Rect, focused Panel) string {
	w, h := bodySize(r)
	title := PanelDiagram.Title()
	if a.Diagram.Title != "" {
		title += " · " + a.Diagram.Title
	}
	canvas := RenderDiagram(a.Diagram, a.Space, w, h)
	return panelBox(PanelDiagram, focused, r, title, canvas.String())
}

func (a *AppModel) renderInfoPanel(r Rect, focused Panel) string {
	w, h := bodySize(r)
	info, offset, ok := a.List.SelectedInfo()
	if !ok {
		return panelBox(PanelInfo, focused, r, "", Styles.Empty.Render(textutil.Truncate("nothing selected", w)))
	}
	if w == 0 || h == 0 {
		return panelBox(PanelInfo, focused, r, "", "")
	}
	vp := viewport.New(w, h)
	vp.SetContent(Styles.Normal.Width(w).Render(info))
	// Offsets beyond the text are kept in state; the viewport clamps them.
	vp.SetYOffset(int(min(offset, uint(math.MaxInt))))
	return panelBox(PanelInfo, focused, r, "", vp.View())
}

func (a *AppModel) renderSelectPanel(r Rect, focused Panel) string {
	w, h := bodySize(r)
	items := a.List.Items()
	if len(items) == 0 {
		return panelBox(PanelSelect, focused, r, "", Styles.Empty.Render(textutil.Truncate("no items", w)))
	}
	sel, _ := a.List.Selected()
	a.listStart = textutil.Window(len(items), h, sel, a.listStart)

	end := min(a.listStart+h, len(items))
	lines := make([]string, 0, end-a.listStart)
	for i := a.listStart; i < end; i++ {
		if i == sel {
			lines = append(lines, Styles.Selected.Render(textutil.PadRightVisual("> "+items[i], w)))
			continue
		}
		lines = append(lines, Styles.Normal.Render(textutil.PadRightVisual("  "+items[i], w)))
	}
	return panelBox(PanelSelect, focused, r, "", strings.Join(lines, "\n"))
}
