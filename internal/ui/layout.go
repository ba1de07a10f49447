package ui

// Rect is a region of the terminal in cells, borders included.
type Rect struct {
	X, Y, W, H int
}

// Inner returns the content size inside a one-cell border.
func (r Rect) Inner() (w, h int) {
	return max(r.W-2, 0), max(r.H-2, 0)
}

// Layout splits the screen into the three panel regions: the diagram takes
// the left 60%, the right 40% is split 30/70 into info and select.
// Margin cells are left around the whole dashboard and footer rows are
// reserved at the bottom for key hints.
type Layout struct {
	Margin int
	Footer int
}

// DefaultLayout matches the dashboard's one-cell margin and a one-line
// help footer.
var DefaultLayout = Layout{Margin: 1, Footer: 1}

// Regions returns the rectangle of every panel for a width x height screen.
func (l Layout) Regions(width, height int) map[Panel]Rect {
	w := max(width-2*l.Margin, 0)
	h := max(height-2*l.Margin-l.Footer, 0)
	x0, y0 := l.Margin, l.Margin

	leftW := w * 60 / 100
	rightW := w - leftW
	infoH := h * 30 / 100
	selectH := h - infoH

	return map[Panel]Rect{
		PanelDiagram: {X: x0, Y: y0, W: leftW, H: h},
		PanelInfo:    {X: x0 + leftW, Y: y0, W: rightW, H: infoH},
		PanelSelect:  {X: x0 + leftW, Y: y0 + infoH, W: rightW, H: selectH},
	}
}
