package ui

// FocusController tracks which panel receives routed key input.
// The zero value focuses PanelSelect.
type FocusController struct {
	current  Panel
	OnChange func(from, to Panel) // called only when the panel actually changes
}

// NewFocusController returns a controller focused on the select list.
func NewFocusController() *FocusController {
	return &FocusController{current: PanelSelect}
}

// Current returns the focused panel.
func (f *FocusController) Current() Panel {
	return f.current
}

// Select focuses p. Selecting the focused panel again is a no-op.
func (f *FocusController) Select(p Panel) {
	from := f.current
	f.current = p
	if f.OnChange != nil && from != p {
		f.OnChange(from, p)
	}
}

// Next advances focus to the next panel in AllPanels order.
func (f *FocusController) Next() Panel {
	f.Select(AllPanels[(f.index()+1)%len(AllPanels)])
	return f.current
}

// Prev moves focus to the previous panel in AllPanels order.
func (f *FocusController) Prev() Panel {
	idx := f.index() - 1
	if idx < 0 {
		idx = len(AllPanels) - 1
	}
	f.Select(AllPanels[idx])
	return f.current
}

func (f *FocusController) index() int {
	for i, p := range AllPanels {
		if p == f.current {
			return i
		}
	}
	return -1
}
