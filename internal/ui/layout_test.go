package ui

import "testing"

func TestLayout_Regions(t *testing.T) {
	r := Layout{}.Regions(100, 50)

	want := map[Panel]Rect{
		PanelDiagram: {X: 0, Y: 0, W: 60, H: 50},
		PanelInfo:    {X: 60, Y: 0, W: 40, H: 15},
		PanelSelect:  {X: 60, Y: 15, W: 40, H: 35},
	}
	for p, w := range want {
		if r[p] != w {
			t.Errorf("%s: got %+v, want %+v", p, r[p], w)
		}
	}
}

func TestLayout_RegionsTileTheScreen(t *testing.T) {
	for _, size := range [][2]int{{100, 32}, {81, 23}, {7, 3}} {
		l := DefaultLayout
		r := l.Regions(size[0], size[1])
		d, i, s := r[PanelDiagram], r[PanelInfo], r[PanelSelect]

		if d.W+i.W != size[0]-2*l.Margin {
			t.Errorf("%v: widths %d+%d do not fill %d", size, d.W, i.W, size[0]-2*l.Margin)
		}
		if i.W != s.W || i.X != s.X {
			t.Errorf("%v: info %+v and select %+v not in one column", size, i, s)
		}
		if i.H+s.H != d.H || s.Y != i.Y+i.H {
			t.Errorf("%v: right column %+v / %+v does not match diagram %+v", size, i, s, d)
		}
		if d.H != size[1]-2*l.Margin-l.Footer {
			t.Errorf("%v: height %d, want %d", size, d.H, size[1]-2*l.Margin-l.Footer)
		}
	}
}

func TestLayout_RegionsNeverNegative(t *testing.T) {
	for _, rect := range DefaultLayout.Regions(0, 0) {
		if rect.W < 0 || rect.H < 0 {
			t.Errorf("negative rect %+v", rect)
		}
		if w, h := rect.Inner(); w < 0 || h < 0 {
			t.Errorf("negative inner size %dx%d", w, h)
		}
	}
}
