package radial

import "math"

// Space is the rectangular coordinate domain all points are projected into.
type Space struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultSpace is the [-200,200] x [-200,200] square the diagram is drawn in.
var DefaultSpace = Space{XMin: -200, XMax: 200, YMin: -200, YMax: 200}

// Contains reports whether (x, y) lies inside the space, edges included.
func (s Space) Contains(x, y float64) bool {
	return x >= s.XMin && x <= s.XMax && y >= s.YMin && y <= s.YMax
}

// Valid reports whether all bounds are finite and both axes have positive
// extent.
func (s Space) Valid() bool {
	for _, v := range [...]float64{s.XMin, s.XMax, s.YMin, s.YMax} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return s.XMax > s.XMin && s.YMax > s.YMin
}

// MaxRadius is the largest ring radius worth drawing: four times the
// farthest bound from the origin. Larger rings never touch the space.
func (s Space) MaxRadius() float64 {
	return 4 * max(math.Abs(s.XMin), math.Abs(s.XMax), math.Abs(s.YMin), math.Abs(s.YMax))
}

// ToCell maps a coordinate to a column/row of a cols x rows cell grid.
// Row 0 is the top edge (YMax). ok is false when the point is outside the
// space or the grid is empty; the caller drops such draws.
func (s Space) ToCell(x, y float64, cols, rows int) (col, row int, ok bool) {
	if cols <= 0 || rows <= 0 || !s.Valid() || !s.Contains(x, y) {
		return 0, 0, false
	}
	fx := (x - s.XMin) / (s.XMax - s.XMin)
	fy := (s.YMax - y) / (s.YMax - s.YMin)
	col = int(math.Floor(fx * float64(cols)))
	row = int(math.Floor(fy * float64(rows)))
	// XMax / YMin land exactly on the far edge.
	if col == cols {
		col--
	}
	if row == rows {
		row--
	}
	return col, row, true
}

// ColumnWidth is how many layout units one cell column spans.
func (s Space) ColumnWidth(cols int) float64 {
	if cols <= 0 {
		return 0
	}
	return (s.XMax - s.XMin) / float64(cols)
}
