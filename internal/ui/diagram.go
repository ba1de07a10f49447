package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"theoryboard/internal/radial"
)

// cellKind selects the style a canvas cell is drawn with.
type cellKind uint8

const (
	cellBlank cellKind = iota
	cellRing
	cellMajor
	cellMinor
	cellSignature
)

// ringDot is drawn along each ring outline.
const ringDot = '·'

// Canvas is a cols x rows text grid addressed in layout coordinates.
// Draws that fall outside the grid are dropped.
type Canvas struct {
	Space radial.Space
	cols  int
	rows  int
	runes [][]rune
	kinds [][]cellKind
}

// NewCanvas allocates a blank canvas.
func NewCanvas(space radial.Space, cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{Space: space, cols: cols, rows: rows}
	c.runes = make([][]rune, rows)
	c.kinds = make([][]cellKind, rows)
	for r := range rows {
		c.runes[r] = []rune(strings.Repeat(" ", cols))
		c.kinds[r] = make([]cellKind, cols)
	}
	return c
}

// CellWidth is how many layout units one column spans.
func (c *Canvas) CellWidth() float64 {
	return c.Space.ColumnWidth(c.cols)
}

// At returns the rune at column col, row row.
func (c *Canvas) At(col, row int) rune {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0
	}
	return c.runes[row][col]
}

// DrawRing plots the outline of a ring of the given radius.
func (c *Canvas) DrawRing(radius float64) {
	if c.cols == 0 || c.rows == 0 || !c.Space.Valid() {
		return
	}
	if !(radius > 0) || radius > c.Space.MaxRadius() {
		return
	}
	// Enough samples to touch every cell the circle crosses.
	steps := max(int(2*math.Pi*radius/math.Min(c.CellWidth(), c.rowHeight())), 12) * 2
	for i := range steps {
		p := radial.Place(radius, 360*float64(i)/float64(steps), "")
		col, row, ok := c.Space.ToCell(p.AnchorX, p.AnchorY, c.cols, c.rows)
		if !ok || c.kinds[row][col] != cellBlank {
			continue
		}
		c.runes[row][col] = ringDot
		c.kinds[row][col] = cellRing
	}
}

// DrawLabel writes a placed label starting at its X/Y. Cells left or right
// of the grid are clipped.
func (c *Canvas) DrawLabel(p radial.Placed, kind cellKind) {
	if c.cols == 0 || c.rows == 0 || !c.Space.Valid() {
		return
	}
	_, row, ok := c.Space.ToCell(p.AnchorX, p.AnchorY, c.cols, c.rows)
	if !ok {
		return
	}
	col := int(math.Round((p.X - c.Space.XMin) / c.CellWidth()))
	for _, r := range p.Label {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= c.cols {
			for k := range w {
				c.clearWide(row, col+k)
			}
			c.runes[row][col] = r
			c.kinds[row][col] = kind
			// Wide runes occupy the following cell too.
			for k := 1; k < w; k++ {
				c.runes[row][col+k] = 0
				c.kinds[row][col+k] = kind
			}
		}
		col += w
	}
}

// clearWide blanks every cell of the wide rune covering (col, row), so a
// label never leaves half of an earlier one behind.
func (c *Canvas) clearWide(row, col int) {
	lead := col
	for lead > 0 && c.runes[row][lead] == 0 {
		lead--
	}
	w := runewidth.RuneWidth(c.runes[row][lead])
	if w < 2 || lead+w <= col {
		return
	}
	for k := lead; k < min(lead+w, c.cols); k++ {
		c.runes[row][k] = ' '
		c.kinds[row][k] = cellBlank
	}
}

// String renders the canvas with styles applied.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for r := range c.rows {
		var b strings.Builder
		start := 0
		for col := 1; col <= c.cols; col++ {
			if col < c.cols && c.kinds[r][col] == c.kinds[r][start] {
				continue
			}
			b.WriteString(renderRun(c.kinds[r][start], c.runes[r][start:col]))
			start = col
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Plain renders the canvas without styles.
func (c *Canvas) Plain() string {
	lines := make([]string, c.rows)
	for r := range c.rows {
		lines[r] = runesToString(c.runes[r])
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) rowHeight() float64 {
	if c.rows == 0 {
		return 0
	}
	return (c.Space.YMax - c.Space.YMin) / float64(c.rows)
}

func runesToString(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func renderRun(kind cellKind, rs []rune) string {
	s := runesToString(rs)
	var st lipgloss.Style
	switch kind {
	case cellBlank:
		return s
	case cellRing:
		st = Styles.Ring
	case cellMajor:
		st = Styles.Major
	case cellMinor:
		st = Styles.Minor
	case cellSignature:
		st = Styles.Signature
	default:
		return s
	}
	return st.Render(s)
}

// ringKind maps a ring to its label style; unknown rings draw as major.
func ringKind(ring string) cellKind {
	switch ring {
	case radial.RingMinor:
		return cellMinor
	case radial.RingSignature:
		return cellSignature
	default:
		return cellMajor
	}
}

// RenderDiagram rasterises d into a cols x rows canvas: ring outlines first,
// labels on top. The layout is recomputed from the static table every call.
func RenderDiagram(d radial.Diagram, space radial.Space, cols, rows int) *Canvas {
	c := NewCanvas(space, cols, rows)
	for _, r := range d.Rings {
		c.DrawRing(r.Radius)
	}
	for _, p := range d.Place(c.CellWidth()) {
		c.DrawLabel(p, ringKind(p.Ring))
	}
	return c
}
