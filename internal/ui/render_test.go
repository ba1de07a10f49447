package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theoryboard/internal/config"
)

func TestRender_ShowsAllPanels(t *testing.T) {
	a := newTestApp()
	a.SetSize(100, 32)
	frame := ansi.Strip(a.Render())

	for _, want := range []string{"Menu Select", "Menu Info", "Main Board", "> Circle of fifths", "  Harmonic"} {
		assert.Contains(t, frame, want)
	}
}

func TestRender_FitsTerminal(t *testing.T) {
	for _, size := range [][2]int{{100, 32}, {80, 24}, {160, 48}} {
		a := newTestApp()
		a.SetSize(size[0], size[1])
		frame := a.Render()

		assert.Equal(t, size[1], lipgloss.Height(frame), "height for %v", size)
		for i, line := range strings.Split(frame, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), size[0], "line %d for %v", i, size)
		}
	}
}

func TestRender_FullHelpKeepsHeight(t *testing.T) {
	a := newTestApp()
	a.SetSize(100, 32)
	press(t, a, "?")
	frame := a.Render()
	assert.Equal(t, 32, lipgloss.Height(frame))
	assert.Contains(t, ansi.Strip(frame), "next panel")
}

func TestRender_TinyTerminal(t *testing.T) {
	a := newTestApp()
	for _, size := range [][2]int{{10, 5}, {1, 1}, {0, 0}} {
		a.SetSize(size[0], size[1])
		assert.NotPanics(t, func() { _ = a.Render() }, "size %v", size)
	}
}

func TestRender_InfoFollowsSelectionAndScroll(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i+1)
	}
	a := NewAppModel(config.Dataset{
		Items:   []string{"one", "two"},
		Infos:   []string{strings.Join(lines, "\n"), "other text"},
		Diagram: config.Default().Diagram,
		Space:   config.Default().Space,
	})
	a.SetSize(100, 32)

	frame := ansi.Strip(a.Render())
	assert.Contains(t, frame, "line 01")

	press(t, a, "i", "j")
	frame = ansi.Strip(a.Render())
	assert.NotContains(t, frame, "line 01")
	assert.Contains(t, frame, "line 02")

	// Offsets past the text are kept but the panel stays drawable.
	for range 50 {
		press(t, a, "j")
	}
	assert.Equal(t, uint(51), a.List.Offset(0))
	assert.NotPanics(t, func() { _ = a.Render() })

	press(t, a, "s", "j")
	frame = ansi.Strip(a.Render())
	assert.Contains(t, frame, "other text")
	assert.Contains(t, frame, "> two")
}

func TestRender_EmptyList(t *testing.T) {
	a := NewAppModel(config.Default())
	a.List = &SelectList{}
	a.SetSize(100, 32)

	frame := ansi.Strip(a.Render())
	assert.Contains(t, frame, "nothing selected")
	assert.Contains(t, frame, "no items")

	press(t, a, "i", "j", "s", "j")
	_, ok := a.List.Selected()
	assert.False(t, ok)
}

func TestRender_SelectListScrollsToCursor(t *testing.T) {
	items := make([]string, 40)
	infos := make([]string, 40)
	for i := range items {
		items[i] = "item " + string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	a := NewAppModel(config.Dataset{
		Items:   items,
		Infos:   infos,
		Diagram: config.Default().Diagram,
		Space:   config.Default().Space,
	})
	a.SetSize(100, 32)

	press(t, a, "k") // wrap to the last item
	frame := ansi.Strip(a.Render())
	require.Contains(t, frame, "> "+items[39])
	assert.NotContains(t, frame, items[0])
}
