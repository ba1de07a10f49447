package ui

import (
	"fmt"
	"math"
)

// SelectList is a cyclic single-selection list. Each item has detail text
// (infos[i] belongs to items[i]) and a vertical scroll offset for that text.
//
// The zero value is an empty list with no selection. Index arguments that do
// not name a live item are caller bugs and panic.
type SelectList struct {
	items    []string
	infos    []string
	offsets  []uint
	selected int
	hasSel   bool
}

// NewSelectList builds a populated list; see SetItems.
func NewSelectList(items, infos []string) *SelectList {
	l := &SelectList{}
	l.SetItems(items, infos)
	return l
}

// SetItems replaces the dataset, zeroes every scroll offset and selects the
// first item. items and infos must have equal length; otherwise it panics
// before touching the existing state.
func (l *SelectList) SetItems(items, infos []string) {
	if len(items) != len(infos) {
		panic(fmt.Sprintf("ui: SetItems: %d items but %d infos", len(items), len(infos)))
	}
	l.items = append([]string(nil), items...)
	l.infos = append([]string(nil), infos...)
	l.offsets = make([]uint, len(items))
	l.selected = 0
	l.hasSel = len(items) > 0
}

// Len returns the number of items.
func (l *SelectList) Len() int {
	return len(l.items)
}

// Items returns the item labels in display order.
func (l *SelectList) Items() []string {
	return l.items
}

// Infos returns the detail texts, index-aligned with Items.
func (l *SelectList) Infos() []string {
	return l.infos
}

// Selected returns the selected index; ok is false before the list has been
// populated.
func (l *SelectList) Selected() (idx int, ok bool) {
	return l.selected, l.hasSel
}

// Offset returns the scroll offset of item i.
func (l *SelectList) Offset(i int) uint {
	l.mustIndex(i)
	return l.offsets[i]
}

// SelectedInfo returns the detail text and scroll offset of the selection.
func (l *SelectList) SelectedInfo() (info string, offset uint, ok bool) {
	if !l.hasSel {
		return "", 0, false
	}
	return l.infos[l.selected], l.offsets[l.selected], true
}

// SelectNext moves the selection to the successor, wrapping from the last
// item to the first.
func (l *SelectList) SelectNext() {
	if !l.hasSel {
		l.selectFirst()
		return
	}
	l.selected = (l.selected + 1) % len(l.items)
}

// SelectPrevious moves the selection to the predecessor, wrapping from the
// first item to the last.
func (l *SelectList) SelectPrevious() {
	if !l.hasSel {
		// Unreachable once populated: SetItems always selects 0.
		l.selectFirst()
		return
	}
	if l.selected == 0 {
		l.selected = len(l.items) - 1
		return
	}
	l.selected--
}

// ScrollUp decrements the scroll offset of item i, stopping at zero.
func (l *SelectList) ScrollUp(i int) {
	l.mustIndex(i)
	if l.offsets[i] > 0 {
		l.offsets[i]--
	}
}

// ScrollDown increments the scroll offset of item i, stopping at the
// largest representable offset.
func (l *SelectList) ScrollDown(i int) {
	l.mustIndex(i)
	if l.offsets[i] < math.MaxUint {
		l.offsets[i]++
	}
}

func (l *SelectList) selectFirst() {
	if len(l.items) == 0 {
		return
	}
	l.selected = 0
	l.hasSel = true
}

func (l *SelectList) mustIndex(i int) {
	if i < 0 || i >= len(l.items) {
		panic(fmt.Sprintf("ui: item index %d out of range [0,%d)", i, len(l.items)))
	}
}
