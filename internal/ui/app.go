package ui

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"theoryboard/internal/config"
	"theoryboard/internal/input"
	"theoryboard/internal/radial"
	"theoryboard/internal/trace"
)

// Default frame size used until the terminal reports its size.
const (
	defaultWidth  = 100
	defaultHeight = 32
)

// AppModel is the root model: it owns the focus controller and the select
// list, routes every event to the focused panel and renders full frames.
type AppModel struct {
	Focus        *FocusController
	List         *SelectList
	Diagram      radial.Diagram
	Space        radial.Space
	Keys         KeyMap
	Tracer       *trace.Exporter // nil = tracing disabled
	TickInterval time.Duration
	ShowFullHelp bool

	width, height int
	listStart     int // first visible row of the select list
	ticks         int // idle ticks handled
	tickTag       int // tag of the only idle tick that is still live
}

// NewAppModel builds the dashboard for a dataset. The dataset must already
// be valid; mismatched items and infos panic.
func NewAppModel(ds config.Dataset) *AppModel {
	a := &AppModel{
		Focus:        NewFocusController(),
		List:         NewSelectList(ds.Items, ds.Infos),
		Diagram:      ds.Diagram,
		Space:        ds.Space,
		Keys:         DefaultKeyMap(),
		TickInterval: input.DefaultPollTimeout,
	}
	a.Focus.OnChange = func(from, to Panel) {
		log.Printf("ui: focus %s -> %s", from, to)
	}
	return a
}

// SetSize sets the frame size used by Render.
func (a *AppModel) SetSize(width, height int) {
	a.width, a.height = width, height
}

// Size returns the frame size, falling back to the default before the
// terminal has reported one.
func (a *AppModel) Size() (width, height int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// Ticks returns how many idle ticks have been handled.
func (a *AppModel) Ticks() int {
	return a.ticks
}

// HandleEvent processes one event to completion and reports whether the
// dashboard should quit.
func (a *AppModel) HandleEvent(ev input.Event) (quit bool) {
	start := time.Now()
	before := a.Focus.Current()

	switch ev := ev.(type) {
	case input.Tick:
		a.ticks++
	case input.KeyPress:
		quit = a.handleKey(ev)
	default:
		panic(fmt.Sprintf("ui: unknown event %T", ev))
	}

	a.traceEvent(ev, before, start, quit)
	return quit
}

func (a *AppModel) traceEvent(ev input.Event, before Panel, start time.Time, quit bool) {
	if a.Tracer == nil {
		return
	}
	attrs := map[string]string{
		trace.AttrEvent:       "tick",
		trace.AttrPanelBefore: before.String(),
		trace.AttrPanelAfter:  a.Focus.Current().String(),
	}
	if k, ok := ev.(input.KeyPress); ok {
		attrs[trace.AttrEvent] = "key"
		attrs[trace.AttrKey] = k.String()
	}
	if idx, ok := a.List.Selected(); ok {
		attrs[trace.AttrSelected] = strconv.Itoa(idx)
		attrs[trace.AttrOffset] = strconv.FormatUint(uint64(a.List.Offset(idx)), 10)
	}
	if quit {
		attrs["quit"] = "true"
	}
	a.Tracer.Export(trace.Span{
		Name:       "dashboard.event",
		StartTime:  start,
		Duration:   time.Since(start),
		Attributes: attrs,
	})
}

// handleKey applies global bindings first, then routes the key to the
// focused panel. Unbound keys are ignored.
func (a *AppModel) handleKey(k input.KeyPress) (quit bool) {
	km := a.Keys
	switch {
	case key.Matches(k, km.Quit):
		return true
	case key.Matches(k, km.FocusDiagram):
		a.Focus.Select(PanelDiagram)
	case key.Matches(k, km.FocusInfo):
		a.Focus.Select(PanelInfo)
	case key.Matches(k, km.FocusSelect):
		a.Focus.Select(PanelSelect)
	case key.Matches(k, km.NextPanel):
		a.Focus.Next()
	case key.Matches(k, km.PrevPanel):
		a.Focus.Prev()
	case key.Matches(k, km.Help):
		a.ShowFullHelp = !a.ShowFullHelp
	default:
		a.routeKey(k)
	}
	return false
}

func (a *AppModel) routeKey(k input.KeyPress) {
	switch p := a.Focus.Current(); p {
	case PanelSelect:
		a.handleSelectKey(k)
	case PanelInfo:
		a.handleInfoKey(k)
	case PanelDiagram:
		// The diagram is static; it has no key handler.
	default:
		panic("ui: no key handler for panel " + p.String())
	}
}

func (a *AppModel) handleSelectKey(k input.KeyPress) {
	switch {
	case key.Matches(k, a.Keys.Up):
		a.List.SelectPrevious()
	case key.Matches(k, a.Keys.Down):
		a.List.SelectNext()
	}
}

func (a *AppModel) handleInfoKey(k input.KeyPress) {
	idx, ok := a.List.Selected()
	if !ok {
		return
	}
	switch {
	case key.Matches(k, a.Keys.Up):
		a.List.ScrollUp(idx)
	case key.Matches(k, a.Keys.Down):
		a.List.ScrollDown(idx)
	}
}
