package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"theoryboard/internal/input"
)

// idleTickMsg fires when TickInterval passed since the tick was armed.
// Only the tick carrying the current tag is live; every key press re-arms
// with a new tag, so a delivered tick always means an idle interval.
type idleTickMsg struct {
	tag int
}

// Ensure the adapter can be used as tea.Model.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.armTick()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		a.tickTag++
		if a.HandleEvent(KeyFromTea(msg)) {
			return a, tea.Quit
		}
		return a, a.armTick()
	case idleTickMsg:
		if msg.tag != a.tickTag {
			return a, nil // a key arrived since this tick was armed
		}
		a.HandleEvent(input.Tick{})
		return a, a.armTick()
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Render()
}

func (a *appModelAdapter) armTick() tea.Cmd {
	tag := a.tickTag
	interval := a.TickInterval
	if interval <= 0 {
		interval = input.DefaultPollTimeout
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return idleTickMsg{tag: tag}
	})
}

// KeyFromTea converts a Bubble Tea key message into a KeyPress.
func KeyFromTea(msg tea.KeyMsg) input.KeyPress {
	return input.ParseKey(msg.String())
}
