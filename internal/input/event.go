// Package input defines the discrete events the dashboard consumes and a
// pump that turns a polled key source into an ordered event stream.
package input

import "strings"

// Event is either a KeyPress or a Tick.
type Event interface {
	isEvent()
}

// Tick is emitted when no key arrived within one poll interval.
type Tick struct{}

func (Tick) isEvent() {}

// Modifiers is a bit set of held modifier keys. The zero value holds none.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether all bits of m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// KeyPress is a single key with its modifiers.
// Code uses Bubble Tea key names: "up", "down", "enter", "esc", or the
// rune itself for printable keys ("k", "?").
type KeyPress struct {
	Code string
	Mods Modifiers
}

func (KeyPress) isEvent() {}

// String renders the key in Bubble Tea notation ("ctrl+q", "alt+k", "up")
// so it can be matched against bubbles/key bindings.
func (k KeyPress) String() string {
	var b strings.Builder
	if k.Mods.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Mods.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Mods.Has(ModShift) {
		b.WriteString("shift+")
	}
	b.WriteString(k.Code)
	return b.String()
}

// ParseKey parses Bubble Tea notation back into a KeyPress. Modifier
// prefixes may appear in any order. A lone "+" is the plus key.
func ParseKey(s string) KeyPress {
	var k KeyPress
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			k.Mods |= ModCtrl
			s = s[len("ctrl+"):]
			continue
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			k.Mods |= ModAlt
			s = s[len("alt+"):]
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			k.Mods |= ModShift
			s = s[len("shift+"):]
			continue
		}
		break
	}
	if s == "space" {
		s = " "
	}
	k.Code = s
	return k
}
