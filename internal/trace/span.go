// Package trace exports one span per handled dashboard event to an
// OpenTelemetry collector when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package trace

import "time"

// Attribute names understood by attrKey.
const (
	AttrEvent       = "event"        // "key" or "tick"
	AttrKey         = "key"          // key in Bubble Tea notation
	AttrPanelBefore = "panel_before" // focused panel before handling
	AttrPanelAfter  = "panel_after"  // focused panel after handling
	AttrSelected    = "selected"     // selected list index after handling
	AttrOffset      = "offset"       // scroll offset of the selection
)

// Span is a completed unit of work with its start time and duration.
type Span struct {
	Name       string
	StartTime  time.Time
	Duration   time.Duration
	Attributes map[string]string
}
