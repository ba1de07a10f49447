package ui

import (
	"context"

	"theoryboard/internal/input"
)

// Run is the headless event loop: it draws an initial frame, then for each
// event blocks on the channel, handles the event and draws exactly one frame.
// It returns nil when a quit key is handled or events is closed, and the
// context error when ctx is cancelled first.
func Run(ctx context.Context, app *AppModel, events <-chan input.Event, frame func(string)) error {
	frame(app.Render())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if app.HandleEvent(ev) {
				return nil
			}
			frame(app.Render())
		}
	}
}
