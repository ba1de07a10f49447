package input

import (
	"context"
	"errors"
	"io"
	"log"
	"time"
)

// DefaultPollTimeout bounds how long the pump waits for a key before it
// emits a Tick.
const DefaultPollTimeout = 200 * time.Millisecond

// Source yields key presses. Poll waits at most timeout; ok is false when
// no key arrived in time. Returning io.EOF ends the stream.
type Source interface {
	Poll(ctx context.Context, timeout time.Duration) (key KeyPress, ok bool, err error)
}

// Pump polls src on its own goroutine and returns the events in production
// order. Every poll that times out becomes a Tick. The channel is closed
// when src reports an error (io.EOF included) or ctx is cancelled.
func Pump(ctx context.Context, src Source, timeout time.Duration) <-chan Event {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	in, out := newQueue(ctx)
	go func() {
		defer close(in)
		for ctx.Err() == nil {
			k, ok, err := src.Poll(ctx, timeout)
			if err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
					log.Printf("input: poll failed: %v", err)
				}
				return
			}
			var ev Event = Tick{}
			if ok {
				ev = k
			}
			select {
			case in <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// ChanSource adapts a channel of key presses to a Source. A closed channel
// ends the stream.
type ChanSource <-chan KeyPress

// Poll implements Source.
func (c ChanSource) Poll(ctx context.Context, timeout time.Duration) (KeyPress, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k, ok := <-c:
		if !ok {
			return KeyPress{}, false, io.EOF
		}
		return k, true, nil
	case <-timer.C:
		return KeyPress{}, false, nil
	case <-ctx.Done():
		return KeyPress{}, false, ctx.Err()
	}
}
