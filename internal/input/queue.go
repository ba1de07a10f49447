package input

import "context"

// newQueue returns the two ends of an unbounded FIFO. Sends on in never
// wait on the reader of out. Closing in drains the remaining events to out
// and then closes out. Cancelling ctx closes out immediately.
func newQueue(ctx context.Context) (chan<- Event, <-chan Event) {
	in := make(chan Event)
	out := make(chan Event)
	go func() {
		defer close(out)
		var buf []Event
		src := in
		for src != nil || len(buf) > 0 {
			var dst chan Event
			var next Event
			if len(buf) > 0 {
				dst = out
				next = buf[0]
			}
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-src:
				if !ok {
					src = nil
					continue
				}
				buf = append(buf, ev)
			case dst <- next:
				buf[0] = nil
				buf = buf[1:]
			}
		}
	}()
	return in, out
}
