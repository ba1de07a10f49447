package input

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatalf("event stream did not close; got %d events", len(out))
		}
	}
}

func TestPump_ScriptPreservesOrder(t *testing.T) {
	src, err := ParseScript(strings.NewReader("j\ntick\nk\n# comment\n\nctrl+q\n"))
	require.NoError(t, err)
	require.Equal(t, 4, src.Len())

	events := collect(t, Pump(context.Background(), src, time.Millisecond))
	require.Equal(t, []Event{
		KeyPress{Code: "j"},
		Tick{},
		KeyPress{Code: "k"},
		KeyPress{Code: "q", Mods: ModCtrl},
	}, events)
}

func TestPump_IdleSourceTicks(t *testing.T) {
	keys := make(chan KeyPress)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := Pump(ctx, ChanSource(keys), 5*time.Millisecond)
	for i := 0; i < 3; i++ {
		select {
		case ev := <-events:
			assert.Equal(t, Tick{}, ev)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a tick from an idle source")
		}
	}
}

func TestPump_KeyAfterTicks(t *testing.T) {
	keys := make(chan KeyPress, 1)
	keys <- KeyPress{Code: "down"}
	close(keys)

	events := collect(t, Pump(context.Background(), ChanSource(keys), time.Second))
	require.Equal(t, []Event{KeyPress{Code: "down"}}, events)
}

func TestPump_CancelClosesStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := Pump(ctx, ChanSource(make(chan KeyPress)), time.Hour)
	cancel()
	collect(t, events)
}

func TestPump_ProducerDoesNotWaitForConsumer(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString("j\n")
	}
	src, err := ParseScript(strings.NewReader(b.String()))
	require.NoError(t, err)

	counted := &countingSource{src: src}
	events := Pump(context.Background(), counted, time.Millisecond)
	// Nothing reads until the whole script has been polled.
	require.Eventually(t, func() bool { return counted.polls.Load() > 500 }, 2*time.Second, time.Millisecond)
	assert.Len(t, collect(t, events), 500)
}

type countingSource struct {
	src   Source
	polls atomic.Int32
}

func (c *countingSource) Poll(ctx context.Context, timeout time.Duration) (KeyPress, bool, error) {
	c.polls.Add(1)
	return c.src.Poll(ctx, timeout)
}

func TestParseScript_RejectsTwoKeysOnALine(t *testing.T) {
	_, err := ParseScript(strings.NewReader("j k\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
