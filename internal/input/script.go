package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// TickWord in a script stands for one idle poll interval.
const TickWord = "tick"

// ScriptSource replays key presses from a text script: one key per line in
// Bubble Tea notation, "tick" for an idle interval, blank lines and lines
// starting with '#' ignored. Lines are consumed without real waiting.
type ScriptSource struct {
	steps []scriptStep
	pos   int
}

type scriptStep struct {
	key  KeyPress
	idle bool
}

// ParseScript reads a whole script.
func ParseScript(r io.Reader) (*ScriptSource, error) {
	s := &ScriptSource{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.ContainsAny(text, " \t") {
			return nil, fmt.Errorf("script line %d: one key per line, got %q", line, text)
		}
		if text == TickWord {
			s.steps = append(s.steps, scriptStep{idle: true})
			continue
		}
		s.steps = append(s.steps, scriptStep{key: ParseKey(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return s, nil
}

// Len returns the number of steps in the script.
func (s *ScriptSource) Len() int {
	return len(s.steps)
}

// Poll implements Source.
func (s *ScriptSource) Poll(ctx context.Context, _ time.Duration) (KeyPress, bool, error) {
	if err := ctx.Err(); err != nil {
		return KeyPress{}, false, err
	}
	if s.pos >= len(s.steps) {
		return KeyPress{}, false, io.EOF
	}
	st := s.steps[s.pos]
	s.pos++
	if st.idle {
		return KeyPress{}, false, nil
	}
	return st.key, true, nil
}
