package batch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
)

// LineResult is the outcome of converting a single input line.
type LineResult struct {
	Line   int    // 1-based line number within the input
	Input  string // input line with surrounding whitespace removed
	Output string // converted expression, diagnostic line, or "" for blank input
	Err    error  // conversion error, if any
}

// Failed reports whether the line did not convert.
func (r LineResult) Failed() bool {
	return r.Err != nil
}

// endOfBatch is published when a converter is closed. Subscribers stop
// forwarding on receiving it, independent of when the broadcaster closes its
// channels.
type endOfBatch struct{}

// Converter converts lines of expressions and broadcasts the result of each
// line to its subscribers.
//
// A Converter may be used for any number of batches. Subscriptions end when the
// converter is closed.
type Converter struct {
	mode   Mode
	cast   *caster.Caster // broadcaster for line results
	subs   sync.WaitGroup // forwarding goroutines of subscribers
	mu     sync.Mutex
	closed bool
}

// NewConverter creates a converter for a mode.
func NewConverter(mode Mode) (*Converter, error) {
	if mode != InfixToPostfix && mode != PostfixToInfix {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	return &Converter{
		mode: mode,
		cast: caster.New(nil),
	}, nil
}

// Mode returns the direction of conversion.
func (c *Converter) Mode() Mode {
	return c.mode
}

// Subscribe returns a channel which receives a LineResult for every line
// converted after the call, in line order. The channel is closed when the
// converter is closed or ctx is done. Subscribers have to drain the channel,
// otherwise conversion blocks.
func (c *Converter) Subscribe(ctx context.Context) (<-chan LineResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	sub, ok := c.cast.Sub(ctx, 16)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan LineResult, 16)
	c.subs.Add(1)
	go func() {
		defer c.subs.Done()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				drain(sub)
				return
			case msg, ok := <-sub:
				if !ok {
					return
				}
				switch m := msg.(type) {
				case endOfBatch:
					return
				case LineResult:
					select {
					case out <- m:
					case <-ctx.Done():
						drain(sub)
						return
					}
				}
			}
		}
	}()
	return out, nil
}

// drain consumes the messages of a cancelled subscription, as the broadcaster
// blocks on a full subscriber channel. It returns when the broadcaster closes
// the channel or the converter is closed.
func drain(sub chan interface{}) {
	for msg := range sub {
		if _, ok := msg.(endOfBatch); ok {
			return
		}
	}
}

// Close ends all subscriptions. It waits until every result published so far
// has been handed to the subscribers.
func (c *Converter) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.cast.Pub(endOfBatch{})
	c.subs.Wait()
	c.cast.Close()
}

// ConvertLines converts every line and returns the output lines, one for each
// input line. Failing lines are replaced by a diagnostic.
func (c *Converter) ConvertLines(lines []string) ([]string, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}
	out := make([]string, len(lines))
	failures := 0
	for i, line := range lines {
		r := convertLine(c.mode, i+1, line)
		if r.Failed() {
			failures++
		}
		out[i] = r.Output
		c.cast.Pub(r)
	}
	tracer().Infof("converted %d lines (%s), %d failed", len(lines), c.mode, failures)
	return out, nil
}

// ConvertFile converts the lines of file in and writes the results to file
// out. Output lines are separated by newlines, without a trailing newline.
func (c *Converter) ConvertFile(in, out string) error {
	lines, err := Load(in)
	if err != nil {
		return err
	}
	converted, err := c.ConvertLines(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(out, []byte(strings.Join(converted, "\n")), 0644)
}

// ConvertLines converts lines with a throw-away converter.
func ConvertLines(mode Mode, lines []string) ([]string, error) {
	c, err := NewConverter(mode)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.ConvertLines(lines)
}

// ConvertFile converts the lines of file in and writes them to file out.
func ConvertFile(mode Mode, in, out string) error {
	c, err := NewConverter(mode)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.ConvertFile(in, out)
}

func convertLine(mode Mode, lineno int, line string) LineResult {
	r := LineResult{Line: lineno, Input: strings.TrimSpace(line)}
	if r.Input == "" {
		return r
	}
	r.Output, r.Err = mode.Convert(r.Input)
	if r.Err != nil {
		tracer().Errorf("line %d: %s", lineno, r.Err.Error())
		r.Output = Diagnostic(lineno, r.Err)
		return r
	}
	tracer().Debugf("line %d: %q -> %q", lineno, r.Input, r.Output)
	return r
}
