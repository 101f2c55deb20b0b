// Package playback steps through a computed trace.
//
// Traces are computed eagerly by the engines, so playback never re-runs an
// algorithm: a Cursor moves over an existing slice and Play advances it on
// a ticker. Cancelling Play stops the cursor only.
package playback

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrNoSteps is returned by Play for an empty trace.
var ErrNoSteps = errors.New("playback: no steps")

// ErrBadInterval is returned by Play for a non-positive interval.
var ErrBadInterval = errors.New("playback: interval must be positive")

// Cursor is a position over a step slice. The zero position is the first
// step. A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	steps []T
	pos   int
}

// NewCursor returns a cursor at the first step.
func NewCursor[T any](steps []T) *Cursor[T] {
	return &Cursor[T]{steps: steps}
}

// Len returns the number of steps.
func (c *Cursor[T]) Len() int { return len(c.steps) }

// Index returns the current position, or -1 for an empty trace.
func (c *Cursor[T]) Index() int {
	if len(c.steps) == 0 {
		return -1
	}
	return c.pos
}

// Current returns the step under the cursor.
func (c *Cursor[T]) Current() (T, bool) {
	if len(c.steps) == 0 {
		var zero T
		return zero, false
	}
	return c.steps[c.pos], true
}

// Next moves forward one step. It reports false at the last step.
func (c *Cursor[T]) Next() bool {
	if c.pos+1 >= len(c.steps) {
		return false
	}
	c.pos++
	return true
}

// Prev moves back one step. It reports false at the first step.
func (c *Cursor[T]) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}

// Seek moves to i, clamped to the valid range.
func (c *Cursor[T]) Seek(i int) {
	switch {
	case len(c.steps) == 0 || i < 0:
		c.pos = 0
	case i >= len(c.steps):
		c.pos = len(c.steps) - 1
	default:
		c.pos = i
	}
}

// Done reports whether the cursor is on the last step.
func (c *Cursor[T]) Done() bool { return c.pos >= len(c.steps)-1 }

// Reset moves back to the first step.
func (c *Cursor[T]) Reset() { c.pos = 0 }

// Play calls fn with every step in order, the first one immediately and the
// rest one interval apart. It returns ctx.Err() if ctx ends first, or the
// first error fn returns.
func Play[T any](ctx context.Context, steps []T, interval time.Duration, fn func(i int, step T) error) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}
	if interval <= 0 {
		return errors.Wrapf(ErrBadInterval, "%s", interval)
	}

	c := NewCursor(steps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		step, _ := c.Current()
		if err := fn(c.Index(), step); err != nil {
			return err
		}
		if !c.Next() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
