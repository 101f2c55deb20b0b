// Package history keeps pre-mutation snapshots for undo and redo.
//
// A Stack stores deep copies: values go in through Clone and come out through
// Clone, so nothing the caller holds ever aliases a stored snapshot.
package history

import "github.com/cockroachdb/errors"

// ErrNothingToUndo and ErrNothingToRedo are reported by hosts when the
// corresponding stack is empty.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// DefaultLimit bounds a Stack created with a non-positive limit.
const DefaultLimit = 50

// Snapshot is a structure that can deep-copy itself.
type Snapshot[S any] interface {
	Clone() S
}

// Stack is a bounded undo/redo stack of snapshots.
type Stack[S Snapshot[S]] struct {
	undo  []S
	redo  []S
	limit int
}

// New returns a Stack keeping at most limit undo entries.
func New[S Snapshot[S]](limit int) *Stack[S] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack[S]{limit: limit}
}

// Push records the state as it was before a mutation. The oldest entry is
// evicted past the limit and the redo stack is cleared.
func (s *Stack[S]) Push(before S) {
	if len(s.undo) >= s.limit {
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:len(s.undo)-1]
	}
	s.undo = append(s.undo, before.Clone())
	s.redo = s.redo[:0]
}

// Undo pops the most recent snapshot and returns a copy of it. current is
// saved for Redo. Reports false when there is nothing to undo.
func (s *Stack[S]) Undo(current S) (S, bool) {
	if len(s.undo) == 0 {
		var zero S
		return zero, false
	}
	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, current.Clone())
	return last.Clone(), true
}

// Redo re-applies the most recently undone state; current goes back on the
// undo stack.
func (s *Stack[S]) Redo(current S) (S, bool) {
	if len(s.redo) == 0 {
		var zero S
		return zero, false
	}
	last := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, current.Clone())
	return last.Clone(), true
}

// CanUndo reports whether Undo would succeed.
func (s *Stack[S]) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Stack[S]) CanRedo() bool { return len(s.redo) > 0 }

// Len returns the number of undo entries.
func (s *Stack[S]) Len() int { return len(s.undo) }

// Clear drops both stacks.
func (s *Stack[S]) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
}
