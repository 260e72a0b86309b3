// Package undo provides snapshot-based undo and redo over any cloneable state.
//
// Every Modify keeps a full copy of the previous state. The history is a line: editing
// after an undo discards the states that could have been redone.
package undo

// Cloner is implemented by states that know how to deep-copy themselves
type Cloner[T any] interface {
	Clone() T
}

// Stack wraps a state with a linear history and a movable cursor.
// It also remembers which entry matches the persisted copy, for dirty tracking.
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	states  []T
	current int
	clean   int // -1 when no entry is known to be clean
	limit   int
	clone   func(T) T
}

// Option configures a Stack
type Option func(*config)

type config struct {
	limit int
}

// WithLimit caps the number of undo steps kept. Older states are dropped first.
// Zero or a negative value keeps the whole history.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

// New creates a stack whose only state is initial, cloning through T.Clone
func New[T Cloner[T]](initial T, opts ...Option) *Stack[T] {
	return NewWithClone(initial, func(v T) T { return v.Clone() }, opts...)
}

// NewWithClone creates a stack whose only state is initial, cloning through clone
func NewWithClone[T any](initial T, clone func(T) T, opts ...Option) *Stack[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Stack[T]{
		states: []T{initial},
		clean:  -1,
		limit:  cfg.limit,
		clone:  clone,
	}
}

// State returns the state under the cursor
func (s *Stack[T]) State() T {
	return s.states[s.current]
}

// Modify discards any redo states, pushes a copy of the current state and applies fn to it.
// fn receives the new copy; the previous state is left untouched for Undo.
func (s *Stack[T]) Modify(fn func(T)) {
	s.clearRedoStates()

	s.states = append(s.states, s.clone(s.State()))
	s.current++
	s.trim()

	fn(s.states[s.current])
}

func (s *Stack[T]) clearRedoStates() {
	clear(s.states[s.current+1:])
	s.states = s.states[:s.current+1]

	if s.clean > s.current {
		s.clean = -1
	}
}

// trim drops the oldest states once the history is longer than the limit
func (s *Stack[T]) trim() {
	if s.limit <= 0 {
		return
	}

	excess := len(s.states) - 1 - s.limit
	if excess <= 0 {
		return
	}

	clear(s.states[:excess])
	s.states = s.states[excess:]
	s.current -= excess

	switch {
	case s.clean < 0:
	case s.clean < excess:
		s.clean = -1
	default:
		s.clean -= excess
	}
}

// Undo moves the cursor back one state. Returns true if the cursor moved.
func (s *Stack[T]) Undo() bool {
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// Redo moves the cursor forward one state after an Undo. Returns true if the cursor moved.
func (s *Stack[T]) Redo() bool {
	if s.current >= len(s.states)-1 {
		return false
	}
	s.current++
	return true
}

// UndoCount returns how many times Undo can succeed
func (s *Stack[T]) UndoCount() int {
	return s.current
}

// RedoCount returns how many times Redo can succeed
func (s *Stack[T]) RedoCount() int {
	return len(s.states) - 1 - s.current
}

// MarkClean records the current state as the one matching external storage
func (s *Stack[T]) MarkClean() {
	s.clean = s.current
}

// IsDirty reports whether the current state differs from the one last marked clean.
// A stack that was never marked clean is dirty.
func (s *Stack[T]) IsDirty() bool {
	return s.clean != s.current
}

// Reset replaces the whole history with a single state and clears the clean marker
func (s *Stack[T]) Reset(state T) {
	clear(s.states)
	s.states = append(s.states[:0], state)
	s.current = 0
	s.clean = -1
}
