package application

import (
	"errors"
	"fmt"
	"io"
	"log"

	"td/internal/domain"
	"td/internal/ports"
	"td/internal/undo"
)

// Session is an open task database: the graph with its undo history, the file it was
// loaded from and an optional search index kept in step on every save.
// Session is not safe for concurrent use.
type Session struct {
	db    ports.TaskDatabase
	index ports.TaskIndex
	// indexStale is set when the last index sync failed
	indexStale bool
	history    *undo.Stack[*domain.Graph]
	limit      int
	created    bool
	logger     *log.Logger
}

// Ensure Session implements TaskStore
var _ ports.TaskStore = (*Session)(nil)

// SessionOption configures a Session
type SessionOption func(*Session)

// WithIndex mirrors the graph into idx. Index failures are logged and never fail
// the session, since the database file stays authoritative.
func WithIndex(idx ports.TaskIndex) SessionOption {
	return func(s *Session) {
		s.index = idx
	}
}

// WithHistoryLimit caps the number of undo steps. Zero keeps everything.
func WithHistoryLimit(n int) SessionOption {
	return func(s *Session) {
		s.limit = n
	}
}

// WithLogger sets the logger for index warnings and reloads
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// OpenSession loads the database and starts a clean history on top of it
func OpenSession(db ports.TaskDatabase, opts ...SessionOption) (*Session, error) {
	s := &Session{
		db:     db,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	g, created, err := db.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", db.Path(), err)
	}
	s.created = created
	s.history = undo.New(g, undo.WithLimit(s.limit))
	s.history.MarkClean()

	if s.index != nil && (created || s.index.NeedsFullRebuild()) {
		s.syncIndex()
	}

	return s, nil
}

// Path returns the database file location
func (s *Session) Path() string {
	return s.db.Path()
}

// Created reports whether opening the session created a new database file
func (s *Session) Created() bool {
	return s.created
}

// Index returns the search index, or nil when none is configured
func (s *Session) Index() ports.TaskIndex {
	return s.index
}

// SearchIndex returns the index when it mirrors the current graph, nil otherwise.
// The index is only synced on open, save and reload, so unsaved edits, undo and redo
// leave it behind until the next save.
func (s *Session) SearchIndex() ports.TaskIndex {
	if s.index == nil || s.indexStale || s.IsDirty() {
		return nil
	}
	return s.index
}

// State returns the current graph. Callers must not mutate it outside Modify.
func (s *Session) State() *domain.Graph {
	return s.history.State()
}

// Modify records an undo step and applies fn to a copy of the current graph
func (s *Session) Modify(fn func(g *domain.Graph)) {
	s.history.Modify(fn)
}

// Undo steps back one modification
func (s *Session) Undo() error {
	if !s.history.Undo() {
		return ErrNothingToUndo
	}
	return nil
}

// Redo re-applies the last undone modification
func (s *Session) Redo() error {
	if !s.history.Redo() {
		return ErrNothingToRedo
	}
	return nil
}

// UndoCount returns how many steps can be undone
func (s *Session) UndoCount() int {
	return s.history.UndoCount()
}

// RedoCount returns how many steps can be redone
func (s *Session) RedoCount() int {
	return s.history.RedoCount()
}

// IsDirty reports whether the current graph differs from the saved one
func (s *Session) IsDirty() bool {
	return s.history.IsDirty()
}

// Save writes the current graph and marks it clean
func (s *Session) Save() error {
	if err := s.db.Save(s.State()); err != nil {
		return err
	}
	s.history.MarkClean()
	s.syncIndex()
	return nil
}

// Reload replaces the history with the graph currently on disk
func (s *Session) Reload() error {
	g, _, err := s.db.Load()
	if err != nil {
		return fmt.Errorf("failed to reload %s: %w", s.db.Path(), err)
	}
	s.history.Reset(g)
	s.history.MarkClean()
	s.syncIndex()
	return nil
}

// ReloadIfChanged reloads when another program changed the file and there are no
// unsaved edits. Returns true if a reload happened.
func (s *Session) ReloadIfChanged() (bool, error) {
	changed, err := s.db.Changed()
	if err != nil || !changed {
		return false, err
	}
	if s.IsDirty() {
		s.logger.Printf("%s changed on disk, keeping unsaved edits", s.db.Path())
		return false, nil
	}
	if err := s.Reload(); err != nil {
		return false, err
	}
	s.logger.Printf("reloaded %s", s.db.Path())
	return true, nil
}

// Close releases the index
func (s *Session) Close() error {
	if s.index == nil {
		return nil
	}
	return s.index.Close()
}

func (s *Session) syncIndex() {
	if s.index == nil {
		return
	}
	stats, err := s.index.SyncFull(s.State())
	if err != nil {
		s.indexStale = true
		s.logger.Printf("index sync failed: %v", err)
		return
	}
	s.indexStale = false
	s.logger.Printf("indexed %d tasks, %d tags, %d dependencies in %s",
		stats.TasksIndexed, stats.TagsIndexed, stats.EdgesIndexed, stats.Duration)
}

// IsLoadError reports whether err came from a database that exists but cannot be read
func IsLoadError(err error) bool {
	return errors.Is(err, domain.ErrUnknownVersion) ||
		errors.Is(err, domain.ErrMalformedDatabase) ||
		errors.Is(err, domain.ErrUnresolvedDependency)
}
