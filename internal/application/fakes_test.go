package application

import (
	"errors"
	"time"

	"td/internal/domain"
	"td/internal/ports"
)

// memoryDatabase is an in-memory ports.TaskDatabase
type memoryDatabase struct {
	stored  *domain.Graph
	saves   int
	loads   int
	changed bool
	loadErr error
	saveErr error
}

func newMemoryDatabase(g *domain.Graph) *memoryDatabase {
	return &memoryDatabase{stored: g}
}

func (m *memoryDatabase) Path() string { return "memory.json" }

func (m *memoryDatabase) Load() (*domain.Graph, bool, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	m.changed = false
	if m.stored == nil {
		m.stored = domain.NewGraph()
		return domain.NewGraph(), true, nil
	}
	return m.stored.Clone(), false, nil
}

func (m *memoryDatabase) Save(g *domain.Graph) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.stored = g.Clone()
	return nil
}

func (m *memoryDatabase) Changed() (bool, error) {
	return m.changed, nil
}

// recordingIndex is a ports.TaskIndex that only counts syncs
type recordingIndex struct {
	needsRebuild bool
	syncs        int
	lastLen      int
	syncErr      error
	closed       bool
}

var _ ports.TaskIndex = (*recordingIndex)(nil)

func (r *recordingIndex) Open(string) error      { return nil }
func (r *recordingIndex) Close() error           { r.closed = true; return nil }
func (r *recordingIndex) NeedsFullRebuild() bool { return r.needsRebuild }
func (r *recordingIndex) BeginTx() (ports.IndexTx, error) {
	return nil, errors.New("not supported")
}

func (r *recordingIndex) SyncFull(g *domain.Graph) (*domain.SyncStats, error) {
	if r.syncErr != nil {
		return nil, r.syncErr
	}
	r.syncs++
	r.lastLen = g.Len()
	return &domain.SyncStats{TasksIndexed: g.Len(), Duration: time.Millisecond}, nil
}

func (r *recordingIndex) Search(string) ([]domain.SearchResult, error) { return nil, nil }
