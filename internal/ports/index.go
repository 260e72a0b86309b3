package ports

import "td/internal/domain"

// TaskIndex provides a searchable mirror of the task graph.
// The JSON database stays authoritative; the index can always be rebuilt from it.
type TaskIndex interface {
	// Lifecycle
	Open(databasePath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncFull(g *domain.Graph) (*domain.SyncStats, error)

	// Queries
	Search(query string) ([]domain.SearchResult, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic index updates
type IndexTx interface {
	// Clear removes every indexed row
	Clear() error

	// Task operations
	UpsertTask(task *domain.Task) error
	DeleteTask(id domain.TaskID) error

	// Tag and edge operations
	InsertTag(id domain.TaskID, position int, tag string) error
	InsertDependency(from, to domain.TaskID, position int) error

	// Transaction control
	Commit() error
	Rollback() error
}
