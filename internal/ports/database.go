package ports

import "td/internal/domain"

// TaskDatabase defines the interface for persisting the task graph
type TaskDatabase interface {
	// Path returns the location of the database file
	Path() string

	// Load reads the graph from storage. When no database exists yet an empty one
	// is written first and created is true.
	Load() (g *domain.Graph, created bool, err error)

	// Save replaces the stored graph with g
	Save(g *domain.Graph) error

	// Changed reports whether the stored file differs from what was last loaded or saved
	Changed() (bool, error)
}
