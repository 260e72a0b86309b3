package ports

import "td/internal/domain"

// TaskStore is the in-memory task graph that commands read and mutate.
// Every Modify is one undoable step.
type TaskStore interface {
	State() *domain.Graph
	Modify(fn func(g *domain.Graph))
}
