package domain

import "time"

// SearchResult represents a task matched by the search index
type SearchResult struct {
	ID          TaskID
	Title       string
	Status      TaskStatus
	Field       string // "title" or "tag"
	MatchedText string
}

// SyncStats holds statistics from an index sync
type SyncStats struct {
	TasksIndexed int
	TagsIndexed  int
	EdgesIndexed int
	Duration     time.Duration
}

// TaskSummary is a task together with the graph facts listings need
type TaskSummary struct {
	Task
	Status TaskStatus
	// Dependents counts tasks that depend on this one
	Dependents int
	// OpenDependencies counts dependencies that are not completed yet
	OpenDependencies int
}

// IsActionable reports whether every dependency is completed
func (s TaskSummary) IsActionable() bool {
	return s.OpenDependencies == 0
}

// Summarize collects the summary of the task with the given ID
func Summarize(g *Graph, id TaskID) (TaskSummary, error) {
	t, err := g.Task(id)
	if err != nil {
		return TaskSummary{}, err
	}

	summary := TaskSummary{Task: *t, Status: t.Status()}

	deps, _ := g.Dependencies(id)
	for dep := range deps {
		if !dep.IsCompleted() {
			summary.OpenDependencies++
		}
	}
	dependents, _ := g.InverseDependencies(id)
	for range dependents {
		summary.Dependents++
	}

	return summary, nil
}
