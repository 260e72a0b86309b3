package application

import "td/internal/domain"

// Re-export domain types for use by adapters
type (
	Task         = domain.Task
	TaskID       = domain.TaskID
	TaskStatus   = domain.TaskStatus
	TaskSummary  = domain.TaskSummary
	SearchResult = domain.SearchResult
	Graph        = domain.Graph
)

const (
	StatusPending   = domain.StatusPending
	StatusStarted   = domain.StatusStarted
	StatusCompleted = domain.StatusCompleted
)

// ParseStatus maps a status name back to its value
func ParseStatus(s string) (TaskStatus, bool) {
	for _, st := range []TaskStatus{StatusPending, StatusStarted, StatusCompleted} {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}
