package commands

import (
	"testing"
	"time"

	"td/internal/domain"
	"td/internal/undo"
)

var baseTime = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

// fakeStore is a ports.TaskStore backed by a bare undo stack
type fakeStore struct {
	history  *undo.Stack[*domain.Graph]
	modifies int
}

func newFakeStore(tasks ...domain.Task) *fakeStore {
	g := domain.NewGraph()
	for _, t := range tasks {
		g.AddTask(t)
	}
	return &fakeStore{history: undo.New(g)}
}

func (f *fakeStore) State() *domain.Graph {
	return f.history.State()
}

func (f *fakeStore) Modify(fn func(g *domain.Graph)) {
	f.modifies++
	f.history.Modify(fn)
}

// task builds a task with a fixed ID, created minutes after baseTime
func task(id, title string, minutes int) domain.Task {
	return domain.Task{
		ID:          domain.TaskID(id),
		Title:       title,
		TimeCreated: baseTime.Add(time.Duration(minutes) * time.Minute),
	}
}

func completed(t domain.Task) domain.Task {
	done := t.TimeCreated.Add(time.Hour)
	t.TimeCompleted = &done
	return t
}

func link(t *testing.T, s *fakeStore, from, to string) {
	t.Helper()
	if err := s.State().AddDependency(domain.TaskID(from), domain.TaskID(to)); err != nil {
		t.Fatalf("AddDependency(%s, %s) failed: %v", from, to, err)
	}
}

func ids(summaries []domain.TaskSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, string(s.ID))
	}
	return out
}

// contains checks if s contains substr
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
