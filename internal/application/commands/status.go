package commands

import (
	"context"
	"fmt"
	"time"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// ToggleField selects which timestamp a ToggleCommand flips
type ToggleField int

const (
	ToggleStarted ToggleField = iota
	ToggleCompleted
)

func (f ToggleField) String() string {
	if f == ToggleCompleted {
		return "completed"
	}
	return "started"
}

// ToggleResult contains the result of toggling a task timestamp
type ToggleResult struct {
	Task domain.Task
	// Set is true when the timestamp was set, false when it was cleared
	Set     bool
	Message string
}

// ToggleCommand sets the started or completed time of a task, or clears it when it
// is already set
type ToggleCommand struct {
	store ports.TaskStore
	Field ToggleField
	ID    string
	// At is the time to record; zero means now
	At time.Time
}

// NewStartCommand creates a command toggling the started time
func NewStartCommand(store ports.TaskStore, id string) *ToggleCommand {
	return &ToggleCommand{store: store, Field: ToggleStarted, ID: id}
}

// NewCompleteCommand creates a command toggling the completed time
func NewCompleteCommand(store ports.TaskStore, id string) *ToggleCommand {
	return &ToggleCommand{store: store, Field: ToggleCompleted, ID: id}
}

// Validate checks if the toggle operation is valid
func (c *ToggleCommand) Validate() error {
	return application.ValidateTaskID("id", c.ID)
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context) (*ToggleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	task, err := application.LookupTask(c.store.State(), c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark %s: %w", c.Field, err)
	}
	id := task.ID

	at := c.At
	if at.IsZero() {
		at = time.Now()
	}

	var set bool
	var updated domain.Task
	c.store.Modify(func(g *domain.Graph) {
		t := g.MustTask(id)
		if c.Field == ToggleCompleted {
			set = t.ToggleCompleted(at)
		} else {
			set = t.ToggleStarted(at)
		}
		updated = *t
	})

	msg := fmt.Sprintf("Marked %s %s: %s", id, c.Field, updated.Title)
	if !set {
		msg = fmt.Sprintf("Cleared %s time of %s: %s", c.Field, id, updated.Title)
	}

	return &ToggleResult{
		Task:    updated,
		Set:     set,
		Message: msg,
	}, nil
}
