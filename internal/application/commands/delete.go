package commands

import (
	"context"
	"fmt"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID domain.TaskID
	Title     string
	// Dependents counts the tasks that lost a dependency
	Dependents int
	Message    string
}

// DeleteCommand removes a task and every dependency edge touching it
type DeleteCommand struct {
	store ports.TaskStore
	ID    string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(store ports.TaskStore, id string) *DeleteCommand {
	return &DeleteCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return application.ValidateTaskID("id", c.ID)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	summary, err := summarize(c.store.State(), c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.ID, err)
	}

	c.store.Modify(func(g *domain.Graph) {
		g.RemoveTask(summary.ID)
	})

	return &DeleteResult{
		DeletedID:  summary.ID,
		Title:      summary.Title,
		Dependents: summary.Dependents,
		Message:    fmt.Sprintf("Deleted %s %s", summary.ID, summary.Title),
	}, nil
}

// summarize resolves id and summarizes it, reporting application errors
func summarize(g *domain.Graph, id string) (domain.TaskSummary, error) {
	if _, err := application.LookupTask(g, id); err != nil {
		return domain.TaskSummary{}, err
	}
	return domain.Summarize(g, domain.TaskID(id))
}
