package commands

import (
	"context"
	"fmt"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// ShowResult is a task with both directions of its dependency edges
type ShowResult struct {
	domain.TaskSummary
	Dependencies []domain.Task
	Dependents   []domain.Task
}

// ShowCommand describes a single task
type ShowCommand struct {
	store ports.TaskStore
	ID    string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(store ports.TaskStore, id string) *ShowCommand {
	return &ShowCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks if the show operation is valid
func (c *ShowCommand) Validate() error {
	return application.ValidateTaskID("id", c.ID)
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g := c.store.State()
	summary, err := summarize(g, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to show %s: %w", c.ID, err)
	}

	result := &ShowResult{TaskSummary: summary}

	deps, err := g.Dependencies(summary.ID)
	if err != nil {
		return nil, err
	}
	for t := range deps {
		result.Dependencies = append(result.Dependencies, t)
	}

	dependents, err := g.InverseDependencies(summary.ID)
	if err != nil {
		return nil, err
	}
	for t := range dependents {
		result.Dependents = append(result.Dependents, t)
	}

	return result, nil
}
