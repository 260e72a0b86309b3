package commands

import (
	"context"
	"fmt"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// DependResult contains the result of adding a dependency
type DependResult struct {
	From    domain.Task
	To      domain.Task
	Message string
}

// DependCommand makes one task depend on another.
// Self-dependencies and repeated edges are refused here even though the graph
// accepts them. Cycles through other tasks are allowed.
type DependCommand struct {
	store  ports.TaskStore
	FromID string
	ToID   string
}

// NewDependCommand creates a new DependCommand
func NewDependCommand(store ports.TaskStore, fromID, toID string) *DependCommand {
	return &DependCommand{
		store:  store,
		FromID: fromID,
		ToID:   toID,
	}
}

// Validate checks if the depend operation is valid
func (c *DependCommand) Validate() error {
	if err := application.ValidateTaskID("taskID", c.FromID); err != nil {
		return err
	}
	if err := application.ValidateTaskID("dependencyID", c.ToID); err != nil {
		return err
	}
	if c.FromID == c.ToID {
		return &application.DependencyError{FromID: c.FromID, ToID: c.ToID, Err: application.ErrSelfDependency}
	}
	return nil
}

// Execute runs the depend command
func (c *DependCommand) Execute(ctx context.Context) (*DependResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g := c.store.State()
	from, err := application.LookupTask(g, c.FromID)
	if err != nil {
		return nil, fmt.Errorf("failed to add dependency: %w", err)
	}
	to, err := application.LookupTask(g, c.ToID)
	if err != nil {
		return nil, fmt.Errorf("failed to add dependency: %w", err)
	}
	if g.HasDependency(from.ID, to.ID) {
		return nil, &application.DependencyError{FromID: c.FromID, ToID: c.ToID, Err: application.ErrDuplicateDependency}
	}

	result := &DependResult{
		From:    *from,
		To:      *to,
		Message: fmt.Sprintf("%s %s now depends on %s %s", from.ID, from.Title, to.ID, to.Title),
	}

	c.store.Modify(func(g *domain.Graph) {
		g.MustAddDependency(result.From.ID, result.To.ID)
	})

	return result, nil
}

// DependencyCandidates lists the tasks id could be made to depend on: every task
// except id itself and its current dependencies, in storage order
func DependencyCandidates(g *domain.Graph, id string) ([]domain.Task, error) {
	task, err := application.LookupTask(g, id)
	if err != nil {
		return nil, err
	}

	var candidates []domain.Task
	for t := range g.Tasks() {
		if t.ID == task.ID || g.HasDependency(task.ID, t.ID) {
			continue
		}
		candidates = append(candidates, t)
	}
	return candidates, nil
}
