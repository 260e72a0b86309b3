package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// CreateTaskResult contains the result of creating a task
type CreateTaskResult struct {
	Task    domain.Task
	Message string
}

// CreateTaskCommand creates a task, optionally tagged and depending on existing tasks
type CreateTaskCommand struct {
	store     ports.TaskStore
	Title     string
	Tags      []string
	DependsOn []string
	// Now overrides the creation time, mostly for tests
	Now func() time.Time
}

// NewCreateTaskCommand creates a new CreateTaskCommand
func NewCreateTaskCommand(store ports.TaskStore, title string) *CreateTaskCommand {
	return &CreateTaskCommand{
		store: store,
		Title: title,
	}
}

// Validate checks if the create operation is valid
func (c *CreateTaskCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}

	for _, tag := range c.Tags {
		if err := application.ValidateTag(tag); err != nil {
			return err
		}
	}

	for _, id := range c.DependsOn {
		if err := application.ValidateTaskID("dependencyID", id); err != nil {
			return err
		}
	}

	return nil
}

// Execute runs the create task command
func (c *CreateTaskCommand) Execute(ctx context.Context) (*CreateTaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g := c.store.State()
	for _, id := range c.DependsOn {
		if _, err := application.LookupTask(g, id); err != nil {
			return nil, fmt.Errorf("failed to create task: %w", err)
		}
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	task := domain.NewTask(strings.TrimSpace(c.Title), now())
	for _, tag := range c.Tags {
		task.AddTag(tag)
	}

	c.store.Modify(func(g *domain.Graph) {
		g.AddTask(task)
		for _, id := range c.DependsOn {
			g.MustAddDependency(task.ID, domain.TaskID(id))
		}
	})

	return &CreateTaskResult{
		Task:    task,
		Message: fmt.Sprintf("Created task: %s %s", task.ID, task.Title),
	}, nil
}
