package commands

import (
	"context"
	"fmt"
	"strings"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	ID       domain.TaskID
	OldTitle string
	NewTitle string
	Message  string
}

// RenameCommand changes the title of a task
type RenameCommand struct {
	store ports.TaskStore
	ID    string
	Title string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(store ports.TaskStore, id, title string) *RenameCommand {
	return &RenameCommand{
		store: store,
		ID:    id,
		Title: title,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if err := application.ValidateTaskID("id", c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	task, err := application.LookupTask(c.store.State(), c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}

	oldTitle := task.Title
	newTitle := strings.TrimSpace(c.Title)
	id := task.ID

	c.store.Modify(func(g *domain.Graph) {
		g.MustTask(id).Title = newTitle
	})

	return &RenameResult{
		ID:       id,
		OldTitle: oldTitle,
		NewTitle: newTitle,
		Message:  fmt.Sprintf("Renamed %s to %s", id, newTitle),
	}, nil
}
