package commands

import (
	"context"
	"fmt"

	"td/internal/application"
	"td/internal/domain"
	"td/internal/ports"
)

// TagResult contains the result of tagging a task
type TagResult struct {
	ID      domain.TaskID
	Tags    []string
	Message string
}

// TagCommand appends a tag to a task
type TagCommand struct {
	store ports.TaskStore
	ID    string
	Tag   string
}

// NewTagCommand creates a new TagCommand
func NewTagCommand(store ports.TaskStore, id, tag string) *TagCommand {
	return &TagCommand{
		store: store,
		ID:    id,
		Tag:   tag,
	}
}

// Validate checks if the tag operation is valid
func (c *TagCommand) Validate() error {
	if err := application.ValidateTaskID("id", c.ID); err != nil {
		return err
	}
	return application.ValidateTag(c.Tag)
}

// Execute runs the tag command
func (c *TagCommand) Execute(ctx context.Context) (*TagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	task, err := application.LookupTask(c.store.State(), c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to tag: %w", err)
	}
	id := task.ID

	var tags []string
	c.store.Modify(func(g *domain.Graph) {
		t := g.MustTask(id)
		t.AddTag(c.Tag)
		tags = append([]string(nil), t.Tags...)
	})

	return &TagResult{
		ID:      id,
		Tags:    tags,
		Message: fmt.Sprintf("Tagged %s with %s", id, c.Tag),
	}, nil
}
