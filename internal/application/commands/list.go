package commands

import (
	"context"
	"slices"
	"strings"

	"td/internal/domain"
	"td/internal/ports"
)

// ListOptions filters and orders a task listing
type ListOptions struct {
	// ShowCompleted includes completed tasks
	ShowCompleted bool
	// ActionableOnly hides tasks with an uncompleted dependency
	ActionableOnly bool
	// OldestFirst sorts by creation time ascending instead of newest first
	OldestFirst bool
	// Search keeps tasks whose title contains it, ignoring case
	Search string
	// Tag keeps tasks carrying it, ignoring case
	Tag string
}

// ListCommand lists tasks with their dependency counts
type ListCommand struct {
	store   ports.TaskStore
	Options ListOptions
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.TaskStore, opts ListOptions) *ListCommand {
	return &ListCommand{
		store:   store,
		Options: opts,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.TaskSummary, error) {
	g := c.store.State()
	search := strings.TrimSpace(c.Options.Search)

	var out []domain.TaskSummary
	for t := range g.Tasks() {
		if !c.Options.ShowCompleted && t.IsCompleted() {
			continue
		}
		if search != "" && !t.MatchesTitle(search) {
			continue
		}
		if c.Options.Tag != "" && !t.HasTag(c.Options.Tag) {
			continue
		}

		summary, err := domain.Summarize(g, t.ID)
		if err != nil {
			return nil, err
		}
		if c.Options.ActionableOnly && !summary.IsActionable() {
			continue
		}
		out = append(out, summary)
	}

	SortByCreated(out, c.Options.OldestFirst)
	return out, nil
}

// SortByCreated orders summaries by creation time, newest first unless oldestFirst.
// Ties keep storage order.
func SortByCreated(summaries []domain.TaskSummary, oldestFirst bool) {
	slices.SortStableFunc(summaries, func(a, b domain.TaskSummary) int {
		cmp := a.TimeCreated.Compare(b.TimeCreated)
		if !oldestFirst {
			cmp = -cmp
		}
		return cmp
	})
}
