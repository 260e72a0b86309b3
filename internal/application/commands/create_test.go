package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"td/internal/application"
)

func TestCreateTaskCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		tags      []string
		dependsOn []string
		wantErr   bool
		errMsg    string
	}{
		{
			name:    "valid create",
			title:   "Buy milk",
			wantErr: false,
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "blank title",
			title:   "   ",
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "tag with space",
			title:   "Buy milk",
			tags:    []string{"two words"},
			wantErr: true,
			errMsg:  "single word",
		},
		{
			name:      "invalid dependency ID",
			title:     "Buy milk",
			dependsOn: []string{"nope"},
			wantErr:   true,
			errMsg:    "invalid dependency ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateTaskCommand{
				Title:     tt.title,
				Tags:      tt.tags,
				DependsOn: tt.dependsOn,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestCreateTaskCommand_Execute(t *testing.T) {
	store := newFakeStore(task("STRE2345", "Go to store", 0))

	cmd := NewCreateTaskCommand(store, "  Buy milk ")
	cmd.Tags = []string{"errand"}
	cmd.DependsOn = []string{"STRE2345"}
	cmd.Now = func() time.Time { return baseTime }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Task.Title != "Buy milk" {
		t.Errorf("expected trimmed title, got %q", result.Task.Title)
	}
	if !result.Task.TimeCreated.Equal(baseTime) {
		t.Errorf("unexpected creation time %v", result.Task.TimeCreated)
	}
	if !contains(result.Message, "Created task: "+string(result.Task.ID)) {
		t.Errorf("unexpected message %q", result.Message)
	}

	g := store.State()
	if g.Len() != 2 || !g.HasDependency(result.Task.ID, "STRE2345") {
		t.Error("expected task with its dependency in the graph")
	}
	if got := g.MustTask(result.Task.ID).Tags; len(got) != 1 || got[0] != "errand" {
		t.Errorf("unexpected tags %v", got)
	}
	if store.modifies != 1 {
		t.Errorf("expected a single undo step, got %d", store.modifies)
	}
}

func TestCreateTaskCommand_UnknownDependency(t *testing.T) {
	store := newFakeStore()

	cmd := NewCreateTaskCommand(store, "Buy milk")
	cmd.DependsOn = []string{"ABCDEFGH"}

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.modifies != 0 || store.State().Len() != 0 {
		t.Error("failed create must not modify the store")
	}
}
