package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"td/internal/application"
	"td/internal/domain"
)

func TestToggleCommand_StartTwiceClears(t *testing.T) {
	store := newFakeStore(task("ABCD2345", "Write report", 0))
	at := baseTime.Add(2 * time.Hour)

	cmd := NewStartCommand(store, "ABCD2345")
	cmd.At = at

	first, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !first.Set || first.Task.TimeStarted == nil || !first.Task.TimeStarted.Equal(at) {
		t.Errorf("expected started at %v, got %+v", at, first.Task)
	}
	if first.Task.Status() != domain.StatusStarted {
		t.Errorf("expected started status, got %s", first.Task.Status())
	}

	second, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if second.Set || second.Task.TimeStarted != nil {
		t.Errorf("expected start time cleared, got %+v", second.Task)
	}
	if !contains(second.Message, "Cleared started time") {
		t.Errorf("unexpected message %q", second.Message)
	}
	if store.modifies != 2 {
		t.Errorf("expected one undo step per toggle, got %d", store.modifies)
	}
}

func TestToggleCommand_Complete(t *testing.T) {
	store := newFakeStore(task("ABCD2345", "Write report", 0))

	before := time.Now()
	result, err := NewCompleteCommand(store, "ABCD2345").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	done := store.State().MustTask("ABCD2345").TimeCompleted
	if done == nil || done.Before(before) {
		t.Errorf("expected completion time around now, got %v", done)
	}
	if !contains(result.Message, "Marked ABCD2345 completed") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestToggleCommand_Errors(t *testing.T) {
	store := newFakeStore()

	if _, err := NewStartCommand(store, "").Execute(context.Background()); err == nil {
		t.Error("expected validation error for empty ID")
	}
	_, err := NewCompleteCommand(store, "ABCD2345").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
