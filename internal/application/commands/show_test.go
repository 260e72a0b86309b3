package commands

import (
	"context"
	"testing"

	"td/internal/domain"
)

func TestShowCommand_Execute(t *testing.T) {
	store := newFakeStore(
		task("MKMKMKMK", "Buy milk", 0),
		task("STSTSTST", "Go to store", 1),
		completed(task("WKWKWKWK", "Find wallet", 2)),
	)
	link(t, store, "MKMKMKMK", "STSTSTST")
	link(t, store, "STSTSTST", "WKWKWKWK")

	result, err := NewShowCommand(store, "STSTSTST").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Title != "Go to store" || result.Status != domain.StatusPending {
		t.Errorf("unexpected summary %+v", result.TaskSummary)
	}
	if len(result.Dependencies) != 1 || result.Dependencies[0].ID != "WKWKWKWK" {
		t.Errorf("unexpected dependencies %v", result.Dependencies)
	}
	if len(result.Dependents) != 1 || result.Dependents[0].ID != "MKMKMKMK" {
		t.Errorf("unexpected dependents %v", result.Dependents)
	}
	if !result.IsActionable() {
		t.Error("only dependency is completed, task should be actionable")
	}
}

func TestShowCommand_UnknownID(t *testing.T) {
	_, err := NewShowCommand(newFakeStore(), "ZZZZ2222").Execute(context.Background())
	if err == nil || !contains(err.Error(), "ZZZZ2222 not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}
