package commands

import (
	"context"
	"slices"
	"testing"
)

func TestTagCommand_Execute(t *testing.T) {
	store := newFakeStore(task("ABCD2345", "Call plumber", 0))

	for _, tag := range []string{"home", "urgent", "home"} {
		if _, err := NewTagCommand(store, "ABCD2345", tag).Execute(context.Background()); err != nil {
			t.Fatalf("Execute(%s) failed: %v", tag, err)
		}
	}

	got := store.State().MustTask("ABCD2345").Tags
	if !slices.Equal(got, []string{"home", "urgent", "home"}) {
		t.Errorf("tags = %v, duplicates and order must be kept", got)
	}
}

func TestTagCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		tag     string
		wantErr bool
	}{
		{name: "valid", id: "ABCD2345", tag: "home", wantErr: false},
		{name: "empty tag", id: "ABCD2345", tag: "", wantErr: true},
		{name: "bad ID", id: "x", tag: "home", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&TagCommand{ID: tt.id, Tag: tt.tag}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
