package application

import (
	"errors"
	"testing"

	"td/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "Buy milk",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "title",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateTaskID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{name: "valid", id: "abcDEF23", wantErr: false},
		{name: "empty", id: "", wantErr: true, errMsg: "task ID is required"},
		{name: "too short", id: "abc", wantErr: true, errMsg: "invalid task ID: abc"},
		{name: "excluded character", id: "abcDEF20", wantErr: true, errMsg: "invalid task ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskID("taskID", tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTaskID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{"home", false},
		{"deep-work", false},
		{"", true},
		{"two words", true},
		{"tab\tbed", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			err := ValidateTag(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTag(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
		})
	}
}

func TestLookupTask(t *testing.T) {
	g := domain.NewGraph()
	task := domain.CreateNow("a")
	g.AddTask(task)

	got, err := LookupTask(g, string(task.ID))
	if err != nil || got.ID != task.ID {
		t.Fatalf("LookupTask() = %v, %v", got, err)
	}

	_, err = LookupTask(g, "zzzzzzzz")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "zzzzzzzz" {
		t.Errorf("expected NotFoundError for zzzzzzzz, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for _, st := range []TaskStatus{StatusPending, StatusStarted, StatusCompleted} {
		got, ok := ParseStatus(st.String())
		if !ok || got != st {
			t.Errorf("ParseStatus(%q) = %v, %v", st.String(), got, ok)
		}
	}
	if _, ok := ParseStatus("blocked"); ok {
		t.Error("expected unknown status to be rejected")
	}
}

// contains checks if s contains substr
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 || findSubstring(s, substr))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
