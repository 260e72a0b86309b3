package application

import (
	"errors"
	"testing"
	"time"
)

func TestParseTime_Absolute(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"", now},
		{"2024-06-01T08:30:00Z", time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)},
		{"2024-06-01 08:30", time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)},
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input, now)
			if err != nil {
				t.Fatalf("ParseTime(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTime_Natural(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	got, err := ParseTime("tomorrow", now)
	if err != nil {
		t.Fatalf("ParseTime failed: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 11 {
		t.Errorf("expected June 11, got %v", got)
	}
}

func TestParseTime_Unrecognised(t *testing.T) {
	_, err := ParseTime("blue elephant", time.Now())

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "time" {
		t.Errorf("expected field time, got %s", valErr.Field)
	}
}
