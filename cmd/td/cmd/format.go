package cmd

import (
	"fmt"
	"strings"
	"time"

	"td/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func statusMark(s domain.TaskStatus) string {
	switch s {
	case domain.StatusStarted:
		return "[~]"
	case domain.StatusCompleted:
		return "[x]"
	default:
		return "[ ]"
	}
}

func formatSummary(s domain.TaskSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s", s.ID, statusMark(s.Status), s.Title)
	for _, tag := range s.Tags {
		sb.WriteString(" #" + tag)
	}
	if s.OpenDependencies > 0 {
		fmt.Fprintf(&sb, "  (blocked by %d)", s.OpenDependencies)
	}
	if s.Dependents > 0 {
		fmt.Fprintf(&sb, "  (needed by %d)", s.Dependents)
	}
	return sb.String()
}

func formatTask(t domain.Task) string {
	return fmt.Sprintf("%s %s %s", t.ID, statusMark(t.Status()), t.Title)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
