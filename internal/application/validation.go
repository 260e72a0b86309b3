package application

import (
	"fmt"
	"strings"

	"td/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "taskID" -> "task ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":           "ID",
		"taskID":       "task ID",
		"dependencyID": "dependency ID",
		"title":        "title",
		"tag":          "tag",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateTaskID checks that id is present and shaped like a task ID.
// Returns a ValidationError otherwise.
func ValidateTaskID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if !domain.IsValidTaskID(id) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), id),
		}
	}
	return nil
}

// ValidateTag checks that a tag is non-empty and contains no whitespace
func ValidateTag(tag string) error {
	if err := ValidateRequired("tag", tag); err != nil {
		return err
	}
	if strings.ContainsFunc(tag, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }) {
		return &ValidationError{
			Field:   "tag",
			Message: fmt.Sprintf("tag must be a single word, got: %q", tag),
		}
	}
	return nil
}

// LookupTask resolves id in g, reporting a NotFoundError when it is absent
func LookupTask(g *domain.Graph, id string) (*domain.Task, error) {
	t, err := g.Task(domain.TaskID(id))
	if err != nil {
		return nil, &NotFoundError{ID: id}
	}
	return t, nil
}
