package domain

import (
	"slices"
	"strings"
	"time"
)

// Task is a single unit of work in the graph
type Task struct {
	ID            TaskID     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	TimeCreated   time.Time  `json:"time_created" yaml:"time_created"`
	TimeStarted   *time.Time `json:"time_started,omitempty" yaml:"time_started,omitempty"`
	TimeCompleted *time.Time `json:"time_completed,omitempty" yaml:"time_completed,omitempty"`
	Tags          []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// TaskStatus is the lifecycle stage of a task, derived from its timestamps
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusStarted
	StatusCompleted
)

func (s TaskStatus) String() string {
	switch s {
	case StatusStarted:
		return "started"
	case StatusCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// NewTask creates a task with a fresh ID, created at the given time
func NewTask(title string, now time.Time) Task {
	return Task{
		ID:          NewTaskID(),
		Title:       title,
		TimeCreated: now,
	}
}

// CreateNow creates a task with a fresh ID, created now in local time.
// time.Local already falls back to UTC when the local zone is unknown.
func CreateNow(title string) Task {
	return NewTask(title, time.Now())
}

// Status returns the derived lifecycle status
func (t *Task) Status() TaskStatus {
	switch {
	case t.TimeCompleted != nil:
		return StatusCompleted
	case t.TimeStarted != nil:
		return StatusStarted
	default:
		return StatusPending
	}
}

// IsCompleted reports whether the task has a completion time
func (t *Task) IsCompleted() bool {
	return t.TimeCompleted != nil
}

// ToggleStarted sets the start time to at, or clears it when already set.
// Returns true if the task is now started.
func (t *Task) ToggleStarted(at time.Time) bool {
	if t.TimeStarted != nil {
		t.TimeStarted = nil
		return false
	}
	t.TimeStarted = &at
	return true
}

// ToggleCompleted sets the completion time to at, or clears it when already set.
// Returns true if the task is now completed.
func (t *Task) ToggleCompleted(at time.Time) bool {
	if t.TimeCompleted != nil {
		t.TimeCompleted = nil
		return false
	}
	t.TimeCompleted = &at
	return true
}

// AddTag appends a tag. Duplicates are kept.
func (t *Task) AddTag(tag string) {
	t.Tags = append(t.Tags, tag)
}

// HasTag reports whether the task carries tag (case-insensitive)
func (t *Task) HasTag(tag string) bool {
	return slices.ContainsFunc(t.Tags, func(s string) bool {
		return strings.EqualFold(s, tag)
	})
}

// MatchesTitle reports whether the title contains query, ignoring case
func (t *Task) MatchesTitle(query string) bool {
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}

// clone returns a copy that shares no mutable memory with t
func (t Task) clone() Task {
	if t.TimeStarted != nil {
		v := *t.TimeStarted
		t.TimeStarted = &v
	}
	if t.TimeCompleted != nil {
		v := *t.TimeCompleted
		t.TimeCompleted = &v
	}
	t.Tags = slices.Clone(t.Tags)
	return t
}
