package mcp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"td/internal/application"
	"td/internal/domain"
)

// Handler serves MCP tools from one session. Tool calls arrive on concurrent
// goroutines, so every access to the session goes through mu.
type Handler struct {
	mu      sync.Mutex
	session *application.Session
}

// NewHandler creates a Handler over session
func NewHandler(session *application.Session) *Handler {
	return &Handler{session: session}
}

// ReloadIfChanged reloads the session when the database changed on disk and there
// are no unsaved edits
func (h *Handler) ReloadIfChanged() (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session.ReloadIfChanged()
}

// withSession runs fn while holding the session lock
func (h *Handler) withSession(fn func(s *application.Session) (*mcp.CallToolResult, error)) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.session)
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatTasks(tasks []domain.Task) string {
	var sb strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&sb, "%s  [%s]  %s\n", t.ID, t.Status(), t.Title)
	}
	return sb.String()
}

func formatSummary(s domain.TaskSummary) string {
	line := fmt.Sprintf("%s  [%s]  %s", s.ID, s.Status, s.Title)
	if len(s.Tags) > 0 {
		line += "  #" + strings.Join(s.Tags, " #")
	}
	if s.OpenDependencies > 0 {
		line += fmt.Sprintf("  (blocked by %d)", s.OpenDependencies)
	}
	if s.Dependents > 0 {
		line += fmt.Sprintf("  (%d dependents)", s.Dependents)
	}
	return line
}
