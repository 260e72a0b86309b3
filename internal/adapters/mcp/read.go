package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"td/internal/application"
	"td/internal/application/commands"
)

// RegisterReadTools adds all read-only task tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, h *Handler) {
	s.AddTool(listTool(), h.list)
	s.AddTool(showTool(), h.show)
	s.AddTool(searchTool(), h.search)
	s.AddTool(candidatesTool(), h.candidates)
	s.AddTool(statusTool(), h.status)
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List tasks, newest first. Completed tasks are hidden unless show_completed is set."),
		mcp.WithBoolean("show_completed",
			mcp.Description("Include completed tasks"),
		),
		mcp.WithBoolean("actionable",
			mcp.Description("Only tasks whose dependencies are all completed"),
		),
		mcp.WithBoolean("oldest_first",
			mcp.Description("Sort by creation time ascending"),
		),
		mcp.WithString("search",
			mcp.Description("Keep tasks whose title contains this text"),
		),
		mcp.WithString("tag",
			mcp.Description("Keep tasks carrying this tag"),
		),
	)
}

func (h *Handler) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := commands.ListOptions{
		ShowCompleted:  req.GetBool("show_completed", false),
		ActionableOnly: req.GetBool("actionable", false),
		OldestFirst:    req.GetBool("oldest_first", false),
		Search:         req.GetString("search", ""),
		Tag:            req.GetString("tag", ""),
	}

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		summaries, err := commands.NewListCommand(s, opts).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(summaries) == 0 {
			return mcp.NewToolResultText("No tasks."), nil
		}

		var sb strings.Builder
		for _, summary := range summaries {
			sb.WriteString(formatSummary(summary))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	})
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show a task with its timestamps, tags, dependencies and dependents."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	)
}

func (h *Handler) show(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		result, err := commands.NewShowCommand(s, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "ID: %s\nTitle: %s\nStatus: %s\n", result.ID, result.Title, result.Status)
		fmt.Fprintf(&sb, "Created: %s\n", result.TimeCreated.Format(time.RFC3339))
		if result.TimeStarted != nil {
			fmt.Fprintf(&sb, "Started: %s\n", result.TimeStarted.Format(time.RFC3339))
		}
		if result.TimeCompleted != nil {
			fmt.Fprintf(&sb, "Completed: %s\n", result.TimeCompleted.Format(time.RFC3339))
		}
		if len(result.Tags) > 0 {
			fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(result.Tags, ", "))
		}
		if len(result.Dependencies) > 0 {
			sb.WriteString("Depends on:\n")
			sb.WriteString(formatTasks(result.Dependencies))
		}
		if len(result.Dependents) > 0 {
			sb.WriteString("Needed by:\n")
			sb.WriteString(formatTasks(result.Dependents))
		}
		return mcp.NewToolResultText(sb.String()), nil
	})
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search task titles and tags. Returns matching tasks with their IDs."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func (h *Handler) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return toolError(fmt.Errorf("query is required"))
	}

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		results, err := commands.NewSearchCommand(s, s.SearchIndex(), query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  [%s]  %s  %s: %s\n", r.ID, r.Status, r.Title, r.Field, r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	})
}

// --- candidates ---

func candidatesTool() mcp.Tool {
	return mcp.NewTool("candidates",
		mcp.WithDescription("List the tasks that the given task could depend on: everything except itself and its current dependencies."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	)
}

func (h *Handler) candidates(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		tasks, err := commands.DependencyCandidates(s.State(), id)
		if err != nil {
			return toolError(err)
		}
		if len(tasks) == 0 {
			return mcp.NewToolResultText("No candidates."), nil
		}
		return mcp.NewToolResultText(formatTasks(tasks)), nil
	})
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report the database path, task count, unsaved changes and undo/redo depth."),
	)
}

func (h *Handler) status(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		g := s.State()
		text := fmt.Sprintf("Database: %s\nTasks: %d\nDependencies: %d\nUnsaved changes: %t\nUndo: %d\nRedo: %d\n",
			s.Path(), g.Len(), g.EdgeCount(), s.IsDirty(), s.UndoCount(), s.RedoCount())
		return mcp.NewToolResultText(text), nil
	})
}
