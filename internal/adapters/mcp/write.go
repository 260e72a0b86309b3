package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"td/internal/application"
	"td/internal/application/commands"
	"td/internal/ports"
)

// RegisterWriteTools adds all task editing tools to the MCP server.
// Edits stay in memory until the save tool is called.
func RegisterWriteTools(s *server.MCPServer, h *Handler) {
	s.AddTool(addTool(), h.add)
	s.AddTool(renameTool(), h.rename)
	s.AddTool(deleteTool(), h.delete)
	s.AddTool(startTool(), h.toggle(commands.NewStartCommand))
	s.AddTool(completeTool(), h.toggle(commands.NewCompleteCommand))
	s.AddTool(tagTool(), h.tag)
	s.AddTool(dependTool(), h.depend)
	s.AddTool(undoTool(), h.undo)
	s.AddTool(redoTool(), h.redo)
	s.AddTool(saveTool(), h.save)
	s.AddTool(reloadTool(), h.reload)
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Create a task. Optionally tag it and make it depend on existing tasks."),
		mcp.WithString("title",
			mcp.Description("Task title"),
			mcp.Required(),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags to attach"),
			mcp.WithStringItems(),
		),
		mcp.WithArray("depends_on",
			mcp.Description("IDs of tasks the new task depends on"),
			mcp.WithStringItems(),
		),
	)
}

func (h *Handler) add(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateTaskCommand(s, req.GetString("title", ""))
		cmd.Tags = req.GetStringSlice("tags", nil)
		cmd.DependsOn = req.GetStringSlice("depends_on", nil)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	})
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Change the title of a task."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
			mcp.Required(),
		),
	)
}

func (h *Handler) rename(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	title := req.GetString("title", "")

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		result, err := commands.NewRenameCommand(s, id, title).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	})
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a task and every dependency edge touching it. Can be undone until the next save."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	)
}

func (h *Handler) delete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCommand(s, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	})
}

// --- start / complete ---

func startTool() mcp.Tool {
	return toggleTool("start", "Mark a task as started, or clear its started time when already set.")
}

func completeTool() mcp.Tool {
	return toggleTool("complete", "Mark a task as completed, or clear its completed time when already set.")
}

func toggleTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
		mcp.WithString("at",
			mcp.Description("When it happened, e.g. 2024-03-01 14:00 or 'yesterday at 5pm'. Defaults to now."),
		),
	)
}

func (h *Handler) toggle(newCommand func(ports.TaskStore, string) *commands.ToggleCommand) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := application.ParseTime(req.GetString("at", ""), time.Now())
		if err != nil {
			return toolError(err)
		}

		return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
			cmd := newCommand(s, req.GetString("id", ""))
			cmd.At = at

			result, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		})
	}
}

// --- tag ---

func tagTool() mcp.Tool {
	return mcp.NewTool("tag",
		mcp.WithDescription("Add a tag to a task."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
		mcp.WithString("tag",
			mcp.Description("Tag to add"),
			mcp.Required(),
		),
	)
}

func (h *Handler) tag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	tag := req.GetString("tag", "")

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		result, err := commands.NewTagCommand(s, id, tag).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	})
}

// --- depend ---

func dependTool() mcp.Tool {
	return mcp.NewTool("depend",
		mcp.WithDescription("Make a task depend on another one. Use the candidates tool to find valid targets."),
		mcp.WithString("id",
			mcp.Description("ID of the dependent task"),
			mcp.Required(),
		),
		mcp.WithString("depends_on",
			mcp.Description("ID of the task it depends on"),
			mcp.Required(),
		),
	)
}

func (h *Handler) depend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from := req.GetString("id", "")
	to := req.GetString("depends_on", "")

	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		result, err := commands.NewDependCommand(s, from, to).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	})
}

// --- undo / redo ---

func undoTool() mcp.Tool {
	return mcp.NewTool("undo",
		mcp.WithDescription("Revert the last edit."),
	)
}

func (h *Handler) undo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		if err := s.Undo(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Undone. %d more undo steps, %d redo steps.", s.UndoCount(), s.RedoCount())), nil
	})
}

func redoTool() mcp.Tool {
	return mcp.NewTool("redo",
		mcp.WithDescription("Re-apply the last undone edit."),
	)
}

func (h *Handler) redo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		if err := s.Redo(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Redone. %d undo steps, %d more redo steps.", s.UndoCount(), s.RedoCount())), nil
	})
}

// --- save / reload ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Write all edits to the task database."),
	)
}

func (h *Handler) save(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		if !s.IsDirty() {
			return mcp.NewToolResultText("Nothing to save."), nil
		}
		if err := s.Save(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Saved %d tasks to %s", s.State().Len(), s.Path())), nil
	})
}

func reloadTool() mcp.Tool {
	return mcp.NewTool("reload",
		mcp.WithDescription("Discard unsaved edits and the undo history, and read the database again."),
	)
}

func (h *Handler) reload(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withSession(func(s *application.Session) (*mcp.CallToolResult, error) {
		if err := s.Reload(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Reloaded %d tasks from %s", s.State().Len(), s.Path())), nil
	})
}
