package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"td/internal/adapters/filesystem"
	mcpadapter "td/internal/adapters/mcp"
	"td/internal/adapters/sqlite"
	"td/internal/application"
	"td/internal/config"
	"td/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("td-mcp: %v", err)
	}

	dbFlag := flag.String("db", cfg.Database, "path to the task database")
	logFlag := flag.String("log", cfg.LogFile, "path to the log file")
	flag.Parse()

	if err := run(cfg, *dbFlag, *logFlag); err != nil {
		log.Fatalf("td-mcp: %v", err)
	}
}

// run serves the MCP tools on stdio until the client disconnects
func run(cfg *config.Config, dbPath, logPath string) error {
	logger, logCloser, err := logging.NewFileLogger(filesystem.ExpandHome(logPath), "td-mcp: ")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	repo := filesystem.NewRepository(dbPath)

	opts := []application.SessionOption{
		application.WithHistoryLimit(cfg.HistoryLimit),
		application.WithLogger(logger),
	}
	var idx *sqlite.Index
	if cfg.Index {
		idx = sqlite.NewIndex()
		if err := idx.Open(repo.Path()); err != nil {
			logger.Printf("search index disabled: %v", err)
			idx = nil
		} else {
			opts = append(opts, application.WithIndex(idx))
		}
	}

	session, err := application.OpenSession(repo, opts...)
	if err != nil {
		if idx != nil {
			idx.Close()
		}
		logger.Printf("failed to open session: %v", err)
		return err
	}
	defer session.Close()

	handler := mcpadapter.NewHandler(session)

	watcher, err := filesystem.NewWatcher()
	if err != nil {
		logger.Printf("file watching disabled: %v", err)
	} else if err := watcher.Start(repo.Path()); err != nil {
		logger.Printf("file watching disabled: %v", err)
	} else {
		defer watcher.Stop()
		go watch(watcher, handler, logger)
	}

	mcpServer := server.NewMCPServer(
		"td-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, handler)
	mcpadapter.RegisterWriteTools(mcpServer, handler)

	logger.Printf("serving %s", repo.Path())
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Printf("server stopped: %v", err)
		return err
	}
	return nil
}

// watch reloads the session whenever another program rewrites the database
func watch(w *filesystem.Watcher, h *mcpadapter.Handler, logger *log.Logger) {
	for {
		select {
		case event, ok := <-w.Events():
			if !ok {
				return
			}
			if event.Op != filesystem.OpWrite {
				logger.Printf("%s: %s", event.Op, event.Path)
				continue
			}
			if _, err := h.ReloadIfChanged(); err != nil {
				logger.Printf("reload failed: %v", err)
			}
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logger.Printf("watcher error: %v", err)
		}
	}
}
