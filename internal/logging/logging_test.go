package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "td-mcp.log")

	logger, closer, err := NewFileLogger(path, "td-mcp: ")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Printf("reloaded %s", "tasks.json")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(content), "td-mcp: reloaded tasks.json") {
		t.Errorf("unexpected log content %q", content)
	}
}
