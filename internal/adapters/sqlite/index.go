package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"td/internal/domain"
	"td/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.TaskIndex using SQLite
type Index struct {
	db           *sql.DB
	databasePath string
	dbPath       string
}

// Ensure Index implements TaskIndex
var _ ports.TaskIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given task database
func (idx *Index) Open(databasePath string) error {
	// Expand ~ in path
	if strings.HasPrefix(databasePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		databasePath = filepath.Join(home, databasePath[1:])
	}
	if abs, err := filepath.Abs(databasePath); err == nil {
		databasePath = abs
	}

	idx.databasePath = databasePath
	idx.dbPath = indexPath(databasePath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			status INTEGER NOT NULL,
			time_created INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS tags (
			task_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (task_id, position)
		);
		CREATE TABLE IF NOT EXISTS deps (
			from_id TEXT NOT NULL,
			to_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (from_id, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);
		CREATE INDEX IF NOT EXISTS idx_deps_to ON deps(to_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the location of the SQLite file
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsFullRebuild returns true if the index was built by another schema, for another
// database, or before the database file last changed
func (idx *Index) NeedsFullRebuild() bool {
	if idx.db == nil {
		return true
	}

	version := idx.meta("schema_version")
	pathHash := idx.meta("database_path_hash")
	if version != schemaVersion || pathHash != hashPath(idx.databasePath) {
		return true
	}

	lastSync, err := strconv.ParseInt(idx.meta("last_sync_time"), 10, 64)
	if err != nil {
		return true
	}
	info, err := os.Stat(idx.databasePath)
	if err != nil {
		return false
	}
	return info.ModTime().UnixNano() > lastSync
}

// indexPath returns the path for the SQLite database
func indexPath(databasePath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash the database path for a unique index name
	return filepath.Join(dataHome, "td", "index", hashPath(databasePath)+".db")
}

// hashPath returns a short hash of a path
func hashPath(path string) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

func (idx *Index) meta(key string) string {
	var value string
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	return value
}

func (idx *Index) setMeta(key, value string) error {
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Search returns title, ID and tag matches for query.
// Characters of the query must appear in order but not necessarily adjacent, which is
// the same rule the fuzzy scorer applies afterwards.
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	pattern := subsequencePattern(query)

	rows, err := idx.db.Query(`
		SELECT id, title, status, 'title', title
		FROM tasks WHERE title LIKE ?1 ESCAPE '\' OR id LIKE ?1 ESCAPE '\'
		UNION ALL
		SELECT t.id, t.title, t.status, 'tag', g.tag
		FROM tags g JOIN tasks t ON t.id = g.task_id
		WHERE g.tag LIKE ?1 ESCAPE '\'
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var status int
		if err := rows.Scan(&r.ID, &r.Title, &status, &r.Field, &r.MatchedText); err != nil {
			return nil, err
		}
		r.Status = domain.TaskStatus(status)
		results = append(results, r)
	}

	return results, rows.Err()
}

// subsequencePattern turns "mlk" into "%m%l%k%" with LIKE wildcards escaped
func subsequencePattern(query string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range query {
		switch r {
		case '%', '_', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
		b.WriteByte('%')
	}
	return b.String()
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}
