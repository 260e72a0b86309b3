package filesystem

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"td/internal/domain"
	"td/internal/ports"
)

// Repository implements ports.TaskDatabase on a single versioned JSON file
type Repository struct {
	path string
	// checksum of the content last read or written, nil before the first Load
	checksum []byte
}

// Ensure Repository implements TaskDatabase
var _ ports.TaskDatabase = (*Repository)(nil)

// NewRepository creates a repository for the database at path
func NewRepository(path string) *Repository {
	return &Repository{path: ExpandHome(path)}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Path returns the database file location
func (r *Repository) Path() string {
	return r.path
}

// Load reads the graph. A missing database is created empty.
func (r *Repository) Load() (*domain.Graph, bool, error) {
	content, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := r.bootstrap(); err != nil {
			return nil, false, err
		}
		return domain.NewGraph(), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read database: %w", err)
	}

	f, err := ParseVersionedFile(content)
	if err != nil {
		return nil, false, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, false, err
	}

	r.remember(content)
	return g, false, nil
}

func (r *Repository) bootstrap() error {
	content, err := DefaultVersionedFile().Encode()
	if err != nil {
		return err
	}
	if err := writeLocked(r.path, content); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	r.remember(content)
	return nil
}

// Save writes g to the database file
func (r *Repository) Save(g *domain.Graph) error {
	f, err := FromGraph(g)
	if err != nil {
		return err
	}
	content, err := f.Encode()
	if err != nil {
		return err
	}
	if err := writeLocked(r.path, content); err != nil {
		return fmt.Errorf("failed to save database: %w", err)
	}
	r.remember(content)
	return nil
}

// Changed reports whether the file on disk differs from the content last loaded or
// saved through this repository. A missing file is not reported as a change.
func (r *Repository) Changed() (bool, error) {
	content, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read database: %w", err)
	}
	if r.checksum == nil {
		return true, nil
	}

	sum := sha256.Sum256(content)
	return !bytes.Equal(sum[:], r.checksum), nil
}

func (r *Repository) remember(content []byte) {
	sum := sha256.Sum256(content)
	r.checksum = sum[:]
}
