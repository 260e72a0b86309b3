package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"td/internal/domain"
)

// VersionedFile is the on-disk envelope around a DiskModel.
// Data is kept raw so that an unknown version can be rejected before decoding it.
type VersionedFile struct {
	Version uint8           `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// NewVersionedFile wraps model in an envelope stamped with the current version
func NewVersionedFile(model domain.DiskModel) (*VersionedFile, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return &VersionedFile{Version: domain.CurrentVersion, Data: data}, nil
}

// FromGraph converts g to its disk model and wraps it
func FromGraph(g *domain.Graph) (*VersionedFile, error) {
	return NewVersionedFile(domain.ToDiskModel(g))
}

// DefaultVersionedFile returns the envelope of an empty database
func DefaultVersionedFile() *VersionedFile {
	return &VersionedFile{
		Version: domain.CurrentVersion,
		Data:    json.RawMessage(`{"tasks":[]}`),
	}
}

// ParseVersionedFile decodes an envelope and checks its version
func ParseVersionedFile(content []byte) (*VersionedFile, error) {
	var raw struct {
		Version *uint8          `json:"version"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &domain.MalformedDatabaseError{Err: err}
	}

	if raw.Version == nil {
		return nil, &domain.MalformedDatabaseError{Err: fmt.Errorf("missing version")}
	}
	if *raw.Version != domain.CurrentVersion {
		return nil, &domain.UnknownVersionError{Version: *raw.Version}
	}

	trimmed := bytes.TrimSpace(raw.Data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &domain.MalformedDatabaseError{Err: fmt.Errorf("missing data section")}
	}

	return &VersionedFile{Version: *raw.Version, Data: raw.Data}, nil
}

// ReadVersionedFile reads and parses the envelope stored at path
func ReadVersionedFile(path string) (*VersionedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}
	return ParseVersionedFile(content)
}

// DiskModel decodes the data section
func (f *VersionedFile) DiskModel() (domain.DiskModel, error) {
	var model domain.DiskModel
	if err := json.Unmarshal(f.Data, &model); err != nil {
		return domain.DiskModel{}, &domain.MalformedDatabaseError{Err: err}
	}
	return model, nil
}

// Graph decodes the data section and rebuilds the task graph
func (f *VersionedFile) Graph() (*domain.Graph, error) {
	model, err := f.DiskModel()
	if err != nil {
		return nil, err
	}
	return domain.FromDiskModel(model)
}

// Encode renders the envelope as indented JSON. The current version is always written.
func (f *VersionedFile) Encode() ([]byte, error) {
	out := VersionedFile{Version: domain.CurrentVersion, Data: f.Data}
	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode database: %w", err)
	}
	return append(content, '\n'), nil
}

// Write stores the envelope at path.
// The content goes to a temporary file that replaces path once complete, under an
// exclusive lock on path + ".lock".
func (f *VersionedFile) Write(path string) error {
	content, err := f.Encode()
	if err != nil {
		return err
	}
	return writeLocked(path, content)
}

func writeLocked(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary file %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
