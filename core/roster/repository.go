package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Repository loads and saves a whole roster directory.
type Repository interface {
	// Load returns the persisted directory. A store that holds nothing yet
	// yields an empty directory.
	Load(ctx context.Context) (*Directory, error)

	// Save replaces the persisted directory in full.
	Save(ctx context.Context, dir *Directory) error
}

// Encode renders a directory as indented JSON, the persisted format shared by
// the file and object storage repositories.
func Encode(dir *Directory) ([]byte, error) {
	raw, err := json.Marshal(dir)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Decode parses the persisted JSON format. Empty input yields an empty directory.
func Decode(data []byte) (*Directory, error) {
	dir := NewDirectory()
	if len(bytes.TrimSpace(data)) == 0 {
		return dir, nil
	}
	if err := json.Unmarshal(data, dir); err != nil {
		return nil, err
	}
	return dir, nil
}

// FileRepository persists the directory as a JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository backed by the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the file. A missing file yields an empty directory.
func (r *FileRepository) Load(_ context.Context) (*Directory, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDirectory(), nil
		}
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	dir, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", r.path, err)
	}
	return dir, nil
}

// Save writes the directory to a temporary file and renames it over the target,
// so readers never observe a partially written roster.
func (r *FileRepository) Save(_ context.Context, dir *Directory) error {
	data, err := Encode(dir)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	if parent := filepath.Dir(r.path); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create roster directory: %w", err)
		}
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}
	return nil
}
