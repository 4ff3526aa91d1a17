package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore keeps the catalog in a single local JSON file in the
// interchange format.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed catalog store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll reads and parses the catalog file. A missing file is not an
// error; it yields an empty snapshot so a fresh deployment starts blank.
func (s *FileStore) LoadAll(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("reading catalog file %s: %w", s.path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", s.path, err)
	}
	return FromFile(&f), nil
}

// Persist writes the snapshot back in the interchange format.
func (s *FileStore) Persist(_ context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap.ToFile(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog file %s: %w", s.path, err)
	}
	return nil
}
