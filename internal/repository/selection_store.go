package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSelectionStore persists the user's selected exchange codes as a small
// JSON file. Concurrent requests may hit the store, so writes are serialized.
type FileSelectionStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSelectionStore creates a store at the given path. The parent
// directory is created on the first save.
func NewFileSelectionStore(path string) *FileSelectionStore {
	return &FileSelectionStore{path: path}
}

// Load returns the saved selection, or an empty list when nothing was saved
// yet.
func (s *FileSelectionStore) Load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}

	var codes []string
	if err := json.Unmarshal(b, &codes); err != nil {
		return nil, fmt.Errorf("parse selection: %w", err)
	}
	return codes, nil
}

// Save replaces the saved selection. The file is written atomically via a
// temp file rename.
func (s *FileSelectionStore) Save(codes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if codes == nil {
		codes = []string{}
	}
	b, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create selection dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "selection-*.json")
	if err != nil {
		return fmt.Errorf("create temp selection: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write selection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close selection: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace selection: %w", err)
	}
	return nil
}
