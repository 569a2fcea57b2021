package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hector17rock/SeatServe/pkg/logger"
)

// FileStore persists the key/value map as a JSON file, the closest analog to
// the browser's persisted localStorage. Every mutation rewrites the file, so
// from the caller's perspective writes are synchronous and atomic.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
	logger *logger.Logger
}

// NewFileStore loads the store file at path, creating the parent directory if
// needed. A missing file starts empty; an unreadable or corrupted file is
// logged and also starts empty rather than failing startup.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	log = log.WithComponent("file_store")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	s := &FileStore{path: path, values: make(map[string]string), logger: log}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("Store file does not exist yet, starting empty", "path", path)
	case err != nil:
		log.Warn("Failed to read store file, starting empty", "path", path, "error", err)
	default:
		if err := json.Unmarshal(data, &s.values); err != nil {
			log.Warn("Store file is corrupted, starting empty", "path", path, "error", err)
			s.values = make(map[string]string)
		}
	}

	return s, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.save()
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.save()
}

// save writes the whole map through a temp file and rename so a crash mid
// write never leaves a half-written store behind.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
