package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// fileStore implements the Store interface on top of a local directory:
// one pretty-printed JSON file per key.
type fileStore struct {
	dir string
	mu  sync.Mutex
	log *logrus.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed. A nil logger falls back to the standard logrus logger.
func NewFileStore(dir string, log *logrus.Logger) (Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &fileStore{dir: dir, log: log}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the document under key. Missing or corrupt data is
// treated as absent: out is left at its zero value and no error is returned.
func (s *fileStore) Load(ctx context.Context, key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			// Unreadable entries get the same absent-data treatment as
			// corrupt ones; the caller proceeds with the empty default.
			s.log.WithError(err).WithField("key", key).Warn("store: unreadable entry, using empty default")
		}
		return nil
	}

	if err := decode(raw, out); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("store: corrupt entry, using empty default")
		return nil
	}
	return nil
}

// Save encodes value and writes it via a temp file + rename so readers never
// observe a half-written document.
func (s *fileStore) Save(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailed, key, err)
	}

	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
