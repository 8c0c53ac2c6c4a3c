// Package store persists the full retail dataset as a single JSON blob on
// disk. The blob is read once at startup and rewritten after every
// mutation; a file lock guards against concurrent processes clobbering it.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"retaildash/internal/domain"
)

const lockTimeout = 3 * time.Second

// Store holds the dataset in memory and mirrors it to one file.
type Store struct {
	path     string
	fileLock *flock.Flock
	mu       sync.RWMutex
	data     *domain.Dataset
}

// Open loads the blob at path, seeding the sample dataset when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

// View calls fn with a read-locked view of the dataset. fn must not retain
// or mutate the dataset.
func (s *Store) View(fn func(*domain.Dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// Mutate applies fn to the dataset and, if it succeeds, writes the whole
// blob back to disk.
func (s *Store) Mutate(fn func(*domain.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	return s.save()
}

// Close removes the lock file.
func (s *Store) Close() error {
	_ = os.Remove(s.path + ".lock")
	return nil
}

func (s *Store) load() (*domain.Dataset, error) {
	unlock, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(raw) == 0 {
		return domain.Seed(), nil
	}
	var data domain.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return &data, nil
}

// save writes the blob atomically: temp file then rename.
func (s *Store) save() error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}

func (s *Store) acquire() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire file lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("file lock held by another process")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}
