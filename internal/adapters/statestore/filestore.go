package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/okian/podium/internal/domain/model"
)

// File permission constants.
const (
	stateFileMode = 0o600
	stateDirMode  = 0o750
)

// FileStore implements Store as a single JSON file holding the
// id -> rank object. Writes go through a temp file and rename so a
// crash mid-write never leaves a torn state file behind.
type FileStore struct {
	path string
}

// FileOption applies a configuration option to the FileStore.
type FileOption func(*FileStore)

// WithPath sets the state file location.
func WithPath(path string) FileOption {
	return func(s *FileStore) {
		if path != "" {
			s.path = path
		}
	}
}

// NewFileStore creates a file-backed store. The default path sits next
// to the working directory.
func NewFileStore(opts ...FileOption) *FileStore {
	s := &FileStore{path: "podium-ranks.json"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted map. A missing file or undecodable content
// yields an empty map together with a wrapped ErrLoad the caller may
// log and ignore.
func (s *FileStore) Load(_ context.Context) (model.RankMap, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.RankMap{}, nil
		}
		return model.RankMap{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	var m model.RankMap
	if err := json.Unmarshal(b, &m); err != nil {
		return model.RankMap{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if m == nil {
		m = model.RankMap{}
	}
	return m, nil
}

// Save atomically replaces the state file with the given map.
func (s *FileStore) Save(_ context.Context, m model.RankMap) error {
	if m == nil {
		m = model.RankMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, stateDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := os.Chmod(tmpName, stateFileMode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}
