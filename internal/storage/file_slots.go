package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileSlots persists every slot as <dir>/<name>.json.
type FileSlots struct {
	root string
	mu   sync.RWMutex
}

func NewFileSlots(root string) (*FileSlots, error) {
	if root == "" {
		return nil, errors.New("file slots: empty data dir")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", root, err)
	}
	return &FileSlots{root: root}, nil
}

func (s *FileSlots) slotPath(name string) string {
	return filepath.Join(s.root, name+".json")
}

func (s *FileSlots) Get(_ context.Context, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.slotPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading slot %s: %w", name, err)
	}
	return string(data), true, nil
}

// Set writes to a temp file and renames it over the slot so readers never see a
// half-written value.
func (s *FileSlots) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.root, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing slot %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing slot %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.slotPath(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing slot %s: %w", name, err)
	}
	return nil
}

func (s *FileSlots) Close() error {
	return nil
}
