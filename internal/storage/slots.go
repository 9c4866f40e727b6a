package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/misterclayt0n/liftlog/internal/config"
)

const (
	SlotWorkouts  = "workouts"
	SlotChecklist = "checklist"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=storage

// SlotStore is a named key-value store holding whole serialized values.
type SlotStore interface {
	// Get returns the value of a slot; ok is false when the slot was never written.
	Get(ctx context.Context, name string) (value string, ok bool, err error)
	// Set overwrites the slot.
	Set(ctx context.Context, name, value string) error
	Close() error
}

// Open returns the slot store selected by the storage config.
func Open(ctx context.Context, cfg config.StorageConfig) (SlotStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.BackendFile, "":
		return NewFileSlots(cfg.DataDir)
	case config.BackendLibSQL:
		return NewSQLSlots(ctx, cfg.DatabaseURL)
	case config.BackendMemory:
		return NewMemorySlots(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// MemorySlots keeps slots in a map. Nothing survives the process.
type MemorySlots struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: make(map[string]string)}
}

func (m *MemorySlots) Get(_ context.Context, name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[name]
	return v, ok, nil
}

func (m *MemorySlots) Set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[name] = value
	return nil
}

func (m *MemorySlots) Close() error {
	return nil
}
