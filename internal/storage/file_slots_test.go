package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlots(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	slots, err := NewFileSlots(dir)
	require.NoError(t, err)

	_, ok, err := slots.Get(ctx, SlotWorkouts)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slots.Set(ctx, SlotWorkouts, "[]"))
	require.NoError(t, slots.Set(ctx, SlotWorkouts, `[{"a":1}]`))

	v, ok, err := slots.Get(ctx, SlotWorkouts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"a":1}]`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "workouts.json", entries[0].Name())

	assert.NoError(t, slots.Close())
}

func TestNewFileSlots_EmptyDir(t *testing.T) {
	_, err := NewFileSlots("")
	assert.Error(t, err)
}

func TestMemorySlots(t *testing.T) {
	ctx := context.Background()
	slots := NewMemorySlots()

	_, ok, err := slots.Get(ctx, SlotChecklist)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slots.Set(ctx, SlotChecklist, "{}"))
	v, ok, err := slots.Get(ctx, SlotChecklist)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", v)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StorageConfig{Backend: config.BackendFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileSlots{}, s)

	s, err = Open(ctx, config.StorageConfig{Backend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemorySlots{}, s)

	_, err = Open(ctx, config.StorageConfig{Backend: config.BackendLibSQL})
	assert.Error(t, err)

	_, err = Open(ctx, config.StorageConfig{Backend: "cassandra"})
	assert.Error(t, err)
}

// Runs against a real libsql server when LIFTLOG_TEST_LIBSQL_URL is set.
func TestSQLSlots_Integration(t *testing.T) {
	url := os.Getenv("LIFTLOG_TEST_LIBSQL_URL")
	if url == "" {
		t.Skip("LIFTLOG_TEST_LIBSQL_URL not set")
	}

	ctx := context.Background()
	slots, err := NewSQLSlots(ctx, url)
	require.NoError(t, err)
	defer slots.Close()

	require.NoError(t, slots.Set(ctx, "it-slot", "one"))
	require.NoError(t, slots.Set(ctx, "it-slot", "two"))
	v, ok, err := slots.Get(ctx, "it-slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok, err = slots.Get(ctx, "it-slot-missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
