package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("week", "", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, stats.ModeLastWeek, sel.Mode)
	assert.Nil(t, sel.Custom)

	sel, err = parseSelection("nonsense", "", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, stats.ModeAll, sel.Mode)

	sel, err = parseSelection("custom", "2025-03-01", "10/03/25", time.UTC)
	require.NoError(t, err)
	require.NotNil(t, sel.Custom)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), sel.Custom.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC), sel.Custom.End)

	sel, err = parseSelection("custom", "", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, stats.ModeCustom, sel.Mode)
	assert.Nil(t, sel.Custom)
}

func TestParseSelection_BadCustom(t *testing.T) {
	var verr *app.ValidationError

	_, err := parseSelection("custom", "2025-03-01", "", time.UTC)
	require.ErrorAs(t, err, &verr)

	_, err = parseSelection("custom", "yesterday", "2025-03-01", time.UTC)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "from", verr.Field)
}

func memoryConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("DEV_MODE", "")
	t.Setenv("LIFTLOG_BACKEND", "")
	t.Setenv("LIFTLOG_TIMEZONE", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nbackend = \"memory\"\n"), 0644))
	return path
}

func TestExecute_StaleReferenceIsNotAnError(t *testing.T) {
	rootCmd.SetArgs([]string{"--config", memoryConfig(t), "delete", "99"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute())
	require.NotNil(t, state)
	assert.Zero(t, state.Store.Len())
}

func TestExecute_CustomWithoutRangeAndConfiguredZone(t *testing.T) {
	path := memoryConfig(t)
	t.Setenv("LIFTLOG_TIMEZONE", "Pacific/Kiritimati")
	rootCmd.SetArgs([]string{"--config", path, "--timeframe", "custom", "list"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute())
	require.NotNil(t, state)
	assert.Equal(t, stats.ModeCustom, state.Selection.Mode)
	assert.Nil(t, state.Selection.Custom)
	assert.Equal(t, "Pacific/Kiritimati", state.Now().Location().String())
}
