package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.LeaderboardCap)
	assert.Equal(t, 5, cfg.HistoryWindow)
	assert.Equal(t, 600, cfg.ResolveDelayMs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir        = "/tmp/tilehilo-test"
player_name     = "Ada"
leaderboard_cap = 10
history_window  = 8
log_level       = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tilehilo-test", cfg.DataDir)
	assert.Equal(t, "Ada", cfg.PlayerName)
	assert.Equal(t, 10, cfg.LeaderboardCap)
	assert.Equal(t, 8, cfg.HistoryWindow)
	assert.Equal(t, 600, cfg.ResolveDelayMs, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.LogLevel)

	assert.Equal(t, filepath.Join("/tmp/tilehilo-test", "leaderboard.json"), cfg.LeaderboardPath())
	assert.Equal(t, filepath.Join("/tmp/tilehilo-test", "player"), cfg.PlayerPath())
}

func TestLoadRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`data_dir = `), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
