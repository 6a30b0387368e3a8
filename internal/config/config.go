// Package config loads the optional tilehilo configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds user-tunable settings. Everything is optional; zero
// values are replaced by defaults after decoding.
type Config struct {
	// DataDir is where the leaderboard and player name files live
	DataDir string `hcl:"data_dir,optional"`

	// PlayerName pre-fills the name prompt
	PlayerName string `hcl:"player_name,optional"`

	// LeaderboardCap is the number of entries kept
	LeaderboardCap int `hcl:"leaderboard_cap,optional"`

	// HistoryWindow is how many recent rounds the UI shows
	HistoryWindow int `hcl:"history_window,optional"`

	// ResolveDelayMs is the pause before a bet's outcome is revealed
	ResolveDelayMs int `hcl:"resolve_delay_ms,optional"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the built-in configuration. DataDir resolves under the
// user config directory, falling back to the working directory when that
// is unavailable.
func Default() *Config {
	dataDir := ".tilehilo"
	if dir, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(dir, "tilehilo")
	}
	return &Config{
		DataDir:        dataDir,
		LeaderboardCap: 5,
		HistoryWindow:  5,
		ResolveDelayMs: 600,
		LogLevel:       "info",
	}
}

// Load reads an HCL config file and applies defaults for anything
// unset. A missing file is not an error and yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var loaded Config
	if diags := gohcl.DecodeBody(file.Body, nil, &loaded); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	if loaded.DataDir != "" {
		cfg.DataDir = loaded.DataDir
	}
	if loaded.PlayerName != "" {
		cfg.PlayerName = loaded.PlayerName
	}
	if loaded.LeaderboardCap > 0 {
		cfg.LeaderboardCap = loaded.LeaderboardCap
	}
	if loaded.HistoryWindow > 0 {
		cfg.HistoryWindow = loaded.HistoryWindow
	}
	if loaded.ResolveDelayMs > 0 {
		cfg.ResolveDelayMs = loaded.ResolveDelayMs
	}
	if loaded.LogLevel != "" {
		cfg.LogLevel = loaded.LogLevel
	}

	return cfg, nil
}

// LeaderboardPath returns the leaderboard file location.
func (c *Config) LeaderboardPath() string {
	return filepath.Join(c.DataDir, "leaderboard.json")
}

// PlayerPath returns the player name file location.
func (c *Config) PlayerPath() string {
	return filepath.Join(c.DataDir, "player")
}
