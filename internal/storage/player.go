package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/tilehilo/internal/fileutil"
)

// PlayerStore persists the player's display name. Reads that fail mean
// no saved name; writes are best effort.
type PlayerStore struct {
	path   string
	logger *log.Logger
}

// NewPlayerStore creates a store backed by the file at path.
func NewPlayerStore(path string, logger *log.Logger) *PlayerStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &PlayerStore{path: path, logger: logger.WithPrefix("player")}
}

// Name returns the saved display name, or "" if none is stored.
func (p *PlayerStore) Name() string {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetName saves the display name, trimmed. Failures are logged and
// swallowed.
func (p *PlayerStore) SetName(name string) {
	name = strings.TrimSpace(name)
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		p.logger.Warn("failed to create data directory", "error", err)
		return
	}
	if err := fileutil.WriteFileAtomic(p.path, []byte(name+"\n"), 0o644); err != nil {
		p.logger.Warn("failed to save player name", "error", err)
	}
}

// writeFile persists leaderboard bytes, creating the parent directory as
// needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}
