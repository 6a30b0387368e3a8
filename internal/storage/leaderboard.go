// Package storage persists the leaderboard and player name to small
// versioned JSON files. Persistence is best effort: reads that fail or
// decode garbage fall back to empty data, and failed writes are logged
// and swallowed, because local records are never required for gameplay
// correctness.
package storage

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// leaderboardVersion tags the on-disk format. A file with any other
// version is treated as no data.
const leaderboardVersion = 1

// DefaultLeaderboardCap is the number of entries kept when no cap is
// configured.
const DefaultLeaderboardCap = 5

// Entry is one finished game on the leaderboard.
type Entry struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Timestamp int64  `json:"ts"` // unix milliseconds
	SessionID string `json:"session_id"`
}

type leaderboardFile struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Leaderboard is a capped, sorted, file-backed high score list.
// Insertion is idempotent per game session: recording the same finished
// game twice keeps a single entry.
type Leaderboard struct {
	path   string
	cap    int
	clock  quartz.Clock
	logger *log.Logger
}

// NewLeaderboard creates a leaderboard backed by the file at path. A cap
// <= 0 falls back to DefaultLeaderboardCap, a nil clock to the real
// clock, and a nil logger discards logs.
func NewLeaderboard(path string, cap int, clock quartz.Clock, logger *log.Logger) *Leaderboard {
	if cap <= 0 {
		cap = DefaultLeaderboardCap
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Leaderboard{
		path:   path,
		cap:    cap,
		clock:  clock,
		logger: logger.WithPrefix("leaderboard"),
	}
}

// Entries returns the stored entries, best first. Missing, malformed, or
// wrong-version data reads as an empty list.
func (l *Leaderboard) Entries() []Entry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}

	var file leaderboardFile
	if err := json.Unmarshal(data, &file); err != nil {
		l.logger.Warn("discarding malformed leaderboard file", "path", l.path, "error", err)
		return nil
	}
	if file.Version != leaderboardVersion {
		l.logger.Warn("discarding leaderboard file with unknown version", "version", file.Version)
		return nil
	}

	sortEntries(file.Entries)
	return file.Entries
}

// Record inserts a finished game, keyed by its session id. A session id
// already present is a duplicate submission and is ignored. Returns
// whether a new entry was stored.
func (l *Leaderboard) Record(sessionID, name string, score int) bool {
	entries := l.Entries()

	for _, e := range entries {
		if e.SessionID == sessionID {
			l.logger.Debug("ignoring duplicate game submission", "session", sessionID)
			return false
		}
	}

	entries = append(entries, Entry{
		Name:      name,
		Score:     score,
		Timestamp: l.clock.Now().UnixMilli(),
		SessionID: sessionID,
	})

	sortEntries(entries)
	if len(entries) > l.cap {
		entries = entries[:l.cap]
	}

	l.write(entries)
	return true
}

// Clear removes the stored leaderboard.
func (l *Leaderboard) Clear() error {
	err := os.Remove(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *Leaderboard) write(entries []Entry) {
	data, err := json.MarshalIndent(leaderboardFile{
		Version: leaderboardVersion,
		Entries: entries,
	}, "", "  ")
	if err != nil {
		l.logger.Warn("failed to encode leaderboard", "error", err)
		return
	}
	if err := writeFile(l.path, data); err != nil {
		l.logger.Warn("failed to write leaderboard", "path", l.path, "error", err)
	}
}

// sortEntries orders by score descending, ties broken by the earlier
// timestamp. Stable so equal entries keep their insertion order.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
}
