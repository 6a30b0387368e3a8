package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T, cap int) (*Leaderboard, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	return NewLeaderboard(path, cap, clock, nil), clock
}

func TestRecordAndReadBack(t *testing.T) {
	board, _ := newTestLeaderboard(t, 5)

	assert.Empty(t, board.Entries())

	require.True(t, board.Record("session-1", "Ada", 7))

	entries := board.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Ada", entries[0].Name)
	assert.Equal(t, 7, entries[0].Score)
	assert.Equal(t, "session-1", entries[0].SessionID)
}

func TestRecordIdempotentPerSession(t *testing.T) {
	board, _ := newTestLeaderboard(t, 5)

	assert.True(t, board.Record("session-1", "Ada", 7))
	assert.False(t, board.Record("session-1", "Ada", 7), "re-render double submit must not duplicate")
	assert.Len(t, board.Entries(), 1)

	// Same name and score under a different session is a new game
	assert.True(t, board.Record("session-2", "Ada", 7))
	assert.Len(t, board.Entries(), 2)
}

func TestOrderingScoreDescThenEarlierTimestamp(t *testing.T) {
	board, clock := newTestLeaderboard(t, 5)

	board.Record("s1", "P1", 10)
	clock.Advance(time.Second)
	board.Record("s2", "P2", 20)
	clock.Advance(time.Second)
	board.Record("s3", "P3", 10)

	entries := board.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "P2", entries[0].Name)
	assert.Equal(t, "P1", entries[1].Name, "tie broken by earlier timestamp")
	assert.Equal(t, "P3", entries[2].Name)
}

func TestCapDropsLowest(t *testing.T) {
	board, clock := newTestLeaderboard(t, 3)

	for i, score := range []int{5, 9, 1, 7} {
		board.Record(string(rune('a'+i)), "P", score)
		clock.Advance(time.Second)
	}

	entries := board.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 9, entries[0].Score)
	assert.Equal(t, 7, entries[1].Score)
	assert.Equal(t, 5, entries[2].Score)
}

func TestMalformedFileReadsAsEmpty(t *testing.T) {
	board, _ := newTestLeaderboard(t, 5)

	require.NoError(t, os.WriteFile(board.path, []byte("{not json"), 0o644))
	assert.Empty(t, board.Entries())

	// Wrong field types also read as empty
	require.NoError(t, os.WriteFile(board.path, []byte(`{"version":1,"entries":[{"score":"ten"}]}`), 0o644))
	assert.Empty(t, board.Entries())

	// Unknown version reads as empty
	require.NoError(t, os.WriteFile(board.path, []byte(`{"version":99,"entries":[]}`), 0o644))
	assert.Empty(t, board.Entries())

	// Recording over garbage starts a fresh list
	assert.True(t, board.Record("s1", "Ada", 3))
	assert.Len(t, board.Entries(), 1)
}

func TestClear(t *testing.T) {
	board, _ := newTestLeaderboard(t, 5)

	require.NoError(t, board.Clear(), "clearing a missing file is fine")

	board.Record("s1", "Ada", 3)
	require.NoError(t, board.Clear())
	assert.Empty(t, board.Entries())
}
