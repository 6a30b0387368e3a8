package engine

import "github.com/lox/tilehilo/internal/tile"

// Status is the lifecycle phase of a game session
type Status int

const (
	// StatusIdle means no game is in progress
	StatusIdle Status = iota
	// StatusRunning accepts exactly one bet action
	StatusRunning
	// StatusResolving holds a committed round until the caller acknowledges
	// it; the pause is presentation pacing, the result is already final
	StatusResolving
	// StatusGameOver is terminal except for starting a new game
	StatusGameOver
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusResolving:
		return "resolving"
	case StatusGameOver:
		return "game_over"
	default:
		return "?"
	}
}

// State is the root record for one game session. Every tile in play is
// in exactly one of DrawPile, DiscardPile, or CurrentHand. Transitions
// produce a new State and never mutate the old one, so callers can hold
// onto earlier states (and the UI can compare references to detect
// rejected actions).
type State struct {
	// SessionID uniquely identifies this game for leaderboard dedup
	SessionID string

	Status         Status
	DrawPile       []tile.Tile
	DiscardPile    []tile.Tile
	CurrentHand    []tile.Tile
	Values         ValueMap
	Score          int
	ReshuffleCount int

	// History holds every resolved round, oldest first. Display
	// truncation is the UI's concern; see RecentHistory.
	History []HandSnapshot

	// Reason is set as soon as a terminal condition is detected, which
	// can be one acknowledge step before Status reaches StatusGameOver.
	Reason GameOverReason

	ids *tile.IDAllocator
}

// CurrentTotal returns the value of the hand the player is betting on.
func (s *State) CurrentTotal() int {
	return Valuate(s.CurrentHand, s.Values)
}

// DrawCount returns the number of tiles left in the draw pile.
func (s *State) DrawCount() int {
	return len(s.DrawPile)
}

// DiscardCount returns the number of tiles in the discard pile.
func (s *State) DiscardCount() int {
	return len(s.DiscardPile)
}

// Rounds returns the number of resolved rounds so far.
func (s *State) Rounds() int {
	return len(s.History)
}

// RecentHistory returns up to n of the most recent snapshots, newest
// first.
func (s *State) RecentHistory(n int) []HandSnapshot {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if n > len(s.History) {
		n = len(s.History)
	}
	out := make([]HandSnapshot, 0, n)
	for i := len(s.History) - 1; i >= len(s.History)-n; i-- {
		out = append(out, s.History[i])
	}
	return out
}

// LastRound returns the most recently resolved round, if any.
func (s *State) LastRound() (HandSnapshot, bool) {
	if len(s.History) == 0 {
		return HandSnapshot{}, false
	}
	return s.History[len(s.History)-1], true
}

// IsGameOver reports whether the session has ended.
func (s *State) IsGameOver() bool {
	return s.Status == StatusGameOver
}

// TilesInPlay returns the total number of tiles across all piles and the
// hand. Useful for conservation checks.
func (s *State) TilesInPlay() int {
	return len(s.DrawPile) + len(s.DiscardPile) + len(s.CurrentHand)
}

// shallowClone copies the state record. Slices and maps are shared with
// the original, which is safe because states are never mutated after
// construction.
func (s *State) shallowClone() *State {
	next := *s
	return &next
}
