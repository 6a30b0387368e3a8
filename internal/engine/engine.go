// Package engine implements the hand-value prediction game: a 34-tile
// mahjong-style deck, 4-tile hands, higher/lower bets, drifting honor
// tile values, and draw-pile exhaustion. The core is a pure state
// machine: every transition maps (old state, action) to a new state,
// with all randomness injected, so whole games replay deterministically
// from a seed.
package engine

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/tilehilo/internal/gameid"
	"github.com/lox/tilehilo/internal/tile"
)

// Engine drives game sessions. It holds the RNG and logger; all game
// state lives in the State values it hands out.
type Engine struct {
	rng    *rand.Rand
	logger *log.Logger
}

// New creates an engine. A nil logger disables logging.
func New(rng *rand.Rand, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		rng:    rng,
		logger: logger.WithPrefix("engine"),
	}
}

// StartGame creates a fresh session: a shuffled 34-tile deck, a 4-tile
// hand dealt, all counters zeroed, and a unique session id for
// leaderboard deduplication.
func (e *Engine) StartGame() *State {
	ids := tile.NewIDAllocator()
	deck := tile.NewDeck(ids)
	tile.Shuffle(deck, e.rng)

	hand, remaining := Draw(deck, HandSize)

	s := &State{
		SessionID:   gameid.Generate(),
		Status:      StatusRunning,
		DrawPile:    remaining,
		CurrentHand: hand,
		Values:      ValueMap{},
		ids:         ids,
	}

	e.logger.Debug("game started",
		"session", s.SessionID,
		"total", s.CurrentTotal(),
		"draw_pile", s.DrawCount())

	return s
}

// PlaceBet resolves one full round against the current hand. The action
// is rejected (same state returned, same pointer) unless the session is
// running. On success the returned state is in StatusResolving with the
// round fully committed; AcknowledgeResolution moves it on to running or
// game over.
//
// Resolution order matters and is fixed: the hand the player bet on is
// valuated first; the draw pile is reshuffled if it cannot cover a full
// hand (ending the game immediately on the third exhaustion); the next
// hand is drawn and valuated under the pre-update value map; the bet
// resolves; the outcome is applied to the retiring hand's honor tiles;
// the retiring hand is archived with the values the player actually saw.
func (e *Engine) PlaceBet(s *State, direction Direction) *State {
	if s == nil || s.Status != StatusRunning {
		return s
	}

	previousTotal := Valuate(s.CurrentHand, s.Values)

	drawPile := s.DrawPile
	discard := s.DiscardPile
	reshuffles := s.ReshuffleCount

	if len(drawPile) < HandSize {
		res := Reshuffle(drawPile, discard, reshuffles, s.ids, e.rng)
		if res.GameOver {
			// Third exhaustion: the game ends before any draw. Score and
			// history stay as they were; the current hand stays in hand.
			next := s.shallowClone()
			next.Status = StatusGameOver
			next.Reason = ReasonPileExhausted
			next.DrawPile = res.DrawPile
			next.DiscardPile = nil
			next.ReshuffleCount = res.ReshuffleCount

			e.logger.Debug("game over",
				"session", s.SessionID,
				"reason", next.Reason,
				"score", next.Score)

			return next
		}
		drawPile = res.DrawPile
		discard = nil
		reshuffles = res.ReshuffleCount

		e.logger.Debug("reshuffled draw pile",
			"session", s.SessionID,
			"count", reshuffles,
			"draw_pile", len(drawPile))
	}

	nextHand, remaining := Draw(drawPile, HandSize)
	nextTotal := Valuate(nextHand, s.Values)

	outcome := ResolveBet(previousTotal, nextTotal, direction)

	newValues := ApplyOutcome(s.CurrentHand, outcome, s.Values)

	score := s.Score
	if outcome == Win {
		score++
	}

	snapshot := HandSnapshot{
		Round:     len(s.History) + 1,
		Tiles:     snapshotTiles(s.CurrentHand, s.Values),
		Total:     previousTotal,
		Direction: direction,
		Outcome:   outcome,
	}

	over, reason := CheckGameOver(newValues, reshuffles)

	newDiscard := make([]tile.Tile, 0, len(discard)+len(s.CurrentHand))
	newDiscard = append(newDiscard, discard...)
	newDiscard = append(newDiscard, s.CurrentHand...)

	history := make([]HandSnapshot, 0, len(s.History)+1)
	history = append(history, s.History...)
	history = append(history, snapshot)

	next := &State{
		SessionID:      s.SessionID,
		Status:         StatusResolving,
		DrawPile:       remaining,
		DiscardPile:    newDiscard,
		CurrentHand:    nextHand,
		Values:         newValues,
		Score:          score,
		ReshuffleCount: reshuffles,
		History:        history,
		ids:            s.ids,
	}
	if over {
		next.Reason = reason
	}

	e.logger.Debug("bet resolved",
		"session", s.SessionID,
		"round", snapshot.Round,
		"direction", direction,
		"previous_total", previousTotal,
		"next_total", nextTotal,
		"outcome", outcome,
		"score", score)

	return next
}

// AcknowledgeResolution moves a resolving session on: to game over if a
// terminal condition was detected during the round, back to running
// otherwise. A no-op in any other status.
func (e *Engine) AcknowledgeResolution(s *State) *State {
	if s == nil || s.Status != StatusResolving {
		return s
	}

	next := s.shallowClone()
	if s.Reason != ReasonNone {
		next.Status = StatusGameOver
		e.logger.Info("game over",
			"session", s.SessionID,
			"reason", s.Reason,
			"score", s.Score,
			"rounds", s.Rounds())
	} else {
		next.Status = StatusRunning
	}
	return next
}

// Quit discards the session and returns to idle. Resolution is
// synchronous, so there is never an in-flight round to roll back.
func (e *Engine) Quit(s *State) *State {
	if s != nil {
		e.logger.Debug("game quit", "session", s.SessionID, "score", s.Score)
	}
	return &State{Status: StatusIdle}
}
