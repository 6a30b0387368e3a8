package engine

import (
	rand "math/rand/v2"

	"github.com/lox/tilehilo/internal/tile"
)

// Draw removes up to n tiles from the front of the pile. If fewer than n
// remain it returns what exists rather than erroring; the bet transition
// avoids that case by reshuffling first.
func Draw(pile []tile.Tile, n int) (drawn, remaining []tile.Tile) {
	if n <= 0 {
		return nil, pile
	}
	if n > len(pile) {
		n = len(pile)
	}
	drawn = make([]tile.Tile, n)
	copy(drawn, pile[:n])
	remaining = pile[n:]
	return drawn, remaining
}

// ReshuffleResult is the outcome of replenishing an exhausted draw pile.
type ReshuffleResult struct {
	DrawPile       []tile.Tile
	ReshuffleCount int
	GameOver       bool
}

// Reshuffle replenishes the draw pile after exhaustion: any tiles still
// stranded in the old draw pile, the entire discard pile, and one fresh
// deck are shuffled together into the new draw pile. Folding the
// leftovers in keeps every tile in play in exactly one pile. The discard
// pile comes back empty and the exhaustion counter increments; the third
// exhaustion ends the game regardless of tile values.
func Reshuffle(leftover, discard []tile.Tile, reshuffleCount int, ids *tile.IDAllocator, rng *rand.Rand) ReshuffleResult {
	pool := make([]tile.Tile, 0, len(leftover)+len(discard)+tile.DeckSize)
	pool = append(pool, leftover...)
	pool = append(pool, discard...)
	pool = append(pool, tile.NewDeck(ids)...)
	tile.Shuffle(pool, rng)

	count := reshuffleCount + 1

	return ReshuffleResult{
		DrawPile:       pool,
		ReshuffleCount: count,
		GameOver:       count >= MaxReshuffles,
	}
}
