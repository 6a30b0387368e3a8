package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tilehilo/internal/randutil"
	"github.com/lox/tilehilo/internal/tile"
)

func TestDraw(t *testing.T) {
	ids := tile.NewIDAllocator()
	pile := tile.NewDeck(ids)

	drawn, remaining := Draw(pile, 4)
	require.Len(t, drawn, 4)
	require.Len(t, remaining, tile.DeckSize-4)

	for i := range drawn {
		assert.Equal(t, pile[i].ID, drawn[i].ID, "draws from the front in order")
	}
}

func TestDrawShortPile(t *testing.T) {
	ids := tile.NewIDAllocator()
	pile := tile.NewDeck(ids)[:3]

	// Fewer than requested is not an error; callers reshuffle first in
	// the orchestrated flow
	drawn, remaining := Draw(pile, 4)
	assert.Len(t, drawn, 3)
	assert.Empty(t, remaining)

	drawn, remaining = Draw(nil, 4)
	assert.Empty(t, drawn)
	assert.Empty(t, remaining)

	drawn, remaining = Draw(pile, 0)
	assert.Empty(t, drawn)
	assert.Len(t, remaining, 3)
}

func TestReshuffle(t *testing.T) {
	ids := tile.NewIDAllocator()
	rng := randutil.New(11)

	discard := tile.NewDeck(ids)[:20]

	res := Reshuffle(nil, discard, 0, ids, rng)
	assert.Len(t, res.DrawPile, 20+tile.DeckSize)
	assert.Equal(t, 1, res.ReshuffleCount)
	assert.False(t, res.GameOver)
}

func TestReshuffleFoldsInLeftoverDrawTiles(t *testing.T) {
	ids := tile.NewIDAllocator()
	rng := randutil.New(11)

	deck := tile.NewDeck(ids)
	leftover := deck[:2]
	discard := deck[2:30]

	res := Reshuffle(leftover, discard, 1, ids, rng)
	require.Len(t, res.DrawPile, 2+28+tile.DeckSize)
	assert.Equal(t, 2, res.ReshuffleCount)
	assert.False(t, res.GameOver)

	// The stranded tiles are in the new pile, not silently dropped
	inPile := make(map[tile.ID]bool)
	for _, tl := range res.DrawPile {
		inPile[tl.ID] = true
	}
	for _, tl := range leftover {
		assert.True(t, inPile[tl.ID], "leftover tile %d missing after reshuffle", tl.ID)
	}
}

func TestReshuffleThirdExhaustionEndsGame(t *testing.T) {
	ids := tile.NewIDAllocator()
	rng := randutil.New(11)

	res := Reshuffle(nil, tile.NewDeck(ids), 2, ids, rng)
	assert.Equal(t, 3, res.ReshuffleCount)
	assert.True(t, res.GameOver)
}

func TestReshuffleMintsUniqueIDs(t *testing.T) {
	ids := tile.NewIDAllocator()
	rng := randutil.New(11)

	discard := tile.NewDeck(ids)

	res := Reshuffle(nil, discard, 0, ids, rng)
	seen := make(map[tile.ID]bool)
	for _, tl := range res.DrawPile {
		require.False(t, seen[tl.ID], "duplicate id %d: fresh deck must not reuse live ids", tl.ID)
		seen[tl.ID] = true
	}
}
