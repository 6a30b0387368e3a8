package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tilehilo/internal/randutil"
)

// archetype is a tile identity ignoring the instance id
type archetype struct {
	kind   Kind
	suit   Suit
	face   int
	wind   Direction
	dragon Color
}

func archetypeOf(t Tile) archetype {
	return archetype{kind: t.Kind, suit: t.Suit, face: t.Face, wind: t.Wind, dragon: t.Dragon}
}

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck(NewIDAllocator())
	require.Len(t, deck, DeckSize)

	var numerals, winds, dragons int
	seen := make(map[archetype]int)
	for _, tl := range deck {
		seen[archetypeOf(tl)]++
		switch tl.Kind {
		case Numeral:
			numerals++
			assert.Equal(t, tl.Face, tl.BaseValue)
			assert.False(t, tl.Dynamic())
		case Wind:
			winds++
			assert.Equal(t, HonorBaseValue, tl.BaseValue)
			assert.True(t, tl.Dynamic())
		case Dragon:
			dragons++
			assert.Equal(t, HonorBaseValue, tl.BaseValue)
			assert.True(t, tl.Dynamic())
		}
	}

	assert.Equal(t, 27, numerals)
	assert.Equal(t, 4, winds)
	assert.Equal(t, 3, dragons)

	// Exactly one instance per archetype
	assert.Len(t, seen, DeckSize)
	for a, count := range seen {
		assert.Equal(t, 1, count, "archetype %+v", a)
	}
}

func TestNewDeckSameArchetypesFreshIDs(t *testing.T) {
	ids := NewIDAllocator()
	first := NewDeck(ids)
	second := NewDeck(ids)

	seen := make(map[ID]bool)
	for _, tl := range append(append([]Tile{}, first...), second...) {
		assert.False(t, seen[tl.ID], "duplicate id %d", tl.ID)
		seen[tl.ID] = true
	}

	// Archetype composition is deterministic across calls
	for i := range first {
		assert.Equal(t, archetypeOf(first[i]), archetypeOf(second[i]))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := randutil.New(42)

	for _, size := range []int{0, 1, 2, DeckSize} {
		ids := NewIDAllocator()
		deck := NewDeck(ids)[:size]

		before := make(map[ID]int)
		for _, tl := range deck {
			before[tl.ID]++
		}

		Shuffle(deck, rng)

		require.Len(t, deck, size)
		after := make(map[ID]int)
		for _, tl := range deck {
			after[tl.ID]++
		}
		assert.Equal(t, before, after, "size %d", size)
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	deck := NewDeck(NewIDAllocator())
	original := make([]Tile, len(deck))
	copy(original, deck)

	Shuffle(deck, randutil.New(1))

	// 34! orderings; a fixed-point shuffle would mean a broken RNG hookup
	same := true
	for i := range deck {
		if deck[i].ID != original[i].ID {
			same = false
			break
		}
	}
	assert.False(t, same, "shuffle left the deck in its original order")
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := NewDeck(NewIDAllocator())
	b := NewDeck(NewIDAllocator())

	Shuffle(a, randutil.New(7))
	Shuffle(b, randutil.New(7))

	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestTileStrings(t *testing.T) {
	tests := []struct {
		tile  Tile
		long  string
		short string
	}{
		{Tile{Kind: Numeral, Suit: Bamboo, Face: 3, BaseValue: 3}, "bamboo 3", "b3"},
		{Tile{Kind: Numeral, Suit: Circle, Face: 9, BaseValue: 9}, "circle 9", "o9"},
		{Tile{Kind: Wind, Wind: East, BaseValue: 5}, "east wind", "Ew"},
		{Tile{Kind: Dragon, Dragon: White, BaseValue: 5}, "white dragon", "Wd"},
	}

	for _, test := range tests {
		assert.Equal(t, test.long, test.tile.String())
		assert.Equal(t, test.short, test.tile.Short())
	}
}
