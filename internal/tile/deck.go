package tile

import rand "math/rand/v2"

// DeckSize is the number of tiles in one fresh deck: 9 numerals in each
// of 3 suits, 4 winds, 3 dragons.
const DeckSize = 34

// IDAllocator mints instance ids that are unique for the lifetime of one
// game session. Reshuffling adds fresh decks mid-game, so ids must come
// from a counter that outlives any single deck.
type IDAllocator struct {
	next ID
}

// NewIDAllocator creates an allocator starting at id 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns a fresh id.
func (a *IDAllocator) Next() ID {
	id := a.next
	a.next++
	return id
}

// NewDeck builds a fresh unshuffled deck: one instance of each of the 34
// archetypes, each with a fresh id from the allocator. The archetype
// composition is always identical; only the ids differ between calls.
func NewDeck(ids *IDAllocator) []Tile {
	tiles := make([]Tile, 0, DeckSize)

	for suit := Bamboo; suit <= Circle; suit++ {
		for face := 1; face <= 9; face++ {
			tiles = append(tiles, Tile{
				ID:        ids.Next(),
				Kind:      Numeral,
				Suit:      suit,
				Face:      face,
				BaseValue: face,
			})
		}
	}

	for wind := East; wind <= North; wind++ {
		tiles = append(tiles, Tile{
			ID:        ids.Next(),
			Kind:      Wind,
			Wind:      wind,
			BaseValue: HonorBaseValue,
		})
	}

	for dragon := Red; dragon <= White; dragon++ {
		tiles = append(tiles, Tile{
			ID:        ids.Next(),
			Kind:      Dragon,
			Dragon:    dragon,
			BaseValue: HonorBaseValue,
		})
	}

	return tiles
}

// Shuffle permutes tiles in place using Fisher-Yates, drawing from the
// provided RNG. Every ordering is equally likely given a uniform source.
func Shuffle(tiles []Tile, rng *rand.Rand) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}
