package engine

import "github.com/lox/tilehilo/internal/tile"

// HandSize is the number of tiles in play at once.
const HandSize = 4

// Valuate sums a hand's tiles under the given value map. Dynamic tiles
// read their tracked value (base value if untracked); numerals always
// count their face.
func Valuate(tiles []tile.Tile, values ValueMap) int {
	total := 0
	for _, t := range tiles {
		total += values.Value(t)
	}
	return total
}

// TileSnapshot freezes one tile together with the value it held at
// resolution time.
type TileSnapshot struct {
	Tile  tile.Tile
	Value int
}

// HandSnapshot is an immutable record of one resolved round: the hand
// the player bet on, its total, and how the bet went. Later value-map
// updates never reach back into an existing snapshot.
type HandSnapshot struct {
	Round     int
	Tiles     []TileSnapshot
	Total     int
	Direction Direction
	Outcome   Outcome
}

// snapshotTiles captures per-tile values under the given map.
func snapshotTiles(tiles []tile.Tile, values ValueMap) []TileSnapshot {
	out := make([]TileSnapshot, len(tiles))
	for i, t := range tiles {
		out[i] = TileSnapshot{Tile: t, Value: values.Value(t)}
	}
	return out
}
