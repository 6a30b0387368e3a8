package engine

import "github.com/lox/tilehilo/internal/tile"

// ValueMap tracks the drifting value of honor tile instances, keyed by
// instance id. It is the single source of truth for a dynamic tile's
// worth; a tile absent from the map is still at its base value. Numeral
// tiles never appear in the map.
//
// Callers treat a ValueMap as persistent: updates return a new map and
// leave the receiver untouched, so history snapshots taken against an
// older map stay valid.
type ValueMap map[tile.ID]int

// Value returns the current value of a tile: the tracked value for
// dynamic tiles present in the map, the base value otherwise.
func (m ValueMap) Value(t tile.Tile) int {
	if t.Dynamic() {
		if v, ok := m[t.ID]; ok {
			return v
		}
	}
	return t.BaseValue
}

// clone returns an independent copy of the map.
func (m ValueMap) clone() ValueMap {
	out := make(ValueMap, len(m)+4)
	for id, v := range m {
		out[id] = v
	}
	return out
}

// ApplyOutcome nudges every dynamic tile in the scored hand by +1 on a
// win and -1 on a loss, returning a new map. Numeral tiles are ignored
// and never enter the map. Values are not clamped here; breaching the
// floor or ceiling is detected by CheckGameOver.
func ApplyOutcome(hand []tile.Tile, outcome Outcome, values ValueMap) ValueMap {
	next := values.clone()

	delta := -1
	if outcome == Win {
		delta = 1
	}

	for _, t := range hand {
		if !t.Dynamic() {
			continue
		}
		next[t.ID] = next.Value(t) + delta
	}

	return next
}
