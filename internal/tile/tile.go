package tile

import "fmt"

// Kind classifies a tile archetype
type Kind int

const (
	Numeral Kind = iota
	Wind
	Dragon
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Numeral:
		return "numeral"
	case Wind:
		return "wind"
	case Dragon:
		return "dragon"
	default:
		return "?"
	}
}

// Suit represents a numeral tile suit
type Suit int

const (
	Bamboo Suit = iota
	Character
	Circle
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Bamboo:
		return "bamboo"
	case Character:
		return "character"
	case Circle:
		return "circle"
	default:
		return "?"
	}
}

// Direction represents a wind tile direction
type Direction int

const (
	East Direction = iota
	South
	West
	North
)

// String returns the string representation of a wind direction
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "?"
	}
}

// Color represents a dragon tile color
type Color int

const (
	Red Color = iota
	Green
	White
)

// String returns the string representation of a dragon color
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case White:
		return "white"
	default:
		return "?"
	}
}

// HonorBaseValue is the starting value for wind and dragon tiles.
// Numeral tiles are worth their face number.
const HonorBaseValue = 5

// ID identifies a single tile instance within one game session.
// Uniqueness matters because honor tile values are tracked per instance.
type ID int

// Tile is a single tile instance. Kind determines which of Suit/Face,
// Wind, or Dragon is meaningful.
type Tile struct {
	ID        ID
	Kind      Kind
	Suit      Suit      // numerals only
	Face      int       // numerals only, 1-9
	Wind      Direction // winds only
	Dragon    Color     // dragons only
	BaseValue int
}

// Dynamic reports whether the tile's value can drift from its base value.
// Only winds and dragons are dynamic.
func (t Tile) Dynamic() bool {
	return t.Kind == Wind || t.Kind == Dragon
}

// String returns a short human-readable label (e.g. "bamboo 3", "east wind")
func (t Tile) String() string {
	switch t.Kind {
	case Numeral:
		return fmt.Sprintf("%s %d", t.Suit, t.Face)
	case Wind:
		return fmt.Sprintf("%s wind", t.Wind)
	case Dragon:
		return fmt.Sprintf("%s dragon", t.Dragon)
	default:
		return "?"
	}
}

// Short returns a compact two-character label for dense displays
// (e.g. "b3", "Ew", "Rd"). Circle uses "o" so it stays distinct from
// character.
func (t Tile) Short() string {
	switch t.Kind {
	case Numeral:
		letter := byte('b')
		switch t.Suit {
		case Character:
			letter = 'c'
		case Circle:
			letter = 'o'
		}
		return fmt.Sprintf("%c%d", letter, t.Face)
	case Wind:
		return fmt.Sprintf("%cw", t.Wind.String()[0]-32)
	case Dragon:
		return fmt.Sprintf("%cd", t.Dragon.String()[0]-32)
	default:
		return "??"
	}
}
