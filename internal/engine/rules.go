package engine

// Direction is the player's prediction for the next hand's total
type Direction int

const (
	Higher Direction = iota
	Lower
)

// String returns the string representation of a bet direction
func (d Direction) String() string {
	switch d {
	case Higher:
		return "higher"
	case Lower:
		return "lower"
	default:
		return "?"
	}
}

// Outcome is the result of a resolved bet
type Outcome int

const (
	Lose Outcome = iota
	Win
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "lose"
}

// ResolveBet compares two hand totals against the predicted direction.
// Ties always lose, in either direction. That asymmetry is the house
// edge and is load-bearing for game balance.
func ResolveBet(previousTotal, nextTotal int, direction Direction) Outcome {
	switch direction {
	case Higher:
		if nextTotal > previousTotal {
			return Win
		}
	case Lower:
		if nextTotal < previousTotal {
			return Win
		}
	}
	return Lose
}

// GameOverReason explains why a session ended
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonValueFloor
	ReasonValueCeiling
	ReasonPileExhausted
)

// String returns the string representation of a game-over reason
func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonValueFloor:
		return "tile value floor"
	case ReasonValueCeiling:
		return "tile value ceiling"
	case ReasonPileExhausted:
		return "pile exhausted three times"
	default:
		return "?"
	}
}

// MaxReshuffles is the number of draw-pile exhaustions that ends the game.
const MaxReshuffles = 3

// Tracked honor values must stay strictly inside (ValueFloor, ValueCeiling)
// for the game to continue.
const (
	ValueFloor   = 0
	ValueCeiling = 10
)

// CheckGameOver inspects the tracked values and the reshuffle counter for
// a terminal condition. Reasons are checked in a fixed priority: value
// floor, then value ceiling, then third exhaustion. Exactly one reason is
// reported even when several conditions hold at once.
func CheckGameOver(values ValueMap, reshuffleCount int) (bool, GameOverReason) {
	for _, v := range values {
		if v <= ValueFloor {
			return true, ReasonValueFloor
		}
	}
	for _, v := range values {
		if v >= ValueCeiling {
			return true, ReasonValueCeiling
		}
	}
	if reshuffleCount >= MaxReshuffles {
		return true, ReasonPileExhausted
	}
	return false, ReasonNone
}
