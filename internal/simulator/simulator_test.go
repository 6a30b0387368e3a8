package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tilehilo/internal/engine"
)

func TestRunCompletesEveryGame(t *testing.T) {
	sim := New(Options{Games: 50, Workers: 4, Seed: 42}, nil)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, stats.Games)
	assert.Greater(t, stats.MeanRounds(), 0.0)

	// Every game ends for exactly one of the three reasons
	total := stats.ReasonCounts[engine.ReasonValueFloor] +
		stats.ReasonCounts[engine.ReasonValueCeiling] +
		stats.ReasonCounts[engine.ReasonPileExhausted]
	assert.Equal(t, 50, total)
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	run := func() float64 {
		sim := New(Options{Games: 30, Workers: 3, Seed: 7, Strategy: AlwaysHigher()}, nil)
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats.MeanScore()
	}

	assert.Equal(t, run(), run())
}

func TestStrategies(t *testing.T) {
	for _, name := range []string{"higher", "lower", "threshold"} {
		strategy, err := NewStrategy(name)
		require.NoError(t, err)
		assert.NotNil(t, strategy)
	}

	_, err := NewStrategy("martingale")
	assert.Error(t, err)
}

func TestPlayGameRespectsScoreBounds(t *testing.T) {
	sim := New(Options{Games: 1, Seed: 1}, nil)

	for seed := int64(0); seed < 10; seed++ {
		result, err := sim.playGame(seed)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, result.Rounds)
		assert.NotEqual(t, engine.ReasonNone, result.Reason)
	}
}
