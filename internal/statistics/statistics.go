// Package statistics aggregates simulation results across many games.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lox/tilehilo/internal/engine"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Rounds int // bets resolved before the game ended
	Score  int // wins
	Reason engine.GameOverReason
	Seed   int64 // RNG seed for this game (for replay)
}

// Statistics accumulates results. Scores are kept individually for
// median/percentile computation; sums of squares drive variance.
type Statistics struct {
	Games      int
	SumScore   float64
	SumScore2  float64
	SumRounds  float64
	SumRounds2 float64
	Scores     []float64
	Rounds     []float64

	MaxScore  int
	MaxRounds int

	// ReasonCounts indexes by engine.GameOverReason
	ReasonCounts [4]int
}

// Add records one finished game.
func (s *Statistics) Add(r GameResult) {
	s.Games++
	s.SumScore += float64(r.Score)
	s.SumScore2 += float64(r.Score) * float64(r.Score)
	s.SumRounds += float64(r.Rounds)
	s.SumRounds2 += float64(r.Rounds) * float64(r.Rounds)
	s.Scores = append(s.Scores, float64(r.Score))
	s.Rounds = append(s.Rounds, float64(r.Rounds))

	if r.Score > s.MaxScore {
		s.MaxScore = r.Score
	}
	if r.Rounds > s.MaxRounds {
		s.MaxRounds = r.Rounds
	}
	if int(r.Reason) >= 0 && int(r.Reason) < len(s.ReasonCounts) {
		s.ReasonCounts[r.Reason]++
	}
}

// Merge folds another accumulator into this one.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.SumScore += other.SumScore
	s.SumScore2 += other.SumScore2
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	s.Scores = append(s.Scores, other.Scores...)
	s.Rounds = append(s.Rounds, other.Rounds...)
	if other.MaxScore > s.MaxScore {
		s.MaxScore = other.MaxScore
	}
	if other.MaxRounds > s.MaxRounds {
		s.MaxRounds = other.MaxRounds
	}
	for i, n := range other.ReasonCounts {
		s.ReasonCounts[i] += n
	}
}

// MeanScore returns the arithmetic mean score per game.
func (s *Statistics) MeanScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// MeanRounds returns the mean number of rounds survived.
func (s *Statistics) MeanRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// ScoreVariance returns the sample variance of scores.
func (s *Statistics) ScoreVariance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanScore()
	return (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// ScoreStdDev returns the sample standard deviation of scores.
func (s *Statistics) ScoreStdDev() float64 {
	return math.Sqrt(s.ScoreVariance())
}

// MedianScore returns the median score.
func (s *Statistics) MedianScore() float64 {
	return percentile(s.Scores, 50)
}

// ScorePercentile returns the p-th percentile score (0-100).
func (s *Statistics) ScorePercentile(p float64) float64 {
	return percentile(s.Scores, p)
}

// RoundsPercentile returns the p-th percentile of rounds survived.
func (s *Statistics) RoundsPercentile(p float64) float64 {
	return percentile(s.Rounds, p)
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Summary renders a multi-line report.
func (s *Statistics) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Games:   %d\n", s.Games)
	fmt.Fprintf(&b, "Score:   mean %.2f  stddev %.2f  median %.0f  max %d\n",
		s.MeanScore(), s.ScoreStdDev(), s.MedianScore(), s.MaxScore)
	fmt.Fprintf(&b, "Rounds:  mean %.2f  p90 %.0f  max %d\n",
		s.MeanRounds(), s.RoundsPercentile(90), s.MaxRounds)

	b.WriteString("Game over by:\n")
	for _, reason := range []engine.GameOverReason{
		engine.ReasonValueFloor,
		engine.ReasonValueCeiling,
		engine.ReasonPileExhausted,
	} {
		count := s.ReasonCounts[reason]
		pct := 0.0
		if s.Games > 0 {
			pct = 100 * float64(count) / float64(s.Games)
		}
		fmt.Fprintf(&b, "  %-28s %6d (%.1f%%)\n", reason, count, pct)
	}

	return b.String()
}
