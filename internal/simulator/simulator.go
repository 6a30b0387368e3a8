// Package simulator plays headless games against the engine with a
// fixed betting strategy, fanning out across workers for throughput.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tilehilo/internal/engine"
	"github.com/lox/tilehilo/internal/randutil"
	"github.com/lox/tilehilo/internal/statistics"
)

// maxRoundsPerGame bounds a single game as a safety net. Exhaustion
// alone ends any game well under this.
const maxRoundsPerGame = 10_000

// Strategy picks a bet direction from the current state.
type Strategy interface {
	Next(s *engine.State) engine.Direction
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(s *engine.State) engine.Direction

// Next implements Strategy.
func (f StrategyFunc) Next(s *engine.State) engine.Direction {
	return f(s)
}

// AlwaysHigher bets higher every round.
func AlwaysHigher() Strategy {
	return StrategyFunc(func(*engine.State) engine.Direction {
		return engine.Higher
	})
}

// AlwaysLower bets lower every round.
func AlwaysLower() Strategy {
	return StrategyFunc(func(*engine.State) engine.Direction {
		return engine.Lower
	})
}

// Threshold bets lower when the current total is above the long-run mean
// hand total (4 tiles averaging 5 each), higher otherwise.
func Threshold() Strategy {
	const meanHandTotal = engine.HandSize * 5
	return StrategyFunc(func(s *engine.State) engine.Direction {
		if s.CurrentTotal() > meanHandTotal {
			return engine.Lower
		}
		return engine.Higher
	})
}

// NewStrategy builds a strategy by name: higher, lower, or threshold.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case "higher":
		return AlwaysHigher(), nil
	case "lower":
		return AlwaysLower(), nil
	case "threshold":
		return Threshold(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Options configures a simulation run.
type Options struct {
	Games    int
	Workers  int // defaults to GOMAXPROCS
	Seed     int64
	Strategy Strategy
}

// Simulator runs batches of games.
type Simulator struct {
	opts   Options
	logger *log.Logger
}

// New creates a simulator. A nil logger disables logging.
func New(opts Options, logger *log.Logger) *Simulator {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Strategy == nil {
		opts.Strategy = Threshold()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{opts: opts, logger: logger.WithPrefix("simulator")}
}

// Run plays the configured number of games and returns aggregated
// statistics. Each game derives its own seed from the run seed, so a run
// is reproducible and any single game can be replayed in isolation.
func (sim *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	seeder := randutil.New(sim.opts.Seed)
	seeds := make([]int64, sim.opts.Games)
	for i := range seeds {
		seeds[i] = int64(seeder.Uint64())
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, sim.opts.Workers)

	perWorker := sim.opts.Games / sim.opts.Workers
	remainder := sim.opts.Games % sim.opts.Workers

	start := 0
	for w := 0; w < sim.opts.Workers; w++ {
		count := perWorker
		if w < remainder {
			count++
		}
		if count == 0 {
			continue
		}
		batch := seeds[start : start+count]
		start += count

		g.Go(func() error {
			stats := &statistics.Statistics{}
			for _, seed := range batch {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := sim.playGame(seed)
				if err != nil {
					return err
				}
				stats.Add(result)
			}
			results <- stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}

	sim.logger.Debug("simulation complete",
		"games", total.Games,
		"mean_score", total.MeanScore(),
		"mean_rounds", total.MeanRounds())

	return total, nil
}

// playGame runs one game to completion.
func (sim *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	eng := engine.New(randutil.New(seed), nil)
	state := eng.StartGame()

	rounds := 0
	for !state.IsGameOver() {
		if rounds >= maxRoundsPerGame {
			return statistics.GameResult{}, fmt.Errorf("game with seed %d exceeded %d rounds", seed, maxRoundsPerGame)
		}

		next := eng.PlaceBet(state, sim.opts.Strategy.Next(state))
		if next == state {
			return statistics.GameResult{}, fmt.Errorf("bet rejected in status %s", state.Status)
		}
		if next.Status == engine.StatusResolving {
			rounds++
			next = eng.AcknowledgeResolution(next)
		}
		state = next
	}

	return statistics.GameResult{
		Rounds: rounds,
		Score:  state.Score,
		Reason: state.Reason,
		Seed:   seed,
	}, nil
}
