package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/tilehilo/cmd/tilehilo/shared"
	"github.com/lox/tilehilo/internal/config"
	"github.com/lox/tilehilo/internal/simulator"
)

// SimulateCmd plays headless games and prints aggregate statistics
type SimulateCmd struct {
	Games    int    `default:"10000" help:"Number of games to simulate"`
	Strategy string `default:"threshold" enum:"higher,lower,threshold" help:"Betting strategy"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers  int    `default:"0" help:"Worker goroutines (0 for GOMAXPROCS)"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	logger := shared.SetupLogger(cfg.LogLevel, cli.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	strategy, err := simulator.NewStrategy(c.Strategy)
	if err != nil {
		return err
	}

	logger.Info("starting simulation",
		"games", c.Games,
		"strategy", c.Strategy,
		"seed", seed)

	sim := simulator.New(simulator.Options{
		Games:    c.Games,
		Workers:  c.Workers,
		Seed:     seed,
		Strategy: strategy,
	}, logger)

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	logger.Info("simulation finished", "elapsed", time.Since(start))
	fmt.Print(stats.Summary())
	return nil
}
