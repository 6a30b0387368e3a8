package main

import (
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/tilehilo/cmd/tilehilo/shared"
	"github.com/lox/tilehilo/internal/config"
	"github.com/lox/tilehilo/internal/storage"
)

// LeaderboardCmd prints or clears the stored leaderboard
type LeaderboardCmd struct {
	Clear bool `help:"Delete all stored scores"`
}

func (c *LeaderboardCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	logger := shared.SetupLogger(cfg.LogLevel, cli.Debug)
	board := storage.NewLeaderboard(cfg.LeaderboardPath(), cfg.LeaderboardCap, quartz.NewReal(), logger)

	if c.Clear {
		if err := board.Clear(); err != nil {
			return fmt.Errorf("failed to clear leaderboard: %w", err)
		}
		fmt.Println("leaderboard cleared")
		return nil
	}

	entries := board.Entries()
	if len(entries) == 0 {
		fmt.Println("no scores recorded yet")
		return nil
	}

	for i, e := range entries {
		when := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("%d. %-24s %4d  %s\n", i+1, e.Name, e.Score, when)
	}
	return nil
}
