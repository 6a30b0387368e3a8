package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/lox/tilehilo/cmd/tilehilo/shared"
	"github.com/lox/tilehilo/internal/config"
	"github.com/lox/tilehilo/internal/engine"
	"github.com/lox/tilehilo/internal/randutil"
	"github.com/lox/tilehilo/internal/storage"
	"github.com/lox/tilehilo/internal/tui"
)

// PlayCmd runs the interactive TUI game
type PlayCmd struct {
	Name string `help:"Player display name (overrides the saved name)"`
	Seed *int64 `help:"Deterministic RNG seed (optional)"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	logger := shared.SetupLogger(cfg.LogLevel, cli.Debug)

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	}

	eng := engine.New(randutil.New(seed), logger)
	board := storage.NewLeaderboard(cfg.LeaderboardPath(), cfg.LeaderboardCap, quartz.NewReal(), logger)
	players := storage.NewPlayerStore(cfg.PlayerPath(), logger)

	name := cfg.PlayerName
	if c.Name != "" {
		name = c.Name
	}

	model := tui.NewModel(eng, board, players, tui.Options{
		HistoryWindow: cfg.HistoryWindow,
		ResolveDelay:  time.Duration(cfg.ResolveDelayMs) * time.Millisecond,
		PlayerName:    name,
	}, logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
