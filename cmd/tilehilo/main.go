package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Config      string           `help:"Path to config file" type:"path"`
	Debug       bool             `help:"Enable debug logging"`
	Play        PlayCmd          `cmd:"" default:"1" help:"Play the game interactively"`
	Simulate    SimulateCmd      `cmd:"" help:"Run headless games and report statistics"`
	Leaderboard LeaderboardCmd   `cmd:"" help:"Show or clear the leaderboard"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tilehilo"),
		kong.Description("Higher/lower betting over mahjong tile hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
