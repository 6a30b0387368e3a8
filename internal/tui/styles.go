package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles for the game screens.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	TileBox     lipgloss.Style
	HonorTile   lipgloss.Style
	TileValue   lipgloss.Style
	Total       lipgloss.Style
	Win         lipgloss.Style
	Lose        lipgloss.Style
	Faint       lipgloss.Style
	Prompt      lipgloss.Style
	GameOver    lipgloss.Style
	Leaderboard lipgloss.Style
}

// DefaultStyles builds the style set, degrading to plain text on
// terminals without color support.
func DefaultStyles() Styles {
	plain := termenv.EnvColorProfile() == termenv.Ascii

	s := Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Header:      lipgloss.NewStyle(),
		TileBox:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		HonorTile:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		TileValue:   lipgloss.NewStyle(),
		Total:       lipgloss.NewStyle().Bold(true),
		Win:         lipgloss.NewStyle().Bold(true),
		Lose:        lipgloss.NewStyle().Bold(true),
		Faint:       lipgloss.NewStyle().Faint(true),
		Prompt:      lipgloss.NewStyle(),
		GameOver:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 3),
		Leaderboard: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
	if plain {
		return s
	}

	s.Title = s.Title.Foreground(lipgloss.Color("205"))
	s.Header = s.Header.Foreground(lipgloss.Color("245"))
	s.HonorTile = s.HonorTile.BorderForeground(lipgloss.Color("178")).Foreground(lipgloss.Color("178"))
	s.Total = s.Total.Foreground(lipgloss.Color("81"))
	s.Win = s.Win.Foreground(lipgloss.Color("42"))
	s.Lose = s.Lose.Foreground(lipgloss.Color("196"))
	s.Prompt = s.Prompt.Foreground(lipgloss.Color("81"))
	s.GameOver = s.GameOver.BorderForeground(lipgloss.Color("196"))

	return s
}
