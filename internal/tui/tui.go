// Package tui renders the interactive game as a Bubble Tea program. The
// engine state it displays is pure and already resolved; the short pause
// between placing a bet and revealing the outcome is purely pacing and
// never changes the result.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/tilehilo/internal/engine"
	"github.com/lox/tilehilo/internal/storage"
)

type screen int

const (
	screenName screen = iota
	screenPlaying
	screenGameOver
)

// revealMsg fires when the resolving pause ends.
type revealMsg struct {
	session string
	round   int
}

// Options configures the TUI.
type Options struct {
	HistoryWindow int
	ResolveDelay  time.Duration
	PlayerName    string
}

// Model is the Bubble Tea model for the game.
type Model struct {
	engine  *engine.Engine
	state   *engine.State
	board   *storage.Leaderboard
	players *storage.PlayerStore
	logger  *log.Logger
	styles  Styles
	opts    Options

	screen    screen
	nameInput textinput.Model
	name      string
	revealing bool
	recorded  bool

	width  int
	height int
}

// NewModel builds the model. The player name is pre-filled from the
// store, then from options.
func NewModel(eng *engine.Engine, board *storage.Leaderboard, players *storage.PlayerStore, opts Options, logger *log.Logger) Model {
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 5
	}
	if opts.ResolveDelay <= 0 {
		opts.ResolveDelay = 600 * time.Millisecond
	}

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 24
	input.Focus()

	name := players.Name()
	if name == "" {
		name = opts.PlayerName
	}
	input.SetValue(name)

	return Model{
		engine:    eng,
		board:     board,
		players:   players,
		logger:    logger.WithPrefix("tui"),
		styles:    DefaultStyles(),
		opts:      opts,
		screen:    screenName,
		nameInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case revealMsg:
		return m.reveal(msg)

	case tea.KeyMsg:
		switch m.screen {
		case screenName:
			return m.updateName(msg)
		case screenPlaying:
			return m.updatePlaying(msg)
		case screenGameOver:
			return m.updateGameOver(msg)
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.name = name
		m.players.SetName(name)
		return m.startGame()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.state = m.engine.Quit(m.state)
		return m, tea.Quit
	case "h", "up", "right":
		return m.placeBet(engine.Higher)
	case "l", "down", "left":
		return m.placeBet(engine.Lower)
	}
	return m, nil
}

func (m Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "n", "enter":
		return m.startGame()
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.state = m.engine.StartGame()
	m.screen = screenPlaying
	m.revealing = false
	m.recorded = false
	return m, nil
}

// placeBet runs the engine transition. The engine rejects bets outside
// the running status by returning the same state pointer, which also
// covers key mashing during the reveal pause.
func (m Model) placeBet(dir engine.Direction) (tea.Model, tea.Cmd) {
	next := m.engine.PlaceBet(m.state, dir)
	if next == m.state {
		return m, nil
	}
	m.state = next

	if next.Status == engine.StatusGameOver {
		// Third exhaustion ends the game with no outcome to reveal
		return m.finishGame()
	}

	m.revealing = true
	reveal := revealMsg{session: next.SessionID, round: next.Rounds()}
	return m, tea.Tick(m.opts.ResolveDelay, func(time.Time) tea.Msg {
		return reveal
	})
}

func (m Model) reveal(msg revealMsg) (tea.Model, tea.Cmd) {
	// Ignore stale timers from an earlier game or round
	if m.state == nil || m.state.SessionID != msg.session || m.state.Rounds() != msg.round {
		return m, nil
	}
	if m.state.Status != engine.StatusResolving {
		return m, nil
	}

	m.revealing = false
	m.state = m.engine.AcknowledgeResolution(m.state)

	if m.state.Status == engine.StatusGameOver {
		return m.finishGame()
	}
	return m, nil
}

func (m Model) finishGame() (tea.Model, tea.Cmd) {
	m.screen = screenGameOver
	m.revealing = false
	if !m.recorded {
		m.board.Record(m.state.SessionID, m.name, m.state.Score)
		m.recorded = true
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenName:
		return m.viewName()
	case screenPlaying:
		return m.viewPlaying()
	case screenGameOver:
		return m.viewGameOver()
	}
	return ""
}

func (m Model) viewName() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("tilehilo") + "\n\n")
	b.WriteString("Bet whether the next hand totals higher or lower.\n\n")
	b.WriteString(m.styles.Prompt.Render("Who's playing?") + "\n")
	b.WriteString(m.nameInput.View() + "\n\n")
	b.WriteString(m.styles.Faint.Render("enter to start · esc to quit"))
	return b.String()
}

func (m Model) viewPlaying() string {
	s := m.state
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("tilehilo") + "  ")
	b.WriteString(m.styles.Header.Render(fmt.Sprintf(
		"%s · score %d · round %d · draw %d · discard %d · reshuffles %d/%d",
		m.name, s.Score, s.Rounds(), s.DrawCount(), s.DiscardCount(),
		s.ReshuffleCount, engine.MaxReshuffles)))
	b.WriteString("\n\n")

	if m.revealing {
		if last, ok := s.LastRound(); ok {
			b.WriteString(m.renderSnapshot(last))
			b.WriteString("\n" + m.styles.Faint.Render(fmt.Sprintf("bet %s … resolving", last.Direction)) + "\n")
		}
	} else {
		b.WriteString(m.renderHand())
		if last, ok := s.LastRound(); ok {
			b.WriteString("\n" + m.renderOutcome(last) + "\n")
		}
		b.WriteString("\n" + m.styles.Prompt.Render("[h]igher or [l]ower?") + "\n")
	}

	if history := m.renderHistory(); history != "" {
		b.WriteString("\n" + history + "\n")
	}

	b.WriteString("\n" + m.styles.Faint.Render("h/l to bet · q to quit"))
	return b.String()
}

func (m Model) viewGameOver() string {
	s := m.state
	var b strings.Builder

	var body strings.Builder
	body.WriteString(m.styles.Title.Render("GAME OVER") + "\n\n")
	body.WriteString(fmt.Sprintf("%s\n\n", s.Reason))
	body.WriteString(fmt.Sprintf("%s scored %s over %d rounds\n",
		m.name, m.styles.Total.Render(fmt.Sprintf("%d", s.Score)), s.Rounds()))

	b.WriteString(m.styles.GameOver.Render(body.String()))
	b.WriteString("\n\n" + m.renderLeaderboard())
	b.WriteString("\n\n" + m.styles.Faint.Render("n for new game · q to quit"))
	return b.String()
}

func (m Model) renderHand() string {
	s := m.state
	boxes := make([]string, 0, len(s.CurrentHand)+1)
	for _, t := range s.CurrentHand {
		style := m.styles.TileBox
		if t.Dynamic() {
			style = m.styles.HonorTile
		}
		boxes = append(boxes, style.Render(fmt.Sprintf("%s\n%d", t, s.Values.Value(t))))
	}
	boxes = append(boxes, m.styles.Total.Render(fmt.Sprintf("= %d", s.CurrentTotal())))
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

func (m Model) renderSnapshot(snap engine.HandSnapshot) string {
	boxes := make([]string, 0, len(snap.Tiles)+1)
	for _, ts := range snap.Tiles {
		style := m.styles.TileBox
		if ts.Tile.Dynamic() {
			style = m.styles.HonorTile
		}
		boxes = append(boxes, style.Render(fmt.Sprintf("%s\n%d", ts.Tile, ts.Value)))
	}
	boxes = append(boxes, m.styles.Total.Render(fmt.Sprintf("= %d", snap.Total)))
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

func (m Model) renderOutcome(last engine.HandSnapshot) string {
	if last.Outcome == engine.Win {
		return m.styles.Win.Render(fmt.Sprintf("WIN · %d was %s than %d", m.state.CurrentTotal(), last.Direction, last.Total))
	}
	return m.styles.Lose.Render(fmt.Sprintf("LOSE · bet %s on %d, got %d", last.Direction, last.Total, m.state.CurrentTotal()))
}

func (m Model) renderHistory() string {
	recent := m.state.RecentHistory(m.opts.HistoryWindow)
	if len(recent) == 0 {
		return ""
	}

	lines := make([]string, 0, len(recent)+1)
	lines = append(lines, m.styles.Header.Render("recent rounds"))
	for _, snap := range recent {
		tiles := make([]string, len(snap.Tiles))
		for i, ts := range snap.Tiles {
			tiles[i] = fmt.Sprintf("%s:%d", ts.Tile.Short(), ts.Value)
		}
		outcome := m.styles.Lose.Render("lose")
		if snap.Outcome == engine.Win {
			outcome = m.styles.Win.Render("win")
		}
		lines = append(lines, fmt.Sprintf("#%d  %s = %d  %s  %s",
			snap.Round, strings.Join(tiles, " "), snap.Total, snap.Direction, outcome))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLeaderboard() string {
	entries := m.board.Entries()
	var body strings.Builder
	body.WriteString(m.styles.Title.Render("leaderboard") + "\n")
	if len(entries) == 0 {
		body.WriteString(m.styles.Faint.Render("no scores yet"))
	}
	for i, e := range entries {
		marker := "  "
		if e.SessionID == m.state.SessionID {
			marker = "> "
		}
		body.WriteString(fmt.Sprintf("%s%d. %-24s %d\n", marker, i+1, e.Name, e.Score))
	}
	return m.styles.Leaderboard.Render(body.String())
}
