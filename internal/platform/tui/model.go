package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad"
	"github.com/vovakirdan/salad-chef/internal/registry"
	"github.com/vovakirdan/salad-chef/internal/storage"
)

// configurable games accept a score recorder and logger before Reset.
type configurable interface {
	Configure(salad.Options)
}

// resizable games follow terminal size changes without restarting.
type resizable interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a round.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      storage.ScoreStore
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	topScores  []storage.ScoreEntry
	quitting   bool
	backToMenu bool
	roundSaved bool // Whether the finished round has been logged
}

// NewModel creates a new Bubble Tea model for the given game. The store may
// be nil, in which case nothing is recorded.
func NewModel(game registry.Game, store storage.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if g, ok := game.(configurable); ok {
		opts := salad.Options{Logger: logger}
		if store != nil {
			opts.Recorder = store
		}
		g.Configure(opts)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewMultiInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) solo() bool {
	return len(m.game.Players()) == 1
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.inputFrame, m.solo()) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Any(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if g, ok := m.game.(resizable); ok {
		g.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Any(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.roundSaved = false
		m.topScores = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.roundSaved {
		m.finishRound()
		m.roundSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRound logs the round and loads the table for the end screen. The
// winning score itself is recorded by the kitchen.
func (m *Model) finishRound() {
	m.logger.Info("round finished", "game", m.game.ID(), "winner", m.gameState.Winner, "seconds", m.gameState.Seconds)
	if m.store == nil {
		return
	}
	if rl, ok := m.store.(storage.RoundLog); ok {
		rec := roundRecord(m.game, m.gameState)
		if _, err := rl.SaveRound(rec); err != nil {
			m.logger.Warn("could not save round", "error", err)
		}
	}
	top, err := m.store.TopScores()
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		return
	}
	m.topScores = top
}

// roundRecord summarises a finished round for the round log.
func roundRecord(game registry.Game, st core.GameState) storage.RoundRecord {
	mode := "versus"
	if len(game.Players()) == 1 {
		mode = "solo"
	}
	return storage.RoundRecord{
		Mode:         mode,
		Player1Score: st.Scores[core.Player1],
		Player2Score: st.Scores[core.Player2],
		Winner:       st.Winner,
		Duration:     st.Seconds,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".saladchef", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.gameState.GameOver && m.roundSaved {
		return m.endView()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// endView shows the winner next to the high score table.
func (m Model) endView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("ROUND OVER"))
	b.WriteString("\n\n")
	if m.gameState.Winner != "" {
		b.WriteString(fmt.Sprintf("%s wins with %d points", m.gameState.Winner, m.gameState.Score))
	} else {
		b.WriteString("No winner")
	}
	b.WriteString("\n")
	for _, p := range m.game.Players() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(playerColorCode(p)))
		b.WriteString(style.Render(fmt.Sprintf("%s: %d", p, m.gameState.Scores[p])))
		b.WriteString("\n")
	}

	if len(m.topScores) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("TOP 10"))
		b.WriteString("\n")
		for i, e := range m.topScores {
			line := fmt.Sprintf("%2d. %-10s %5d", i+1, e.Name, e.Score)
			if e.Name == storage.EmptyName {
				line = dimStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keyMapper.Keys())))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(b.String())
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store storage.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// RunRound runs one round and reports whether the player asked to quit
// rather than go back to the menu.
func RunRound(game registry.Game, store storage.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return true, nil
	}
	return m.IsQuitting(), nil
}
