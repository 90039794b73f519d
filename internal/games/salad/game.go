// Package salad adapts the kitchen rules to the terminal platform: it lays the
// stations out on a character grid, turns player positions into overlap
// events and draws the round.
package salad

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/salad-chef/internal/config"
	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad/kitchen"
	"github.com/vovakirdan/salad-chef/internal/registry"
)

// Mode selects how many chefs are in the kitchen.
type Mode int

const (
	ModeVersus Mode = iota // Two players on one keyboard
	ModeSolo               // Player1 alone
)

// statusTicks is how long a status line stays up.
const statusTicks = 180

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name clears it;
// an unknown one clears it and returns the parse error.
func SetDifficultyPreset(preset string) error {
	difficultyPreset = ""
	if preset == "" {
		return nil
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// Options injects collaborators into a game. Zero fields keep the defaults:
// configuration loaded from disk, no score recording and a silent logger.
type Options struct {
	Config   *config.SaladConfig
	Recorder kitchen.ScoreRecorder
	Logger   *log.Logger
}

// Game implements registry.Game for a round of Salad Chef.
type Game struct {
	mode Mode
	opts Options

	runtime    core.RuntimeConfig
	cfg        config.SaladConfig
	difficulty *config.DifficultyManager
	kitchen    *kitchen.Kitchen
	view       *view

	tick     uint64
	paused   bool
	tooSmall bool

	status      string
	statusTimer int
}

// New creates a two player game.
func New() *Game {
	return &Game{mode: ModeVersus}
}

// NewSolo creates a single player game.
func NewSolo() *Game {
	return &Game{mode: ModeSolo}
}

func init() {
	registry.Register("salad", func() registry.Game {
		return New()
	})
	registry.Register("salad_solo", func() registry.Game {
		return NewSolo()
	})
}

// Configure sets the collaborators used from the next Reset on.
func (g *Game) Configure(opts Options) {
	g.opts = opts
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSolo {
		return "salad_solo"
	}
	return "salad"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSolo {
		return "Salad Chef (Solo)"
	}
	return "Salad Chef"
}

// Players returns the chefs taking part.
func (g *Game) Players() []core.PlayerID {
	if g.mode == ModeSolo {
		return []core.PlayerID{core.Player1}
	}
	return []core.PlayerID{core.Player1, core.Player2}
}

// Reset starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	logger := g.logger()

	if g.opts.Config != nil {
		g.cfg = *g.opts.Config
	} else {
		cfg, err := config.LoadSalad(configPath)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			logger.Warn("using default kitchen config", "error", err)
			cfg = config.DefaultSaladConfig()
		}
		if difficultyPreset != "" {
			config.ApplySaladPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.view = newView()
	g.tick = 0
	g.paused = false
	g.status = ""
	g.statusTimer = 0
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	opts := []kitchen.Option{
		kitchen.WithLogger(logger),
		kitchen.WithPresenter(g.view),
		kitchen.WithSensor(gridSensor{}),
	}
	if g.opts.Recorder != nil {
		opts = append(opts, kitchen.WithRecorder(g.opts.Recorder))
	}
	g.kitchen = nil // bestScore reads zero while New draws the first customer
	g.kitchen = kitchen.New(g.settings(), runtime.Seed, g.Players(), opts...)
	buildLayout(g.kitchen, g.Players())

	logger.Debug("round started", "mode", g.ID(), "seed", runtime.Seed)
}

func (g *Game) logger() *log.Logger {
	if g.opts.Logger != nil {
		return g.opts.Logger
	}
	return log.New(io.Discard)
}

// settings converts the loaded config into kitchen tuning.
func (g *Game) settings() kitchen.Settings {
	c := g.cfg
	s := kitchen.DefaultSettings()
	s.PlayerTime = c.Round.PlayerTime
	s.MinInterval = c.Round.CustomerMinInterval
	s.MaxInterval = c.Round.CustomerMaxInterval
	s.MinOrder = c.Round.OrderMin
	s.MaxOrder = c.Round.OrderMax
	s.SmallOrderTime = c.Round.SmallOrderTime
	s.BigOrderTime = c.Round.BigOrderTime
	s.InventoryCapacity = c.Players.InventoryCapacity
	s.MoveStep = c.Players.MoveStep
	s.SpeederStep = c.Players.SpeederStep
	s.SpeederDuration = c.Players.SpeederDuration
	s.ChopDelay = c.Chopping.Delay
	s.SeatCount = min(c.Customers.Seats, len(seatColumns))
	s.Customers = kitchen.CustomerRules{
		Punishment:    c.Customers.Punishment,
		GiftThreshold: c.Customers.GiftThreshold,
	}
	s.GraceDelay = c.Customers.GraceDelay
	s.OrderScore = c.Scoring.OrderScore
	s.ScorerBonus = c.Scoring.ScorerBonus
	s.TimerBonus = c.Scoring.TimerBonus

	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	// Without progression the generation interval stays inside its configured range.
	if g.difficulty.IsEnabled() {
		s.IntervalScale = func(elapsed float64) float64 {
			return g.difficulty.IntervalScale(g.bestScore(), int(elapsed*float64(rate)))
		}
	}
	return s
}

// Step advances the round by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if in.Any(core.ActionPause) && !g.kitchen.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.kitchen.Over() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.kitchen.Step(g.runtime.TickSeconds(), in)
	g.view.step()
	g.collectEvents()
	if g.statusTimer > 0 {
		g.statusTimer--
		if g.statusTimer == 0 {
			g.status = ""
		}
	}
	return core.StepResult{State: g.State()}
}

// collectEvents turns kitchen events into the status line.
func (g *Game) collectEvents() {
	for _, e := range g.kitchen.Events() {
		var msg string
		switch ev := e.(type) {
		case kitchen.CustomerArrivedEvent:
			msg = fmt.Sprintf("A customer sits at seat %d and wants %s", ev.Seat+1, orderText(ev.Order))
		case kitchen.CustomerAngeredEvent:
			msg = fmt.Sprintf("Seat %d got the wrong salad from %s", ev.Seat+1, ev.Server)
		case kitchen.CustomerLeftEvent:
			switch {
			case ev.Satisfied:
				msg = fmt.Sprintf("Seat %d is happy with %s", ev.Seat+1, ev.Server)
			case ev.Angry:
				msg = fmt.Sprintf("Seat %d storms out on %s", ev.Seat+1, ev.Server)
			default:
				msg = fmt.Sprintf("Seat %d gave up waiting", ev.Seat+1)
			}
		case kitchen.PickupSpawnedEvent:
			msg = fmt.Sprintf("%s earned a %s pickup", ev.Pickup.Eligible, ev.Pickup.Kind)
		case kitchen.PickupConsumedEvent:
			msg = fmt.Sprintf("%s used a %s pickup", ev.Player, ev.Pickup.Kind)
		case kitchen.RoundOverEvent:
			if name := ev.Result.WinnerName(); name != "" {
				msg = fmt.Sprintf("%s wins with %d", name, ev.Result.WinnerScore())
			} else {
				msg = "Nobody wins this round"
			}
		}
		if msg != "" {
			g.status = msg
			g.statusTimer = statusTicks
		}
	}
}

func (g *Game) bestScore() int {
	best := 0
	if g.kitchen == nil {
		return best
	}
	for i, p := range g.kitchen.Players() {
		if i == 0 || p.Score() > best {
			best = p.Score()
		}
	}
	return best
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	scores := make(map[core.PlayerID]int, len(g.kitchen.Players()))
	for _, p := range g.kitchen.Players() {
		scores[p.ID()] = p.Score()
	}
	st := core.GameState{
		Score:    g.bestScore(),
		Scores:   scores,
		Seconds:  int(g.kitchen.Elapsed()),
		GameOver: g.kitchen.Over(),
		Paused:   g.paused,
	}
	if res, over := g.kitchen.Result(); over {
		st.Winner = res.WinnerName()
	}
	return st
}

// Resize adapts to a new terminal size without restarting the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Kitchen exposes the running round, mostly for tests.
func (g *Game) Kitchen() *kitchen.Kitchen {
	return g.kitchen
}

// Config returns the configuration the round was built from.
func (g *Game) Config() config.SaladConfig {
	return g.cfg
}
