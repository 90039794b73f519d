package salad

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/salad-chef/internal/config"
	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad/kitchen"
	"github.com/vovakirdan/salad-chef/internal/registry"
	"github.com/vovakirdan/salad-chef/internal/storage"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// newConfigured builds a game from cfg without touching config files.
func newConfigured(g *Game, cfg config.SaladConfig, rec kitchen.ScoreRecorder) *Game {
	g.Configure(Options{Config: &cfg, Recorder: rec})
	return g
}

func press(p core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.Set(p, a)
	}
	return in
}

func TestRegisteredModes(t *testing.T) {
	tests := []struct {
		id      string
		title   string
		players []core.PlayerID
	}{
		{"salad", "Salad Chef", []core.PlayerID{core.Player1, core.Player2}},
		{"salad_solo", "Salad Chef (Solo)", []core.PlayerID{core.Player1}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q): %v", tt.id, err)
			}
			if g.ID() != tt.id || g.Title() != tt.title {
				t.Errorf("got %q / %q, want %q / %q", g.ID(), g.Title(), tt.id, tt.title)
			}
			if diff := cmp.Diff(tt.players, g.Players()); diff != "" {
				t.Errorf("Players() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	g1 := newConfigured(New(), cfg, nil)
	g2 := newConfigured(New(), cfg, nil)
	g1.Reset(testRuntime(12345))
	g2.Reset(testRuntime(12345))

	script := []core.Action{core.ActionLeft, core.ActionUp, core.ActionInteract, core.ActionRight, core.ActionDown}
	for i := 0; i < 60*100; i++ {
		in := core.NewMultiInputFrame()
		if i%7 == 0 {
			in.Set(core.Player1, script[(i/7)%len(script)])
			in.Set(core.Player2, script[(i/11)%len(script)])
		}
		g1.Step(in)
		g2.Step(in)
	}

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("snapshots diverged (-g1 +g2):\n%s", diff)
	}
	if !g1.State().GameOver {
		t.Error("round should be over after 100 seconds")
	}
}

func TestResetStartsFreshRound(t *testing.T) {
	g := newConfigured(NewSolo(), config.DefaultSaladConfig(), nil)
	g.Reset(testRuntime(1))
	for i := 0; i < 30; i++ {
		g.Step(press(core.Player1, core.ActionRight))
	}
	g.Reset(testRuntime(1))

	snap := g.Snapshot()
	if snap.Tick != 0 {
		t.Errorf("Tick = %d after Reset, want 0", snap.Tick)
	}
	if got, want := snap.Chefs[0].X, -2.5; got != want {
		t.Errorf("chef X = %v after Reset, want spawn %v", got, want)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, want %q", snap.State, StatePlaying)
	}
}

func TestPauseFreezesRound(t *testing.T) {
	g := newConfigured(New(), config.DefaultSaladConfig(), nil)
	g.Reset(testRuntime(7))
	g.Step(core.NewMultiInputFrame())

	res := g.Step(press(core.Player2, core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause from either player should pause the round")
	}
	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(press(core.Player1, core.ActionLeft))
	}
	if diff := cmp.Diff(before.Chefs, g.Snapshot().Chefs); diff != "" {
		t.Errorf("chefs changed while paused (-before +after):\n%s", diff)
	}

	g.Step(press(core.Player1, core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestWalkToCrateAndPick(t *testing.T) {
	g := newConfigured(NewSolo(), config.DefaultSaladConfig(), nil)
	g.Reset(testRuntime(3))

	// Spawn is (-2.5, -2.5); crate A sits at (-6, 1).
	for i := 0; i < 6; i++ {
		g.Step(press(core.Player1, core.ActionLeft))
	}
	for i := 0; i < 7; i++ {
		g.Step(press(core.Player1, core.ActionUp))
	}
	g.Step(press(core.Player1, core.ActionInteract))

	chef := g.Snapshot().Chefs[0]
	if chef.X != -5.5 || chef.Y != 1.0 {
		t.Fatalf("chef at (%v, %v), want (-5.5, 1)", chef.X, chef.Y)
	}
	if chef.Carrying != "[a]" {
		t.Errorf("Carrying = %q, want %q", chef.Carrying, "[a]")
	}
}

func TestWinnerIsRecorded(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	cfg.Round.PlayerTime = 1
	cfg.Chopping.Delay = 0
	store := storage.NewMemoryStore()

	g := newConfigured(NewSolo(), cfg, store)
	g.Reset(testRuntime(42))
	k := g.Kitchen()

	crates := map[kitchen.VeggieType]kitchen.EntityID{}
	var board, seat kitchen.EntityID
	for _, it := range k.Interactables() {
		switch {
		case it.Kind == kitchen.KindVeggies:
			crates[it.Veggie] = it.ID
		case it.Kind == kitchen.KindChoppingBoard && it.Station == core.Player1:
			board = it.ID
		case it.Kind == kitchen.KindSeat && it.Seat == 0:
			seat = it.ID
		}
	}

	c := k.Seats().Occupant(0)
	if c == nil {
		t.Fatal("first customer should be seated at seat 0")
	}
	use := func(id kitchen.EntityID) kitchen.Result {
		k.Enter(core.Player1, id)
		return k.Interact(core.Player1)
	}
	for _, v := range c.Order() {
		if r := use(crates[v.Type]); r != kitchen.Applied {
			t.Fatalf("pick %s: %v", v.Type, r)
		}
	}
	for range c.Order() {
		if r := use(board); r != kitchen.Applied {
			t.Fatalf("chop: %v", r)
		}
		g.Step(core.NewMultiInputFrame())
	}
	if r := use(board); r != kitchen.Applied {
		t.Fatalf("collect salad: %v", r)
	}
	if r := use(seat); r != kitchen.Applied {
		t.Fatalf("serve: %v", r)
	}

	for i := 0; i < 120 && !g.State().GameOver; i++ {
		g.Step(core.NewMultiInputFrame())
	}
	st := g.State()
	if !st.GameOver {
		t.Fatal("round should end once the only chef runs out of time")
	}
	if st.Winner != "Player1" || st.Scores[core.Player1] != cfg.Scoring.OrderScore {
		t.Errorf("Winner = %q with %d, want Player1 with %d", st.Winner, st.Scores[core.Player1], cfg.Scoring.OrderScore)
	}

	top, err := store.TopScores()
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if top[0].Name != "Player1" || top[0].Score != cfg.Scoring.OrderScore {
		t.Errorf("top score = %+v, want Player1 %d", top[0], cfg.Scoring.OrderScore)
	}
	if g.Snapshot().State != StateRoundOver {
		t.Errorf("State = %q, want %q", g.Snapshot().State, StateRoundOver)
	}
}

func TestNobodyScores(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	cfg.Round.PlayerTime = 0.5
	store := storage.NewMemoryStore()

	g := newConfigured(New(), cfg, store)
	g.Reset(testRuntime(5))
	for i := 0; i < 60; i++ {
		g.Step(core.NewMultiInputFrame())
	}

	st := g.State()
	if !st.GameOver || st.Winner != "" {
		t.Fatalf("GameOver = %v, Winner = %q; want over with no winner", st.GameOver, st.Winner)
	}
	top, _ := store.TopScores()
	if top[0].Name != storage.EmptyName {
		t.Errorf("no score should be recorded without a winner, got %+v", top[0])
	}

	tick := g.Snapshot().Tick
	g.Step(core.NewMultiInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("a finished round should not advance")
	}
}

func TestConfigReachesKitchen(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	cfg.Customers.Seats = 3
	cfg.Scoring.OrderScore = 50
	cfg.Players.InventoryCapacity = 3

	g := newConfigured(New(), cfg, nil)
	g.Reset(testRuntime(9))
	k := g.Kitchen()

	if got := k.Seats().Count(); got != 3 {
		t.Errorf("seats = %d, want 3", got)
	}
	if got := k.Settings().OrderScore; got != 50 {
		t.Errorf("OrderScore = %d, want 50", got)
	}
	p, _ := k.Player(core.Player2)
	if got := p.Inventory().Capacity(); got != 3 {
		t.Errorf("capacity = %d, want 3", got)
	}

	seats := 0
	for _, it := range k.Interactables() {
		if it.Kind == kitchen.KindSeat {
			seats++
		}
	}
	if seats != 3 {
		t.Errorf("seat tiles = %d, want 3", seats)
	}
}

// drawnIntervals steps an idle round to its end and returns every value the
// customer timer was redrawn to, the first draw included.
func drawnIntervals(g *Game) []float64 {
	k := g.Kitchen()
	drawn := []float64{k.CustomerTimer()}
	prev := k.CustomerTimer()
	for i := 0; i < 60*200 && !k.Over(); i++ {
		g.Step(core.NewMultiInputFrame())
		if cur := k.CustomerTimer(); cur > prev {
			drawn = append(drawn, cur)
		}
		prev = k.CustomerTimer()
	}
	return drawn
}

func TestDefaultIntervalsStayInRange(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	cfg.Round.PlayerTime = 180
	lo, hi := cfg.Round.CustomerMinInterval, cfg.Round.CustomerMaxInterval

	for _, seed := range []int64{1, 7, 42, 2024} {
		g := newConfigured(NewSolo(), cfg, nil)
		g.Reset(testRuntime(seed))
		drawn := drawnIntervals(g)
		if len(drawn) < 5 {
			t.Fatalf("seed %d: only %d draws", seed, len(drawn))
		}
		for _, d := range drawn {
			if d < lo || d > hi {
				t.Errorf("seed %d: drawn interval %.2f outside [%v, %v]", seed, d, lo, hi)
			}
		}
	}
}

func TestHardPresetShortensIntervals(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	cfg.Round.PlayerTime = 180
	config.ApplySaladPreset(&cfg, config.DifficultyHard)

	g := newConfigured(NewSolo(), cfg, nil)
	g.Reset(testRuntime(7))
	drawn := drawnIntervals(g)
	if last := drawn[len(drawn)-1]; last >= cfg.Round.CustomerMinInterval {
		t.Errorf("late interval %.2f should drop below %v once progression kicks in", last, cfg.Round.CustomerMinInterval)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { _ = SetDifficultyPreset("") })

	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatalf("SetDifficultyPreset(hard) = %v", err)
	}
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", difficultyPreset)
	}
	if err := SetDifficultyPreset("bogus"); err == nil {
		t.Error("unknown preset should be rejected")
	}
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear, got %q", difficultyPreset)
	}
	if err := SetDifficultyPreset(""); err != nil {
		t.Errorf("empty preset = %v, want nil", err)
	}
}

func TestStateCountsSeconds(t *testing.T) {
	g := newConfigured(New(), config.DefaultSaladConfig(), nil)
	g.Reset(testRuntime(11))
	for i := 0; i < 150; i++ {
		g.Step(core.NewMultiInputFrame())
	}
	if got := g.State().Seconds; got != 2 {
		t.Errorf("Seconds = %d after 150 ticks, want 2", got)
	}
}

func TestRenderKitchen(t *testing.T) {
	g := newConfigured(New(), config.DefaultSaladConfig(), nil)
	g.Reset(testRuntime(2))
	g.Step(core.NewMultiInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Salad Chef", "@1", "@2", "[A]", "[F]", "[X]", "[=]", "Player1 [empty]"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q:\n%s", want, out)
		}
	}
	if cell := screen.GetCell(2, 5); cell.Rune != '[' || cell.Color != core.ColorYellow {
		t.Errorf("crate A cell = %+v, want yellow '['", cell)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newConfigured(New(), config.DefaultSaladConfig(), nil)
	rt := testRuntime(2)
	rt.ScreenW = 40
	g.Reset(rt)

	if res := g.Step(press(core.Player1, core.ActionLeft)); res.State.Seconds != 0 {
		t.Error("a too small screen should hold the round")
	}
	screen := core.NewScreen(40, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("expected the too small notice")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q, want %q", g.Snapshot().State, StatePausedSmall)
	}
}

func TestRenderRoundOver(t *testing.T) {
	cfg := config.DefaultSaladConfig()
	cfg.Round.PlayerTime = 0.1
	g := newConfigured(New(), cfg, nil)
	g.Reset(testRuntime(2))
	for i := 0; i < 10; i++ {
		g.Step(core.NewMultiInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Round over", "No winner", "Press R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("end banner is missing %q", want)
		}
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newConfigured(New(), config.DefaultSaladConfig(), nil)
	g.Reset(testRuntime(4))
	for i := 0; i < 5; i++ {
		g.Step(press(core.Player1, core.ActionLeft))
	}

	g.Resize(30, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %q after shrinking, want %q", g.Snapshot().State, StatePausedSmall)
	}
	g.Resize(100, 30)
	snap := g.Snapshot()
	if snap.State != StatePlaying || snap.Tick != 5 {
		t.Errorf("State = %q at tick %d after growing, want playing at tick 5", snap.State, snap.Tick)
	}
}
