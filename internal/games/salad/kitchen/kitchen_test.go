package kitchen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/salad-chef/internal/core"
)

type testStations struct {
	board1, board2 *Interactable
	plate1         *Interactable
	garbage        *Interactable
	seat0          *Interactable
	tiles          map[VeggieType]*Interactable
}

func newTestKitchen(t *testing.T, settings Settings, players ...core.PlayerID) (*Kitchen, testStations) {
	t.Helper()
	if len(players) == 0 {
		players = []core.PlayerID{core.Player1, core.Player2}
	}
	k := New(settings, 42, players)
	st := testStations{
		board1:  k.AddBoard(core.Player1, core.Vec2{X: -4.5, Y: 1.5}),
		board2:  k.AddBoard(core.Player2, core.Vec2{X: 4.5, Y: 1.5}),
		plate1:  k.AddPlate(core.Player1, core.Vec2{X: -3.5, Y: 1.5}),
		garbage: k.AddGarbage(core.Vec2{X: 0, Y: -2.5}),
		seat0:   k.AddSeatTile(0, core.Vec2{X: -2, Y: 1.5}),
		tiles:   make(map[VeggieType]*Interactable),
	}
	for i, vt := range AllVeggieTypes {
		st.tiles[vt] = k.AddVeggieTile(vt, core.Vec2{X: -5.5, Y: -2 + float64(i)*0.5})
	}
	return k, st
}

func use(t *testing.T, k *Kitchen, p core.PlayerID, it *Interactable) Result {
	t.Helper()
	if r := k.Enter(p, it.ID); r != Applied {
		t.Fatalf("Enter(%v, %v) = %v", p, it.Kind, r)
	}
	return k.Interact(p)
}

func idle() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func TestPickVeggieUntilFull(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)

	use(t, k, core.Player1, st.tiles[VeggieA])
	use(t, k, core.Player1, st.tiles[VeggieB])
	if r := use(t, k, core.Player1, st.tiles[VeggieC]); r != RejectedCapacity {
		t.Errorf("third pick = %v, want RejectedCapacity", r)
	}
	want := []Veggie{NewVeggie(VeggieA), NewVeggie(VeggieB)}
	if diff := cmp.Diff(want, p.Inventory().Items()); diff != "" {
		t.Errorf("inventory mismatch (-want +got):\n%s", diff)
	}

	if r := use(t, k, core.Player1, st.garbage); r != Applied {
		t.Errorf("garbage = %v, want Applied", r)
	}
	if !p.Inventory().Empty() {
		t.Error("garbage should empty the inventory")
	}
	if r := k.Interact(core.Player1); r != RejectedIneligible {
		t.Errorf("garbage with empty hands = %v, want RejectedIneligible", r)
	}
}

func TestChopLocksAndReleases(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)

	use(t, k, core.Player1, st.tiles[VeggieA])
	if r := use(t, k, core.Player1, st.board1); r != Applied {
		t.Fatalf("chop = %v, want Applied", r)
	}
	if !p.Locked || !st.board1.Board.Busy() || !p.Inventory().Empty() {
		t.Fatalf("after chop: locked=%v busy=%v inv=%v", p.Locked, st.board1.Board.Busy(), p.Inventory().Items())
	}
	if r := k.Move(core.Player1, core.Vec2{Y: 1}); r != RejectedBusy {
		t.Errorf("Move while chopping = %v, want RejectedBusy", r)
	}
	if r := k.Interact(core.Player1); r != RejectedBusy {
		t.Errorf("Interact while chopping = %v, want RejectedBusy", r)
	}

	k.Step(DefaultChopDelay, idle())
	if p.Locked || st.board1.Board.Busy() {
		t.Fatalf("after delay: locked=%v busy=%v", p.Locked, st.board1.Board.Busy())
	}

	if r := k.Interact(core.Player1); r != Applied {
		t.Fatalf("collect = %v, want Applied", r)
	}
	want := []Veggie{NewVeggie(VeggieA).Chopped()}
	if diff := cmp.Diff(want, p.Inventory().Items()); diff != "" {
		t.Errorf("collected salad mismatch (-want +got):\n%s", diff)
	}
	if st.board1.Board.IsSaladAvailable() {
		t.Error("board should be empty after collection")
	}
}

func TestStationOwnership(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())

	use(t, k, core.Player2, st.tiles[VeggieA])
	if r := use(t, k, core.Player2, st.board1); r != RejectedIneligible {
		t.Errorf("Player2 at Player1's board = %v, want RejectedIneligible", r)
	}
	if r := use(t, k, core.Player2, st.plate1); r != RejectedIneligible {
		t.Errorf("Player2 at Player1's plate = %v, want RejectedIneligible", r)
	}
	p2, _ := k.Player(core.Player2)
	if p2.Inventory().Len() != 1 {
		t.Error("rejected interaction should keep the inventory")
	}
}

func TestPlateRoundTrip(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)

	use(t, k, core.Player1, st.tiles[VeggieD])
	if r := use(t, k, core.Player1, st.plate1); r != Applied {
		t.Fatalf("place = %v, want Applied", r)
	}
	if !p.Inventory().Empty() || !st.plate1.Plate.IsVeggieAvailable() {
		t.Fatal("veggie should move onto the plate")
	}

	use(t, k, core.Player1, st.tiles[VeggieE])
	use(t, k, core.Player1, st.tiles[VeggieF])
	if r := use(t, k, core.Player1, st.plate1); r != RejectedBusy {
		t.Errorf("full hands at occupied plate = %v, want RejectedBusy", r)
	}

	use(t, k, core.Player1, st.garbage)
	if r := use(t, k, core.Player1, st.plate1); r != Applied {
		t.Fatalf("take = %v, want Applied", r)
	}
	first, _ := p.Inventory().First()
	if first.Type != VeggieD {
		t.Errorf("took %v, want D", first)
	}
}

func TestServeWrongOrderClearsInventory(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)

	use(t, k, core.Player1, st.tiles[VeggieA])
	if r := use(t, k, core.Player1, st.seat0); r != Applied {
		t.Fatalf("serve = %v, want Applied", r)
	}
	if !p.Inventory().Empty() {
		t.Error("serving should clear the inventory")
	}
	c := k.Seats().Occupant(0)
	if c == nil || !c.Angry() {
		t.Fatal("raw veggie should anger the seated customer")
	}
}

func TestServeEmptySeatDiscardsInventory(t *testing.T) {
	k, _ := newTestKitchen(t, DefaultSettings())
	seat4 := k.AddSeatTile(4, core.Vec2{X: 2, Y: 1.5})
	a := k.AddVeggieTile(VeggieA, core.Vec2{X: 5, Y: 0})

	use(t, k, core.Player1, a)
	if r := use(t, k, core.Player1, seat4); r != RejectedIneligible {
		t.Errorf("serve empty seat = %v, want RejectedIneligible", r)
	}
	p, _ := k.Player(core.Player1)
	if !p.Inventory().Empty() {
		t.Errorf("inventory len = %d, want 0", p.Inventory().Len())
	}
	for _, pl := range k.Players() {
		if pl.Score() != 0 {
			t.Errorf("%v score = %d, want 0", pl.ID(), pl.Score())
		}
	}
}

// cookAndServe chops the first seated customer's order and serves it.
func cookAndServe(t *testing.T, k *Kitchen, st testStations, player core.PlayerID, board *Interactable) {
	t.Helper()
	for _, v := range k.Seats().Occupant(0).Order() {
		use(t, k, player, st.tiles[v.Type])
		if r := use(t, k, player, board); r != Applied {
			t.Fatalf("chop %v = %v", v, r)
		}
		k.Step(DefaultChopDelay, idle())
	}
	if r := use(t, k, player, board); r != Applied {
		t.Fatalf("collect = %v", r)
	}
	if r := use(t, k, player, st.seat0); r != Applied {
		t.Fatalf("serve = %v", r)
	}
	k.Step(0.1, idle())
}

func TestServeCorrectOrderScoresAndGifts(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	k.Events()

	cookAndServe(t, k, st, core.Player1, st.board1)

	p1, _ := k.Player(core.Player1)
	p2, _ := k.Player(core.Player2)
	if p1.Score() != DefaultOrderScore || p2.Score() != 0 {
		t.Errorf("scores = %d, %d; want %d, 0", p1.Score(), p2.Score(), DefaultOrderScore)
	}
	if k.Seats().Occupant(0) != nil {
		t.Error("seat 0 should be vacated")
	}

	var spawned []PickupSpawnedEvent
	for _, e := range k.Events() {
		if ev, ok := e.(PickupSpawnedEvent); ok {
			spawned = append(spawned, ev)
		}
	}
	if len(spawned) != 1 || spawned[0].Pickup.Eligible != core.Player1 {
		t.Fatalf("spawned = %+v, want one pickup for Player1", spawned)
	}
	if len(k.Pickups()) != 1 {
		t.Errorf("Pickups = %d, want 1", len(k.Pickups()))
	}
}

func placePickup(k *Kitchen, kind PickupKind, player core.PlayerID) *Interactable {
	pk := Pickup{ID: k.newID(), Kind: kind, Eligible: player}
	k.pickups.pickups = append(k.pickups.pickups, pk)
	it := &Interactable{ID: pk.ID, Kind: KindPickup, Station: player}
	k.items = append(k.items, it)
	return it
}

func TestPickupEffects(t *testing.T) {
	settings := DefaultSettings()

	t.Run("scorer", func(t *testing.T) {
		k, _ := newTestKitchen(t, settings)
		it := placePickup(k, PickupScorer, core.Player1)
		if r := use(t, k, core.Player2, it); r != RejectedIneligible {
			t.Errorf("ineligible player = %v, want RejectedIneligible", r)
		}
		if r := use(t, k, core.Player1, it); r != Applied {
			t.Fatalf("consume = %v, want Applied", r)
		}
		p, _ := k.Player(core.Player1)
		if p.Score() != DefaultScorerBonus {
			t.Errorf("score = %d, want %d", p.Score(), DefaultScorerBonus)
		}
		if _, ok := k.Interactable(it.ID); ok {
			t.Error("consumed pickup should be removed")
		}
		if _, touching := p.Touching(); touching {
			t.Error("player should no longer touch the consumed pickup")
		}
	})

	t.Run("timer", func(t *testing.T) {
		k, _ := newTestKitchen(t, settings)
		it := placePickup(k, PickupTimer, core.Player2)
		use(t, k, core.Player2, it)
		p, _ := k.Player(core.Player2)
		if p.Time != DefaultPlayerTime+DefaultTimerBonus {
			t.Errorf("time = %v, want %v", p.Time, DefaultPlayerTime+DefaultTimerBonus)
		}
	})

	t.Run("speeder", func(t *testing.T) {
		k, _ := newTestKitchen(t, settings)
		it := placePickup(k, PickupSpeeder, core.Player1)
		use(t, k, core.Player1, it)
		p, _ := k.Player(core.Player1)
		if p.Step() != DefaultSpeederStep {
			t.Fatalf("step = %v, want %v", p.Step(), DefaultSpeederStep)
		}
		k.Step(DefaultSpeederDuration/2, idle())
		if p.Step() != DefaultSpeederStep {
			t.Fatalf("step reverted early: %v", p.Step())
		}
		k.Step(DefaultSpeederDuration/2, idle())
		if p.Step() != DefaultMoveStep {
			t.Errorf("step = %v after boost, want %v", p.Step(), DefaultMoveStep)
		}
	})
}

func TestMovementBounds(t *testing.T) {
	k, _ := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)

	if r := k.Move(core.Player1, core.Vec2{Y: -1}); r != RejectedIneligible {
		t.Errorf("move below bounds = %v, want RejectedIneligible", r)
	}
	if r := k.Move(core.Player1, core.Vec2{Y: 1}); r != Applied {
		t.Fatalf("move up = %v, want Applied", r)
	}
	if want := (core.Vec2{X: -2.5, Y: -2}); p.Pos() != want {
		t.Errorf("pos = %v, want %v", p.Pos(), want)
	}
}

func TestMoveSensesInteractables(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)

	// Five half steps right from (-2.5, -2.5) land on the bin at (0, -2.5).
	for i := 0; i < 5; i++ {
		k.Move(core.Player1, core.Vec2{X: 1})
	}
	id, touching := p.Touching()
	if !touching || id != st.garbage.ID {
		t.Fatalf("touching %v (%v), want garbage", id, touching)
	}
	k.Move(core.Player1, core.Vec2{Y: 1})
	k.Move(core.Player1, core.Vec2{Y: 1})
	if _, touching := p.Touching(); touching {
		t.Error("walking away should exit the bin")
	}
}

func TestExitOnlyClearsCurrent(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	k.Enter(core.Player1, st.garbage.ID)
	if r := k.Exit(core.Player1, st.plate1.ID); r != RejectedIneligible {
		t.Errorf("Exit other = %v, want RejectedIneligible", r)
	}
	p, _ := k.Player(core.Player1)
	if id, _ := p.Touching(); id != st.garbage.ID {
		t.Error("stale exit should not clear the current interactable")
	}
	if r := k.Exit(core.Player1, st.garbage.ID); r != Applied {
		t.Errorf("Exit current = %v, want Applied", r)
	}
}

func TestTimeoutPenaltyBroadcast(t *testing.T) {
	settings := DefaultSettings()
	settings.SmallOrderTime = 2
	settings.BigOrderTime = 2
	k, _ := newTestKitchen(t, settings)

	k.Step(1, idle())
	k.Step(1, idle())

	for _, p := range k.Players() {
		if p.Score() != -DefaultOrderScore {
			t.Errorf("%v score = %d, want %d", p.ID(), p.Score(), -DefaultOrderScore)
		}
	}
}

type recorded struct {
	name  string
	score int
}

type fakeRecorder struct {
	calls []recorded
}

func (f *fakeRecorder) RecordScore(name string, score int) error {
	f.calls = append(f.calls, recorded{name, score})
	return nil
}

func TestRoundEnd(t *testing.T) {
	tests := []struct {
		name       string
		scores     [2]int
		wantWinner core.PlayerID
		wantCalls  []recorded
	}{
		{"nobody scored", [2]int{0, 0}, core.PlayerNone, nil},
		{"player2 wins", [2]int{5, 10}, core.Player2, []recorded{{"Player2", 10}}},
		{"tie goes to player1", [2]int{10, 10}, core.Player1, []recorded{{"Player1", 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			settings.PlayerTime = 1
			rec := &fakeRecorder{}
			k := New(settings, 7, []core.PlayerID{core.Player1, core.Player2}, WithRecorder(rec))
			for i, p := range k.Players() {
				p.AddScore(tt.scores[i])
			}

			k.Step(0.5, idle())
			if k.Over() {
				t.Fatal("round ended early")
			}
			k.Step(0.5, idle())
			res, over := k.Result()
			if !over {
				t.Fatal("round should be over")
			}
			if res.Winner != tt.wantWinner {
				t.Errorf("winner = %v, want %v", res.Winner, tt.wantWinner)
			}
			if diff := cmp.Diff(tt.wantCalls, rec.calls, cmp.AllowUnexported(recorded{})); diff != "" {
				t.Errorf("recorded mismatch (-want +got):\n%s", diff)
			}
			if k.Seats().Occupied() != 0 {
				t.Error("seats should be flushed")
			}
		})
	}
}

func TestSoloRound(t *testing.T) {
	k := New(DefaultSettings(), 1, []core.PlayerID{core.Player1})
	if len(k.Players()) != 1 {
		t.Fatalf("players = %d, want 1", len(k.Players()))
	}
	if _, ok := k.Player(core.Player2); ok {
		t.Error("solo round should not have Player2")
	}
	if k.Seats().Occupied() != 1 {
		t.Errorf("a customer should be seated at start, got %d", k.Seats().Occupied())
	}
}

type roundTrace struct {
	Elapsed   float64
	Scores    []int
	Positions []core.Vec2
	Orders    [][]Veggie
	Timer     float64
}

func trace(k *Kitchen) roundTrace {
	var tr roundTrace
	tr.Elapsed = k.Elapsed()
	tr.Timer = k.CustomerTimer()
	for _, p := range k.Players() {
		tr.Scores = append(tr.Scores, p.Score())
		tr.Positions = append(tr.Positions, p.Pos())
	}
	for i := 0; i < k.Seats().Count(); i++ {
		if c := k.Seats().Occupant(i); c != nil {
			tr.Orders = append(tr.Orders, c.Order())
		} else {
			tr.Orders = append(tr.Orders, nil)
		}
	}
	return tr
}

func TestDeterminism(t *testing.T) {
	run := func() roundTrace {
		k := New(DefaultSettings(), 12345, []core.PlayerID{core.Player1, core.Player2})
		for i := 0; i < 3000; i++ {
			in := core.NewMultiInputFrame()
			switch i % 40 {
			case 5:
				in.Set(core.Player1, core.ActionUp)
			case 10:
				in.Set(core.Player2, core.ActionLeft)
			case 20:
				in.Set(core.Player1, core.ActionDown)
			case 30:
				in.Set(core.Player2, core.ActionRight)
			}
			k.Step(1.0/60.0, in)
		}
		return trace(k)
	}

	first, second := run(), run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed diverged (-first +second):\n%s", diff)
	}
}

// pickupSensor sees any pickup from anywhere.
type pickupSensor struct{}

func (pickupSensor) Overlap(_ core.Vec2, candidates []*Interactable) (EntityID, bool) {
	for _, it := range candidates {
		if it.Kind == KindPickup {
			return it.ID, true
		}
	}
	return 0, false
}

func TestSpawnedPickupTouchesStandingPlayer(t *testing.T) {
	k := New(DefaultSettings(), 42, []core.PlayerID{core.Player1}, WithSensor(pickupSensor{}))
	p, _ := k.Player(core.Player1)

	pk := k.spawnPickup(core.Player1)
	id, touching := p.Touching()
	if !touching || id != pk.ID {
		t.Fatalf("touching %v (%v), want pickup %v", id, touching, pk.ID)
	}
	if r := k.Interact(core.Player1); r != Applied {
		t.Errorf("consume without moving = %v, want Applied", r)
	}
}

func TestConsumedPickupRevealsStation(t *testing.T) {
	k, st := newTestKitchen(t, DefaultSettings())
	p, _ := k.Player(core.Player1)
	for i := 0; i < 5; i++ {
		k.Move(core.Player1, core.Vec2{X: 1})
	}

	it := placePickup(k, PickupTimer, core.Player1)
	if r := use(t, k, core.Player1, it); r != Applied {
		t.Fatalf("consume = %v, want Applied", r)
	}
	id, touching := p.Touching()
	if !touching || id != st.garbage.ID {
		t.Errorf("touching %v (%v), want garbage", id, touching)
	}
}
