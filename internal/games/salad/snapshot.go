package salad

import "github.com/vovakirdan/salad-chef/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateRoundOver   GameStateType = "round_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// ChefSnapshot is one player's part of a snapshot.
type ChefSnapshot struct {
	Player   core.PlayerID
	X, Y     float64
	Score    int
	Time     float64
	Carrying string
	Locked   bool
}

// Snapshot captures the round for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Mode          string // "salad" or "salad_solo"
	Chefs         []ChefSnapshot
	Seats         []string // Order per seat, "" when empty
	Pickups       int
	CustomerTimer float64
	Winner        string
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.kitchen.Over():
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	}

	chefs := make([]ChefSnapshot, 0, len(g.kitchen.Players()))
	for _, p := range g.kitchen.Players() {
		pos := p.Pos()
		chefs = append(chefs, ChefSnapshot{
			Player:   p.ID(),
			X:        pos.X,
			Y:        pos.Y,
			Score:    p.Score(),
			Time:     p.Time,
			Carrying: inventoryText(p.Inventory().Items()),
			Locked:   p.Locked,
		})
	}

	seats := g.kitchen.Seats()
	orders := make([]string, seats.Count())
	for i := range orders {
		if c := seats.Occupant(i); c != nil {
			orders[i] = orderText(c.Order())
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          g.ID(),
		Chefs:         chefs,
		Seats:         orders,
		Pickups:       len(g.kitchen.Pickups()),
		CustomerTimer: g.kitchen.CustomerTimer(),
		Winner:        g.State().Winner,
		State:         state,
	}
}
