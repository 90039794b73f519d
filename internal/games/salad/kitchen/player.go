package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Player defaults.
const (
	DefaultPlayerTime = 60.0
	DefaultMoveStep   = 0.5
)

// Player is one chef: a round clock, a score and an inventory.
type Player struct {
	Character

	id       core.PlayerID
	entity   EntityID
	score    int
	inv      *Inventory
	pos      core.Vec2
	step     float64
	touching EntityID
	touched  bool
}

// NewPlayer creates an unlocked player at pos.
func NewPlayer(id core.PlayerID, entity EntityID, pos core.Vec2, time float64, capacity int, step float64) *Player {
	if step <= 0 {
		step = DefaultMoveStep
	}
	return &Player{
		Character: Character{Time: time},
		id:        id,
		entity:    entity,
		inv:       NewInventory(capacity),
		pos:       pos,
		step:      step,
	}
}

// ID returns which player this is.
func (p *Player) ID() core.PlayerID { return p.id }

// Entity returns the id the player's timers are keyed by.
func (p *Player) Entity() EntityID { return p.entity }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// Inventory returns the player's inventory.
func (p *Player) Inventory() *Inventory { return p.inv }

// Pos returns the player's position.
func (p *Player) Pos() core.Vec2 { return p.pos }

// Step returns the distance covered by one move.
func (p *Player) Step() float64 { return p.step }

// Touching returns the interactable the player is standing at.
func (p *Player) Touching() (EntityID, bool) { return p.touching, p.touched }

// AddScore changes the score by delta.
func (p *Player) AddScore(delta int) { p.score += delta }

// Move steps the player one unit in dir, scaled by the move step.
// Locked players and moves that would leave bounds are rejected.
func (p *Player) Move(dir core.Vec2, bounds core.Bounds) Result {
	if p.Locked {
		return RejectedBusy
	}
	next := p.pos.Add(dir.Scale(p.step))
	if !bounds.Contains(next) {
		return RejectedIneligible
	}
	p.pos = next
	return Applied
}

// TickTime runs down the round clock. At zero the player is locked for good.
func (p *Player) TickTime(dt float64) {
	if p.Finished {
		return
	}
	p.Time -= dt
	if p.Time <= 0 {
		p.Time = 0
		p.Locked = true
		p.Finished = true
	}
}

func (p *Player) setStep(step float64) { p.step = step }

func (p *Player) enter(id EntityID) {
	p.touching = id
	p.touched = true
}

func (p *Player) exit(id EntityID) {
	if p.touched && p.touching == id {
		p.touching = 0
		p.touched = false
	}
}
