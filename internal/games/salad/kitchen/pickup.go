package kitchen

import (
	"math/rand"

	"github.com/vovakirdan/salad-chef/internal/core"
)

// PickupKind enumerates the gift effects.
type PickupKind int

const (
	PickupSpeeder PickupKind = iota // Faster movement for a while
	PickupTimer                     // Extra round time
	PickupScorer                    // Extra score
)

var allPickupKinds = []PickupKind{PickupSpeeder, PickupTimer, PickupScorer}

// String returns the pickup kind name.
func (k PickupKind) String() string {
	switch k {
	case PickupSpeeder:
		return "Speeder"
	case PickupTimer:
		return "Timer"
	case PickupScorer:
		return "Scorer"
	default:
		return "Unknown"
	}
}

// Pickup is a gift lying on the floor. Only the eligible player can use it.
type Pickup struct {
	ID       EntityID
	Kind     PickupKind
	Eligible core.PlayerID
	Pos      core.Vec2
}

// Pickup placement grid.
var (
	pickupColumns = []float64{-4.5, -3.5, -2.5, -1.5, -0.5, 0.5, 1.5, 2.5, 3.5}
	pickupRows    = []float64{-1.5, -0.5}
)

// PickupManager spawns and tracks gift pickups.
type PickupManager struct {
	rng     *rand.Rand
	nextID  func() EntityID
	pickups []Pickup
}

// NewPickupManager creates a manager drawing kinds and spots from rng.
func NewPickupManager(rng *rand.Rand, nextID func() EntityID) *PickupManager {
	return &PickupManager{rng: rng, nextID: nextID}
}

// Grant spawns a random pickup for player at a random spot.
func (m *PickupManager) Grant(player core.PlayerID) Pickup {
	p := Pickup{
		ID:       m.nextID(),
		Kind:     allPickupKinds[m.rng.Intn(len(allPickupKinds))],
		Eligible: player,
		Pos: core.Vec2{
			X: pickupColumns[m.rng.Intn(len(pickupColumns))],
			Y: pickupRows[m.rng.Intn(len(pickupRows))],
		},
	}
	m.pickups = append(m.pickups, p)
	return p
}

// Get returns the live pickup with the given id.
func (m *PickupManager) Get(id EntityID) (Pickup, bool) {
	for _, p := range m.pickups {
		if p.ID == id {
			return p, true
		}
	}
	return Pickup{}, false
}

// Consume removes the pickup if player is eligible for it.
func (m *PickupManager) Consume(id EntityID, player core.PlayerID) (Pickup, Result) {
	for i, p := range m.pickups {
		if p.ID != id {
			continue
		}
		if p.Eligible != player {
			return p, RejectedIneligible
		}
		m.pickups = append(m.pickups[:i], m.pickups[i+1:]...)
		return p, Applied
	}
	return Pickup{}, RejectedIneligible
}

// All returns a copy of the live pickups.
func (m *PickupManager) All() []Pickup {
	out := make([]Pickup, len(m.pickups))
	copy(out, m.pickups)
	return out
}

// Clear removes every pickup.
func (m *PickupManager) Clear() {
	m.pickups = nil
}
