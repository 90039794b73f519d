package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// ChoppingBoard is a single-slot chopping resource belonging to one station.
//
// It has no clock of its own: ChopNextVeggie marks it busy and whoever owns
// the chop timer calls SetReadiedVeggie when the delay has elapsed.
type ChoppingBoard struct {
	owner      core.PlayerID
	ongoing    Veggie
	hasOngoing bool
	readied    []Veggie
	busy       bool
	capacity   int
}

// NewChoppingBoard creates an idle board for a station. capacity bounds the
// readied salad so it always fits back into the owner's inventory.
func NewChoppingBoard(owner core.PlayerID, capacity int) *ChoppingBoard {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &ChoppingBoard{owner: owner, capacity: capacity}
}

// Owner returns the station the board belongs to.
func (b *ChoppingBoard) Owner() core.PlayerID {
	return b.owner
}

// Busy reports whether a veggie is being chopped.
func (b *ChoppingBoard) Busy() bool {
	return b.busy
}

// Ongoing returns the veggie being chopped, if any.
func (b *ChoppingBoard) Ongoing() (Veggie, bool) {
	return b.ongoing, b.hasOngoing
}

// Readied returns a copy of the chopped veggies waiting for collection.
func (b *ChoppingBoard) Readied() []Veggie {
	out := make([]Veggie, len(b.readied))
	copy(out, b.readied)
	return out
}

// ChopNextVeggie starts chopping v.
func (b *ChoppingBoard) ChopNextVeggie(v Veggie) Result {
	if b.busy {
		return RejectedBusy
	}
	if len(b.readied) >= b.capacity {
		return RejectedCapacity
	}
	b.ongoing = v
	b.hasOngoing = true
	b.busy = true
	return Applied
}

// SetReadiedVeggie finishes the ongoing chop and frees the board.
func (b *ChoppingBoard) SetReadiedVeggie() Result {
	if !b.hasOngoing {
		return RejectedIneligible
	}
	b.readied = append(b.readied, b.ongoing.Chopped())
	b.ongoing = Veggie{}
	b.hasOngoing = false
	b.busy = false
	return Applied
}

// IsSaladAvailable reports whether any chopped veggie is waiting.
func (b *ChoppingBoard) IsSaladAvailable() bool {
	return len(b.readied) > 0
}

// GetReadiedSalad hands over every chopped veggie and empties the board.
// A veggie still being chopped is abandoned.
func (b *ChoppingBoard) GetReadiedSalad() []Veggie {
	salad := b.readied
	b.readied = nil
	b.ongoing = Veggie{}
	b.hasOngoing = false
	b.busy = false
	return salad
}
