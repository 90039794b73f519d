package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Plate is a one-veggie buffer next to a chopping board.
type Plate struct {
	owner  core.PlayerID
	veggie Veggie
	has    bool
}

// NewPlate creates an empty plate for a station.
func NewPlate(owner core.PlayerID) *Plate {
	return &Plate{owner: owner}
}

// Owner returns the station the plate belongs to.
func (p *Plate) Owner() core.PlayerID {
	return p.owner
}

// IsVeggieAvailable reports whether the plate holds a veggie.
func (p *Plate) IsVeggieAvailable() bool {
	return p.has
}

// Current returns the held veggie without removing it.
func (p *Plate) Current() (Veggie, bool) {
	return p.veggie, p.has
}

// PlaceVeggie puts v on an empty plate.
func (p *Plate) PlaceVeggie(v Veggie) Result {
	if p.has {
		return RejectedBusy
	}
	p.veggie = v
	p.has = true
	return Applied
}

// RemoveVeggie takes the held veggie off the plate.
// On an empty plate it returns the zero Veggie and RejectedIneligible.
func (p *Plate) RemoveVeggie() (Veggie, Result) {
	if !p.has {
		return Veggie{}, RejectedIneligible
	}
	v := p.veggie
	p.veggie = Veggie{}
	p.has = false
	return v, Applied
}
