package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// InteractableKind tags what a player is standing at.
type InteractableKind int

const (
	KindChoppingBoard InteractableKind = iota
	KindPlate
	KindGarbage
	KindVeggies
	KindSeat
	KindPickup
)

// String returns the kind name.
func (k InteractableKind) String() string {
	switch k {
	case KindChoppingBoard:
		return "ChoppingBoard"
	case KindPlate:
		return "Plate"
	case KindGarbage:
		return "Garbage"
	case KindVeggies:
		return "Veggies"
	case KindSeat:
		return "Seat"
	case KindPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// Interactable is a station object a player can trigger an action against.
// Station is the ownership tag for boards and plates; PlayerNone means shared.
type Interactable struct {
	ID      EntityID
	Kind    InteractableKind
	Station core.PlayerID
	Veggie  VeggieType // Veggies tiles
	Seat    int        // Seat tiles
	Pos     core.Vec2
	Board   *ChoppingBoard
	Plate   *Plate
}

// OwnedBy reports whether the player may use this interactable.
func (it *Interactable) OwnedBy(p core.PlayerID) bool {
	return it.Station == core.PlayerNone || it.Station == p
}
