package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Event is something that happened during a tick, queued for whoever polls
// the kitchen.
type Event interface {
	kitchenEvent()
}

// CustomerLeftEvent is raised once per departing customer, served or not.
// Server is PlayerNone when nobody served it.
type CustomerLeftEvent struct {
	Seat      int
	Customer  EntityID
	Satisfied bool
	Angry     bool
	Server    core.PlayerID
}

func (CustomerLeftEvent) kitchenEvent() {}

// GiftEvent is raised when a customer left quickly enough to reward its server.
type GiftEvent struct {
	Player   core.PlayerID
	Customer EntityID
}

func (GiftEvent) kitchenEvent() {}

// ScoreEvent carries a score change. Player is PlayerNone when it applies to
// every player.
type ScoreEvent struct {
	Player core.PlayerID
	Delta  int
}

func (ScoreEvent) kitchenEvent() {}

// CustomerArrivedEvent is raised when a new customer takes a seat.
type CustomerArrivedEvent struct {
	Seat     int
	Customer EntityID
	Order    []Veggie
}

func (CustomerArrivedEvent) kitchenEvent() {}

// CustomerAngeredEvent is raised when a wrong order is served.
type CustomerAngeredEvent struct {
	Seat   int
	Server core.PlayerID
}

func (CustomerAngeredEvent) kitchenEvent() {}

// PickupSpawnedEvent is raised when a gift pickup appears on the floor.
type PickupSpawnedEvent struct {
	Pickup Pickup
}

func (PickupSpawnedEvent) kitchenEvent() {}

// PickupConsumedEvent is raised when the eligible player uses a pickup.
type PickupConsumedEvent struct {
	Pickup Pickup
	Player core.PlayerID
}

func (PickupConsumedEvent) kitchenEvent() {}

// RoundOverEvent is raised once, when every player has run out of time.
type RoundOverEvent struct {
	Result RoundResult
}

func (RoundOverEvent) kitchenEvent() {}
