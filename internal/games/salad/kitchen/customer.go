package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Customer defaults.
const (
	DefaultPunishment    = 1.5
	DefaultGiftThreshold = 0.70
)

// CustomerRules tunes how a customer reacts to service.
type CustomerRules struct {
	Punishment    float64 // Patience drain multiplier once angry
	GiftThreshold float64 // Fraction of patience left needed for a gift
}

// DefaultCustomerRules returns the stock customer tuning.
func DefaultCustomerRules() CustomerRules {
	return CustomerRules{Punishment: DefaultPunishment, GiftThreshold: DefaultGiftThreshold}
}

// ServeOutcome is what a customer made of a served order.
type ServeOutcome int

const (
	ServeRejected  ServeOutcome = iota // Customer already left, nothing happened
	ServeAngered                       // Wrong order; customer stays and drains faster
	ServeSatisfied                     // Right order; customer leaves
)

// String returns the outcome name.
func (o ServeOutcome) String() string {
	switch o {
	case ServeRejected:
		return "Rejected"
	case ServeAngered:
		return "Angered"
	case ServeSatisfied:
		return "Satisfied"
	default:
		return "Unknown"
	}
}

// Departure summarises how a customer left.
type Departure struct {
	Satisfied bool
	Angry     bool
	Server    core.PlayerID
	Gift      bool
}

// Customer waits at a seat for one specific salad.
type Customer struct {
	Character

	id           EntityID
	order        []Veggie
	originalTime float64
	speed        float64
	rules        CustomerRules

	angry     bool
	satisfied bool
	server    core.PlayerID

	departure *Departure
}

// NewCustomer creates a waiting customer. The order is stored by type only.
func NewCustomer(id EntityID, order []Veggie, wait float64, rules CustomerRules) *Customer {
	want := make([]Veggie, len(order))
	for i, v := range order {
		want[i] = NewVeggie(v.Type)
	}
	if rules.Punishment <= 0 {
		rules.Punishment = DefaultPunishment
	}
	return &Customer{
		Character:    Character{Time: wait},
		id:           id,
		order:        want,
		originalTime: wait,
		speed:        1.0,
		rules:        rules,
	}
}

// ID returns the customer's entity id.
func (c *Customer) ID() EntityID { return c.id }

// Order returns a copy of the wanted salad.
func (c *Customer) Order() []Veggie {
	out := make([]Veggie, len(c.order))
	copy(out, c.order)
	return out
}

// OriginalTime returns the patience the customer arrived with.
func (c *Customer) OriginalTime() float64 { return c.originalTime }

// Angry reports whether a wrong order has been served.
func (c *Customer) Angry() bool { return c.angry }

// Satisfied reports whether the customer left happy.
func (c *Customer) Satisfied() bool { return c.satisfied }

// Server returns the last player who served this customer.
func (c *Customer) Server() core.PlayerID { return c.server }

// Speed returns the current patience drain multiplier.
func (c *Customer) Speed() float64 { return c.speed }

// TimeRatio returns the fraction of patience left.
func (c *Customer) TimeRatio() float64 {
	if c.originalTime <= 0 {
		return 0
	}
	return c.Time / c.originalTime
}

// TickTime drains patience. A customer whose patience runs out leaves unhappy.
func (c *Customer) TickTime(dt float64) {
	if c.Finished {
		return
	}
	c.Time -= dt * c.speed
	if c.Time <= 0 {
		c.Time = 0
		c.leave(false)
	}
}

// ServeOrder checks a served salad against the wanted one. Every item must
// be ready and of the wanted type, in order, and the lengths must match.
func (c *Customer) ServeOrder(served []Veggie, server core.PlayerID) ServeOutcome {
	if c.Finished {
		return ServeRejected
	}
	c.server = server
	if !c.matches(served) {
		c.angry = true
		c.speed = c.rules.Punishment
		return ServeAngered
	}
	c.leave(true)
	return ServeSatisfied
}

// TakeDeparture returns the departure once, after the customer has finished.
func (c *Customer) TakeDeparture() (Departure, bool) {
	if c.departure == nil {
		return Departure{}, false
	}
	d := *c.departure
	c.departure = nil
	return d, true
}

func (c *Customer) matches(served []Veggie) bool {
	if len(served) != len(c.order) {
		return false
	}
	for i, v := range served {
		if !v.Ready || v.Type != c.order[i].Type {
			return false
		}
	}
	return true
}

func (c *Customer) leave(served bool) {
	c.Finished = true
	c.Locked = true
	c.satisfied = served && c.Time > 0
	gift := c.satisfied && c.server != core.PlayerNone && c.TimeRatio() >= c.rules.GiftThreshold
	c.departure = &Departure{
		Satisfied: c.satisfied,
		Angry:     c.angry,
		Server:    c.server,
		Gift:      gift,
	}
}
