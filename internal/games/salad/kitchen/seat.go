package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Seat defaults.
const (
	DefaultSeatCount  = 5
	DefaultOrderScore = 30
	DefaultGraceDelay = 1.0
)

// SeatManager maps customers onto a fixed row of seats and turns their
// departures into score events.
//
// A seat is vacated the moment its customer finishes. The customer lingers
// in the leaving list until its grace timer fires, so it can still be drawn.
type SeatManager struct {
	seats      []*Customer
	leaving    []*Customer
	orderScore int
	grace      float64
	sched      *Scheduler
	outbox     []Event
}

// NewSeatManager creates count empty seats. Grace timers are armed on sched.
func NewSeatManager(count, orderScore int, grace float64, sched *Scheduler) *SeatManager {
	if count <= 0 {
		count = DefaultSeatCount
	}
	return &SeatManager{
		seats:      make([]*Customer, count),
		orderScore: orderScore,
		grace:      grace,
		sched:      sched,
	}
}

// Count returns the number of seats.
func (m *SeatManager) Count() int {
	return len(m.seats)
}

// Occupant returns the customer at a seat, or nil.
func (m *SeatManager) Occupant(seat int) *Customer {
	if seat < 0 || seat >= len(m.seats) {
		return nil
	}
	return m.seats[seat]
}

// Occupied returns how many seats hold a customer.
func (m *SeatManager) Occupied() int {
	n := 0
	for _, c := range m.seats {
		if c != nil {
			n++
		}
	}
	return n
}

// Leaving returns customers that have finished but not yet gone.
func (m *SeatManager) Leaving() []*Customer {
	out := make([]*Customer, len(m.leaving))
	copy(out, m.leaving)
	return out
}

// IsASeatVacant reports whether at least one seat is free.
func (m *SeatManager) IsASeatVacant() bool {
	for _, c := range m.seats {
		if c == nil {
			return true
		}
	}
	return false
}

// AssignSeat seats the customer in the first free seat. With no free seat
// the customer is dropped and RejectedCapacity is returned.
func (m *SeatManager) AssignSeat(c *Customer) (int, Result) {
	for i, occupant := range m.seats {
		if occupant == nil {
			m.seats[i] = c
			m.emit(CustomerArrivedEvent{Seat: i, Customer: c.ID(), Order: c.Order()})
			return i, Applied
		}
	}
	return -1, RejectedCapacity
}

// Serve hands an order to the customer at seat.
func (m *SeatManager) Serve(seat int, order []Veggie, player core.PlayerID) (ServeOutcome, Result) {
	c := m.Occupant(seat)
	if c == nil {
		return ServeRejected, RejectedIneligible
	}
	outcome := c.ServeOrder(order, player)
	switch outcome {
	case ServeAngered:
		m.emit(CustomerAngeredEvent{Seat: seat, Server: player})
	case ServeSatisfied:
		m.settle(seat)
	}
	if outcome == ServeRejected {
		return outcome, RejectedIneligible
	}
	return outcome, Applied
}

// Tick drains every seated customer's patience and settles those who leave.
func (m *SeatManager) Tick(dt float64) {
	for i, c := range m.seats {
		if c == nil {
			continue
		}
		c.TickTime(dt)
		if c.IsFinished() {
			m.settle(i)
		}
	}
}

// FlushSeats removes every customer without scoring and returns them.
func (m *SeatManager) FlushSeats() []*Customer {
	var flushed []*Customer
	for i, c := range m.seats {
		if c == nil {
			continue
		}
		m.sched.Cancel(c.ID())
		flushed = append(flushed, c)
		m.seats[i] = nil
	}
	for _, c := range m.leaving {
		m.sched.Cancel(c.ID())
		flushed = append(flushed, c)
	}
	m.leaving = nil
	return flushed
}

// Drain returns and clears the queued events.
func (m *SeatManager) Drain() []Event {
	out := m.outbox
	m.outbox = nil
	return out
}

func (m *SeatManager) settle(seat int) {
	c := m.seats[seat]
	d, ok := c.TakeDeparture()
	if !ok {
		return
	}
	m.seats[seat] = nil
	m.leaving = append(m.leaving, c)
	m.sched.Schedule(c.ID(), TimerCustomerGrace, m.grace, func() { m.remove(c.ID()) })

	m.emit(CustomerLeftEvent{
		Seat:      seat,
		Customer:  c.ID(),
		Satisfied: d.Satisfied,
		Angry:     d.Angry,
		Server:    d.Server,
	})
	switch {
	case d.Satisfied:
		m.emit(ScoreEvent{Player: d.Server, Delta: m.orderScore})
	case d.Angry:
		m.emit(ScoreEvent{Player: d.Server, Delta: -2 * m.orderScore})
	default:
		m.emit(ScoreEvent{Player: core.PlayerNone, Delta: -m.orderScore})
	}
	if d.Gift {
		m.emit(GiftEvent{Player: d.Server, Customer: c.ID()})
	}
}

func (m *SeatManager) remove(id EntityID) {
	for i, c := range m.leaving {
		if c.ID() == id {
			m.leaving = append(m.leaving[:i], m.leaving[i+1:]...)
			return
		}
	}
}

func (m *SeatManager) emit(e Event) {
	m.outbox = append(m.outbox, e)
}
