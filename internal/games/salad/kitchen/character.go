package kitchen

// Character is the time and lock state shared by players and customers.
// For a player Time is the round clock; for a customer it is patience.
type Character struct {
	Time     float64
	Locked   bool
	Finished bool
}

// Timed is anything with a clock advanced once per tick.
type Timed interface {
	TickTime(dt float64)
	IsFinished() bool
}

var (
	_ Timed = (*Player)(nil)
	_ Timed = (*Customer)(nil)
)

// IsFinished reports whether the character's clock has run out or it left.
func (c *Character) IsFinished() bool {
	return c.Finished
}
