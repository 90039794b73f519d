package kitchen

// EntityID identifies anything in the kitchen that can own a timer or be
// touched by a player.
type EntityID uint64

// TimerKind labels what a scheduled timer is for.
type TimerKind int

const (
	TimerChopDone      TimerKind = iota // A chop finishes and the player is unlocked
	TimerCustomerGrace                  // A departed customer is removed
	TimerSpeederRevert                  // A speed boost wears off
)

// String returns the timer kind name.
func (k TimerKind) String() string {
	switch k {
	case TimerChopDone:
		return "ChopDone"
	case TimerCustomerGrace:
		return "CustomerGrace"
	case TimerSpeederRevert:
		return "SpeederRevert"
	default:
		return "Unknown"
	}
}

type timer struct {
	seq       uint64
	owner     EntityID
	kind      TimerKind
	remaining float64
	fire      func()
}

// Scheduler is a table of one-shot timers keyed by owning entity.
// It only moves when Advance is called, so everything stays on the tick.
type Scheduler struct {
	timers []*timer
	seq    uint64
}

// NewScheduler creates an empty timer table.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arms a timer that calls fire once delay seconds have been advanced.
func (s *Scheduler) Schedule(owner EntityID, kind TimerKind, delay float64, fire func()) {
	s.seq++
	s.timers = append(s.timers, &timer{
		seq:       s.seq,
		owner:     owner,
		kind:      kind,
		remaining: delay,
		fire:      fire,
	})
}

// Cancel drops every timer owned by the entity and returns how many were dropped.
func (s *Scheduler) Cancel(owner EntityID) int {
	return s.drop(func(t *timer) bool { return t.owner == owner })
}

// CancelKind drops the entity's timers of one kind.
func (s *Scheduler) CancelKind(owner EntityID, kind TimerKind) int {
	return s.drop(func(t *timer) bool { return t.owner == owner && t.kind == kind })
}

// Pending returns how many timers the entity owns.
func (s *Scheduler) Pending(owner EntityID) int {
	n := 0
	for _, t := range s.timers {
		if t.owner == owner {
			n++
		}
	}
	return n
}

// Remaining returns the time left on the entity's first timer of a kind.
func (s *Scheduler) Remaining(owner EntityID, kind TimerKind) (float64, bool) {
	for _, t := range s.timers {
		if t.owner == owner && t.kind == kind {
			return t.remaining, true
		}
	}
	return 0, false
}

// Len returns the number of armed timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance moves every timer forward by dt and fires the ones that are due,
// in the order they were scheduled. Timers armed by a firing callback start
// counting on the next Advance. Returns the number fired.
func (s *Scheduler) Advance(dt float64) int {
	var due []*timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept

	for _, t := range due {
		if t.fire != nil {
			t.fire()
		}
	}
	return len(due)
}

func (s *Scheduler) drop(match func(*timer) bool) int {
	kept := s.timers[:0]
	dropped := 0
	for _, t := range s.timers {
		if match(t) {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
	return dropped
}
