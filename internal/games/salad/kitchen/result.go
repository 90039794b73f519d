package kitchen

// Result is the outcome of a gated kitchen operation.
// A rejected operation leaves every piece of state untouched.
type Result int

const (
	Applied            Result = iota // The operation took effect
	RejectedBusy                     // The target (or the player) is occupied
	RejectedIneligible               // Wrong owner, wrong target or nothing to act on
	RejectedCapacity                 // A container has no room
)

// String returns a short name for logs and tests.
func (r Result) String() string {
	switch r {
	case Applied:
		return "Applied"
	case RejectedBusy:
		return "RejectedBusy"
	case RejectedIneligible:
		return "RejectedIneligible"
	case RejectedCapacity:
		return "RejectedCapacity"
	default:
		return "Unknown"
	}
}

// OK reports whether the operation was applied.
func (r Result) OK() bool {
	return r == Applied
}
