package kitchen

// VeggieType enumerates the vegetables on offer. VeggieNone is a sentinel.
type VeggieType int

const (
	VeggieNone VeggieType = iota
	VeggieA
	VeggieB
	VeggieC
	VeggieD
	VeggieE
	VeggieF
)

// AllVeggieTypes lists every real veggie type, in tile order.
var AllVeggieTypes = []VeggieType{VeggieA, VeggieB, VeggieC, VeggieD, VeggieE, VeggieF}

// String returns the single-letter label of the veggie.
func (t VeggieType) String() string {
	switch t {
	case VeggieA:
		return "A"
	case VeggieB:
		return "B"
	case VeggieC:
		return "C"
	case VeggieD:
		return "D"
	case VeggieE:
		return "E"
	case VeggieF:
		return "F"
	default:
		return "None"
	}
}

// Veggie is a value held by exactly one container at a time.
// Ready is set once, when chopping completes.
type Veggie struct {
	Type  VeggieType
	Ready bool
}

// NewVeggie returns a raw veggie of the given type.
func NewVeggie(t VeggieType) Veggie {
	return Veggie{Type: t}
}

// Chopped returns the ready version of v.
func (v Veggie) Chopped() Veggie {
	v.Ready = true
	return v
}

// String renders the veggie as its letter, lower case when still raw.
func (v Veggie) String() string {
	if v.Type == VeggieNone {
		return "-"
	}
	if v.Ready {
		return v.Type.String()
	}
	return string(rune(v.Type.String()[0]) + ('a' - 'A'))
}
