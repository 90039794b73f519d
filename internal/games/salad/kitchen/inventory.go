package kitchen

// DefaultInventoryCapacity is how many veggies a player can carry.
const DefaultInventoryCapacity = 2

// Inventory is an ordered, capacity-bounded sequence of veggies.
// Its length never exceeds its capacity; rejected inserts change nothing.
type Inventory struct {
	items    []Veggie
	capacity int
}

// NewInventory creates an empty inventory. Non-positive capacity falls back
// to DefaultInventoryCapacity.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Inventory{
		items:    make([]Veggie, 0, capacity),
		capacity: capacity,
	}
}

// Capacity returns the maximum number of items.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Empty reports whether nothing is held.
func (inv *Inventory) Empty() bool {
	return len(inv.items) == 0
}

// Full reports whether no more items fit.
func (inv *Inventory) Full() bool {
	return len(inv.items) >= inv.capacity
}

// Items returns a copy of the held items in order.
func (inv *Inventory) Items() []Veggie {
	out := make([]Veggie, len(inv.items))
	copy(out, inv.items)
	return out
}

// First returns the oldest item.
func (inv *Inventory) First() (Veggie, bool) {
	if len(inv.items) == 0 {
		return Veggie{}, false
	}
	return inv.items[0], true
}

// Add appends v, or returns RejectedCapacity if the inventory is full.
func (inv *Inventory) Add(v Veggie) Result {
	if inv.Full() {
		return RejectedCapacity
	}
	inv.items = append(inv.items, v)
	return Applied
}

// Load appends all of vs, or none of them if they do not fit.
func (inv *Inventory) Load(vs []Veggie) Result {
	if len(inv.items)+len(vs) > inv.capacity {
		return RejectedCapacity
	}
	inv.items = append(inv.items, vs...)
	return Applied
}

// RemoveAt removes and returns the item at index i.
func (inv *Inventory) RemoveAt(i int) (Veggie, Result) {
	if i < 0 || i >= len(inv.items) {
		return Veggie{}, RejectedIneligible
	}
	v := inv.items[i]
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return v, Applied
}

// Clear empties the inventory and returns what was held.
func (inv *Inventory) Clear() []Veggie {
	out := inv.items
	inv.items = make([]Veggie, 0, inv.capacity)
	return out
}
