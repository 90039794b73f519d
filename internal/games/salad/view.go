package salad

import (
	"strings"

	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad/kitchen"
)

// Flash durations in ticks.
const (
	moodTicks  = 90
	scoreTicks = 30
)

// view collects presenter notifications for the renderer.
type view struct {
	moods      map[int]kitchen.Mood
	moodFlash  map[int]int
	carried    map[core.PlayerID]string
	scoreFlash map[core.PlayerID]int
}

func newView() *view {
	return &view{
		moods:      make(map[int]kitchen.Mood),
		moodFlash:  make(map[int]int),
		carried:    make(map[core.PlayerID]string),
		scoreFlash: make(map[core.PlayerID]int),
	}
}

// InventoryChanged implements kitchen.Presenter.
func (v *view) InventoryChanged(player core.PlayerID, items []kitchen.Veggie) {
	v.carried[player] = inventoryText(items)
}

// ScoreChanged implements kitchen.Presenter.
func (v *view) ScoreChanged(player core.PlayerID, _ int) {
	v.scoreFlash[player] = scoreTicks
}

// CustomerMood implements kitchen.Presenter.
func (v *view) CustomerMood(seat int, mood kitchen.Mood) {
	v.moods[seat] = mood
	switch mood {
	case kitchen.MoodHappy, kitchen.MoodUnhappy:
		v.moodFlash[seat] = moodTicks
	default:
		delete(v.moodFlash, seat)
	}
}

// departed returns the mood of the customer that just left a seat.
func (v *view) departed(seat int) (kitchen.Mood, bool) {
	if v.moodFlash[seat] <= 0 {
		return 0, false
	}
	return v.moods[seat], true
}

func (v *view) flashing(player core.PlayerID) bool {
	return v.scoreFlash[player] > 0
}

// step ages the flashes by one tick.
func (v *view) step() {
	for seat, n := range v.moodFlash {
		if n <= 1 {
			delete(v.moodFlash, seat)
			continue
		}
		v.moodFlash[seat] = n - 1
	}
	for p, n := range v.scoreFlash {
		if n <= 1 {
			delete(v.scoreFlash, p)
			continue
		}
		v.scoreFlash[p] = n - 1
	}
}

// inventoryText renders carried veggies as "[a][B]", "[empty]" for none.
func inventoryText(items []kitchen.Veggie) string {
	if len(items) == 0 {
		return "[empty]"
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString("[" + it.String() + "]")
	}
	return b.String()
}

// orderText renders an order by veggie type, e.g. "AB".
func orderText(order []kitchen.Veggie) string {
	var b strings.Builder
	for _, v := range order {
		b.WriteString(v.Type.String())
	}
	return b.String()
}
