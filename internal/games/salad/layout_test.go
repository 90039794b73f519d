package salad

import (
	"testing"

	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad/kitchen"
)

func TestCellMapping(t *testing.T) {
	tests := []struct {
		pos  core.Vec2
		want Cell
	}{
		{core.Vec2{X: -6, Y: 2}, Cell{Col: 0, Row: 0}},
		{core.Vec2{X: 6, Y: -3}, Cell{Col: gridCols - 1, Row: gridRows - 1}},
		{core.Vec2{X: -2.5, Y: -2.5}, Cell{Col: 7, Row: 9}},
		{core.Vec2{X: 0, Y: 0}, Cell{Col: 12, Row: 4}},
	}
	for _, tt := range tests {
		if got := CellOf(tt.pos); got != tt.want {
			t.Errorf("CellOf(%v) = %v, want %v", tt.pos, got, tt.want)
		}
		if got := WorldOf(tt.want); got != tt.pos {
			t.Errorf("WorldOf(%v) = %v, want %v", tt.want, got, tt.pos)
		}
	}
}

// Every station must sit off the floor but next to a walkable cell.
func TestStationsAreReachable(t *testing.T) {
	k := kitchen.New(kitchen.DefaultSettings(), 1, []core.PlayerID{core.Player1, core.Player2})
	buildLayout(k, []core.PlayerID{core.Player1, core.Player2})
	bounds := k.Settings().Bounds

	neighbours := []Cell{{Col: 1}, {Col: -1}, {Row: 1}, {Row: -1}}
	for _, it := range k.Interactables() {
		if bounds.Contains(it.Pos) {
			t.Errorf("%s at %v is on the floor", it.Kind, it.Pos)
		}
		c := CellOf(it.Pos)
		reachable := false
		for _, n := range neighbours {
			if bounds.Contains(WorldOf(Cell{Col: c.Col + n.Col, Row: c.Row + n.Row})) {
				reachable = true
			}
		}
		if !reachable {
			t.Errorf("%s at %v has no walkable neighbour", it.Kind, it.Pos)
		}
	}
}

func TestGridSensor(t *testing.T) {
	k := kitchen.New(kitchen.DefaultSettings(), 1, []core.PlayerID{core.Player1, core.Player2})
	buildLayout(k, []core.PlayerID{core.Player1, core.Player2})

	find := func(match func(*kitchen.Interactable) bool) kitchen.EntityID {
		for _, it := range k.Interactables() {
			if match(it) {
				return it.ID
			}
		}
		t.Fatal("interactable not found")
		return 0
	}
	board1 := find(func(it *kitchen.Interactable) bool {
		return it.Kind == kitchen.KindChoppingBoard && it.Station == core.Player1
	})
	plate2 := find(func(it *kitchen.Interactable) bool {
		return it.Kind == kitchen.KindPlate && it.Station == core.Player2
	})
	seat2 := find(func(it *kitchen.Interactable) bool {
		return it.Kind == kitchen.KindSeat && it.Seat == 2
	})
	bin := find(func(it *kitchen.Interactable) bool { return it.Kind == kitchen.KindGarbage })

	tests := []struct {
		name  string
		pos   core.Vec2
		want  kitchen.EntityID
		found bool
	}{
		{"board below", core.Vec2{X: -4.5, Y: -2.5}, board1, true},
		{"between board and plate", core.Vec2{X: -4, Y: -2.5}, 0, false},
		{"plate below", core.Vec2{X: 3.5, Y: -2.5}, plate2, true},
		{"seat above", core.Vec2{X: 0, Y: 1.5}, seat2, true},
		{"bin below", core.Vec2{X: 0, Y: -2.5}, bin, true},
		{"middle of the floor", core.Vec2{X: 0, Y: 0}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := gridSensor{}.Overlap(tt.pos, k.Interactables())
			if found != tt.found || got != tt.want {
				t.Errorf("Overlap(%v) = %d, %v; want %d, %v", tt.pos, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestSoloLayoutHasOneStation(t *testing.T) {
	k := kitchen.New(kitchen.DefaultSettings(), 1, []core.PlayerID{core.Player1})
	buildLayout(k, []core.PlayerID{core.Player1})

	for _, it := range k.Interactables() {
		if it.Station == core.Player2 {
			t.Errorf("solo kitchen has a Player2 %s", it.Kind)
		}
	}
}
