package salad

import (
	"math"

	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad/kitchen"
)

// Grid geometry. One grid cell is half a world unit; the grid spans the
// walkable floor plus a ring of counters around it.
const (
	cellSize  = 0.5
	gridMinX  = -6.0
	gridMaxY  = 2.0
	gridCols  = 25 // x from -6.0 to 6.0
	gridRows  = 11 // y from 2.0 down to -3.0
	cellWidth = 3  // Screen columns per grid cell
)

// Cell is a position on the kitchen grid. Row 0 is the top counter.
type Cell struct {
	Col, Row int
}

// CellOf maps a world position to its grid cell.
func CellOf(p core.Vec2) Cell {
	return Cell{
		Col: int(math.Round((p.X - gridMinX) / cellSize)),
		Row: int(math.Round((gridMaxY - p.Y) / cellSize)),
	}
}

// WorldOf maps a grid cell back to the world position at its center.
func WorldOf(c Cell) core.Vec2 {
	return core.Vec2{
		X: gridMinX + float64(c.Col)*cellSize,
		Y: gridMaxY - float64(c.Row)*cellSize,
	}
}

// Station positions. Counters sit one cell outside the floor so a player
// on the floor edge is next to them.
var (
	seatColumns = []float64{-4, -2, 0, 2, 4}

	veggieSpots = map[kitchen.VeggieType]core.Vec2{
		kitchen.VeggieA: {X: -6, Y: 1},
		kitchen.VeggieB: {X: -6, Y: 0},
		kitchen.VeggieC: {X: -6, Y: -1},
		kitchen.VeggieD: {X: 6, Y: 1},
		kitchen.VeggieE: {X: 6, Y: 0},
		kitchen.VeggieF: {X: 6, Y: -1},
	}

	boardSpots = map[core.PlayerID]core.Vec2{
		core.Player1: {X: -4.5, Y: -3},
		core.Player2: {X: 4.5, Y: -3},
	}

	plateSpots = map[core.PlayerID]core.Vec2{
		core.Player1: {X: -3.5, Y: -3},
		core.Player2: {X: 3.5, Y: -3},
	}

	garbageSpot = core.Vec2{X: 0, Y: -3}
)

// buildLayout places every station of the kitchen. Boards and plates are
// only built for the players taking part.
func buildLayout(k *kitchen.Kitchen, players []core.PlayerID) {
	for i := 0; i < k.Seats().Count() && i < len(seatColumns); i++ {
		k.AddSeatTile(i, core.Vec2{X: seatColumns[i], Y: gridMaxY})
	}
	for _, vt := range kitchen.AllVeggieTypes {
		k.AddVeggieTile(vt, veggieSpots[vt])
	}
	for _, p := range players {
		k.AddBoard(p, boardSpots[p])
		k.AddPlate(p, plateSpots[p])
	}
	k.AddGarbage(garbageSpot)
}

// gridSensor is the overlap detector: a player overlaps an interactable on
// its own cell or on one of the four neighbouring cells. Its own cell wins,
// then the first candidate in station order.
type gridSensor struct{}

func (gridSensor) Overlap(pos core.Vec2, candidates []*kitchen.Interactable) (kitchen.EntityID, bool) {
	at := CellOf(pos)
	var (
		best  kitchen.EntityID
		found bool
		dist  int
	)
	for _, it := range candidates {
		c := CellOf(it.Pos)
		d := core.Abs(c.Col-at.Col) + core.Abs(c.Row-at.Row)
		if d > 1 {
			continue
		}
		if !found || d < dist {
			best, dist, found = it.ID, d, true
		}
	}
	return best, found
}
