package salad

import (
	"fmt"
	"math"

	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad/kitchen"
)

// Screen layout, top to bottom: HUD, separator, kitchen box, seat panel,
// inventories, status line, help line.
const (
	hudHeight  = 2
	kitchenW   = gridCols*cellWidth + 2
	kitchenH   = gridRows + 2
	panelRow   = hudHeight + kitchenH
	minScreenW = kitchenW
	minScreenH = panelRow + 4
)

// Render draws the current round.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.drawCenteredText(dst, "Terminal too small", dst.Height()/2-1)
		g.drawCenteredText(dst, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), dst.Height()/2+1)
		return
	}

	g.renderHUD(dst)

	offX := (dst.Width() - kitchenW) / 2
	dst.DrawBox(core.NewRect(offX, hudHeight, kitchenW, kitchenH))
	g.renderFloor(dst, offX)
	g.renderStations(dst, offX)
	g.renderPlayers(dst, offX)

	g.renderSeats(dst, offX)
	g.renderInventories(dst, offX)
	if g.status != "" {
		dst.DrawText(offX, panelRow+2, g.status)
	}
	help := "P1: WASD move, E use   P2: arrows move, 0 use   P pause   Q quit"
	if g.mode == ModeSolo {
		help = "WASD or arrows move, E or 0 use   P pause   Q quit"
	}
	dst.DrawTextColored(offX, panelRow+3, help, core.ColorGray)

	switch {
	case g.kitchen.Over():
		res, _ := g.kitchen.Result()
		line := "No winner"
		if name := res.WinnerName(); name != "" {
			line = fmt.Sprintf("%s wins with %d points", name, res.WinnerScore())
		}
		g.renderOverlay(dst, "Round over", line, "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	x := 1
	dst.DrawText(x, 0, g.Title())
	x += len(g.Title()) + 2
	for _, p := range g.kitchen.Players() {
		text := fmt.Sprintf("%s %4d pts %3ds", p.ID(), p.Score(), int(math.Ceil(p.Time)))
		c := core.PlayerColor(p.ID())
		if g.view.flashing(p.ID()) {
			c = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, 0, text, c)
		x += len(text) + 3
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// cellOrigin returns the screen position of a grid cell's first column.
func cellOrigin(offX int, c Cell) (int, int) {
	return offX + 1 + c.Col*cellWidth, hudHeight + 1 + c.Row
}

func (g *Game) drawCell(dst *core.Screen, offX int, pos core.Vec2, text string, color core.Color) {
	c := CellOf(pos)
	if c.Col < 0 || c.Col >= gridCols || c.Row < 0 || c.Row >= gridRows {
		return
	}
	x, y := cellOrigin(offX, c)
	dst.DrawTextColored(x, y, text, color)
}

// renderFloor dots every walkable cell.
func (g *Game) renderFloor(dst *core.Screen, offX int) {
	b := g.kitchen.Settings().Bounds
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if b.Contains(WorldOf(Cell{Col: col, Row: row})) {
				x, y := cellOrigin(offX, Cell{Col: col, Row: row})
				dst.SetColored(x+1, y, '.', core.ColorGray)
			}
		}
	}
}

// renderStations draws counters, seats and pickups.
func (g *Game) renderStations(dst *core.Screen, offX int) {
	for _, it := range g.kitchen.Interactables() {
		text, color := g.stationGlyph(it)
		g.drawCell(dst, offX, it.Pos, text, color)
	}
}

func (g *Game) stationGlyph(it *kitchen.Interactable) (string, core.Color) {
	switch it.Kind {
	case kitchen.KindVeggies:
		return "[" + it.Veggie.String() + "]", core.ColorYellow
	case kitchen.KindGarbage:
		return "[X]", core.ColorCounter
	case kitchen.KindChoppingBoard:
		switch {
		case it.Board.Busy():
			return "[~]", core.PlayerColor(it.Station)
		case it.Board.IsSaladAvailable():
			return "[*]", core.ColorReady
		default:
			return "[=]", core.PlayerColor(it.Station)
		}
	case kitchen.KindPlate:
		if v, ok := it.Plate.Current(); ok {
			return "(" + v.String() + ")", core.PlayerColor(it.Station)
		}
		return "( )", core.PlayerColor(it.Station)
	case kitchen.KindSeat:
		return g.seatGlyph(it.Seat)
	case kitchen.KindPickup:
		pk, _ := g.pickup(it.ID)
		return "<" + pickupLetter(pk.Kind) + ">", core.ColorPickup
	default:
		return "???", core.ColorDefault
	}
}

func (g *Game) seatGlyph(seat int) (string, core.Color) {
	if c := g.kitchen.Seats().Occupant(seat); c != nil {
		if c.Angry() {
			return ">:(", core.ColorAngry
		}
		return fmt.Sprintf("(%d)", seat+1), core.ColorWhite
	}
	if mood, ok := g.view.departed(seat); ok {
		if mood == kitchen.MoodHappy {
			return ":-)", core.ColorHappy
		}
		return ":-(", core.ColorAngry
	}
	return " _ ", core.ColorCounter
}

func (g *Game) pickup(id kitchen.EntityID) (kitchen.Pickup, bool) {
	for _, pk := range g.kitchen.Pickups() {
		if pk.ID == id {
			return pk, true
		}
	}
	return kitchen.Pickup{}, false
}

func pickupLetter(k kitchen.PickupKind) string {
	switch k {
	case kitchen.PickupSpeeder:
		return "S"
	case kitchen.PickupTimer:
		return "T"
	default:
		return "$"
	}
}

// renderPlayers draws the chefs on top of everything else.
func (g *Game) renderPlayers(dst *core.Screen, offX int) {
	for _, p := range g.kitchen.Players() {
		mark := '@'
		if p.Locked && !p.Finished {
			mark = '%'
		}
		text := fmt.Sprintf("%c%d", mark, int(p.ID()))
		if p.Finished {
			text = fmt.Sprintf("z%d", int(p.ID()))
		}
		g.drawCell(dst, offX, p.Pos(), text, core.PlayerColor(p.ID()))
	}
}

// renderSeats lists every seat's order and remaining patience.
func (g *Game) renderSeats(dst *core.Screen, offX int) {
	x := offX
	seats := g.kitchen.Seats()
	for i := 0; i < seats.Count(); i++ {
		text := fmt.Sprintf("%d:--      ", i+1)
		color := core.ColorGray
		if c := seats.Occupant(i); c != nil {
			text = fmt.Sprintf("%d:%-2s %3ds ", i+1, orderText(c.Order()), int(math.Ceil(c.Time)))
			color = core.ColorWhite
			if c.Angry() {
				color = core.ColorAngry
			}
		}
		dst.DrawTextColored(x, panelRow, text, color)
		x += len(text) + 1
	}
}

// renderInventories shows what each chef is carrying.
func (g *Game) renderInventories(dst *core.Screen, offX int) {
	x := offX
	for _, p := range g.kitchen.Players() {
		carried, ok := g.view.carried[p.ID()]
		if !ok {
			carried = inventoryText(nil)
		}
		text := fmt.Sprintf("%s %s", p.ID(), carried)
		if p.Step() > g.kitchen.Settings().MoveStep {
			text += " fast"
		}
		dst.DrawTextColored(x, panelRow+1, text, core.PlayerColor(p.ID()))
		x += len(text) + 4
	}
}

// renderOverlay draws a centered overlay box with one line per message.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	for i, l := range lines {
		g.drawCenteredText(dst, l, boxY+1+i*2)
	}
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
