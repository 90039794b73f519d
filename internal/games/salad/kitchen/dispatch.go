package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

var moveDirs = []struct {
	action core.Action
	dir    core.Vec2
}{
	{core.ActionUp, core.Vec2{Y: 1}},
	{core.ActionDown, core.Vec2{Y: -1}},
	{core.ActionLeft, core.Vec2{X: -1}},
	{core.ActionRight, core.Vec2{X: 1}},
}

// Enter tells the kitchen a player now overlaps an interactable.
func (k *Kitchen) Enter(player core.PlayerID, id EntityID) Result {
	p, ok := k.Player(player)
	if !ok {
		return RejectedIneligible
	}
	if _, ok := k.Interactable(id); !ok {
		return RejectedIneligible
	}
	p.enter(id)
	return Applied
}

// Exit tells the kitchen a player left an interactable. Leaving something
// other than the current one changes nothing.
func (k *Kitchen) Exit(player core.PlayerID, id EntityID) Result {
	p, ok := k.Player(player)
	if !ok {
		return RejectedIneligible
	}
	if cur, touching := p.Touching(); !touching || cur != id {
		return RejectedIneligible
	}
	p.exit(id)
	return Applied
}

// Move steps a player and re-runs the overlap detector for it.
func (k *Kitchen) Move(player core.PlayerID, dir core.Vec2) Result {
	p, ok := k.Player(player)
	if !ok || p.Finished {
		return RejectedIneligible
	}
	r := p.Move(dir, k.settings.Bounds)
	if r.OK() {
		k.sense(p)
	}
	return r
}

func (k *Kitchen) sense(p *Player) {
	id, found := k.sensor.Overlap(p.pos, k.items)
	cur, touching := p.Touching()
	switch {
	case found && (!touching || cur != id):
		p.enter(id)
	case !found && touching:
		p.exit(cur)
	}
}

// Interact resolves the player's interaction with whatever it is touching.
func (k *Kitchen) Interact(player core.PlayerID) Result {
	p, ok := k.Player(player)
	if !ok {
		return RejectedIneligible
	}
	if p.Locked {
		return RejectedBusy
	}
	id, touching := p.Touching()
	if !touching {
		return RejectedIneligible
	}
	it, ok := k.Interactable(id)
	if !ok {
		return RejectedIneligible
	}

	var r Result
	switch it.Kind {
	case KindGarbage:
		r = k.useGarbage(p)
	case KindChoppingBoard:
		r = k.useBoard(p, it)
	case KindPlate:
		r = k.usePlate(p, it)
	case KindVeggies:
		r = p.inv.Add(NewVeggie(it.Veggie))
	case KindSeat:
		r = k.useSeat(p, it)
	case KindPickup:
		r = k.usePickup(p, it)
	default:
		r = RejectedIneligible
	}
	if r.OK() && it.Kind != KindPickup {
		k.presenter.InventoryChanged(p.id, p.inv.Items())
	}
	k.logger.Debug("interact", "player", p.id, "target", it.Kind, "result", r)
	return r
}

func (k *Kitchen) useGarbage(p *Player) Result {
	if p.inv.Empty() {
		return RejectedIneligible
	}
	p.inv.Clear()
	return Applied
}

func (k *Kitchen) useBoard(p *Player, it *Interactable) Result {
	if !it.OwnedBy(p.id) {
		return RejectedIneligible
	}
	board := it.Board

	if p.inv.Empty() {
		if !board.IsSaladAvailable() {
			return RejectedIneligible
		}
		if len(board.Readied()) > p.inv.Capacity() {
			return RejectedCapacity
		}
		return p.inv.Load(board.GetReadiedSalad())
	}

	first, _ := p.inv.First()
	if r := board.ChopNextVeggie(first); !r.OK() {
		return r
	}
	p.inv.RemoveAt(0)
	p.Locked = true
	k.sched.Schedule(p.entity, TimerChopDone, k.settings.ChopDelay, func() {
		board.SetReadiedVeggie()
		if !p.Finished {
			p.Locked = false
		}
	})
	return Applied
}

func (k *Kitchen) usePlate(p *Player, it *Interactable) Result {
	if !it.OwnedBy(p.id) {
		return RejectedIneligible
	}
	plate := it.Plate

	if plate.IsVeggieAvailable() && !p.inv.Full() {
		v, _ := plate.RemoveVeggie()
		return p.inv.Add(v)
	}
	// A full player at an occupied plate ends up RejectedBusy here.
	first, ok := p.inv.First()
	if !ok {
		return RejectedIneligible
	}
	if r := plate.PlaceVeggie(first); !r.OK() {
		return r
	}
	p.inv.RemoveAt(0)
	return Applied
}

func (k *Kitchen) useSeat(p *Player, it *Interactable) Result {
	if p.inv.Empty() {
		return RejectedIneligible
	}
	// The inventory is handed over even when nobody sits there.
	outcome, r := k.seats.Serve(it.Seat, p.inv.Items(), p.id)
	p.inv.Clear()
	if !r.OK() {
		k.presenter.InventoryChanged(p.id, p.inv.Items())
		return r
	}
	if outcome == ServeAngered {
		k.presenter.CustomerMood(it.Seat, MoodAngry)
	}
	return Applied
}

func (k *Kitchen) usePickup(p *Player, it *Interactable) Result {
	pk, r := k.pickups.Consume(it.ID, p.id)
	if !r.OK() {
		return r
	}
	switch pk.Kind {
	case PickupScorer:
		p.AddScore(k.settings.ScorerBonus)
		k.presenter.ScoreChanged(p.id, p.score)
	case PickupTimer:
		p.Time += k.settings.TimerBonus
	case PickupSpeeder:
		p.setStep(k.settings.SpeederStep)
		k.sched.CancelKind(p.entity, TimerSpeederRevert)
		k.sched.Schedule(p.entity, TimerSpeederRevert, k.settings.SpeederDuration, func() {
			p.setStep(k.settings.MoveStep)
		})
	}
	k.remove(it.ID)
	k.emit(PickupConsumedEvent{Pickup: pk, Player: p.id})
	return Applied
}
