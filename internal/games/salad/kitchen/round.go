package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Step advances the round by dt seconds.
//
// Order within a tick: players (clock, movement, interaction), customer
// patience, timers, event handling, then customer generation and the end
// check. A finished round ignores further steps.
func (k *Kitchen) Step(dt float64, in core.MultiInputFrame) {
	if k.over {
		return
	}
	k.elapsed += dt

	for _, p := range k.players {
		k.stepPlayer(p, dt, in.Player(p.id))
	}

	k.seats.Tick(dt)
	k.sched.Advance(dt)
	k.handleEvents()

	k.customerTimer -= dt
	if k.customerTimer <= 0 {
		k.generateCustomer()
		k.handleEvents()
	}

	if k.allFinished() {
		k.endRound()
	}
}

func (k *Kitchen) stepPlayer(p *Player, dt float64, in core.InputFrame) {
	p.TickTime(dt)
	if p.Finished {
		return
	}
	for _, m := range moveDirs {
		if in.Has(m.action) {
			k.Move(p.id, m.dir)
		}
	}
	if in.Has(core.ActionInteract) {
		k.Interact(p.id)
	}
}

func (k *Kitchen) allFinished() bool {
	if len(k.players) == 0 {
		return false
	}
	for _, p := range k.players {
		if !p.IsFinished() {
			return false
		}
	}
	return true
}

// generateCustomer redraws the generation timer and seats a new customer
// if there is room.
func (k *Kitchen) generateCustomer() {
	k.customerTimer = k.nextInterval()
	if !k.seats.IsASeatVacant() {
		return
	}
	order, wait := k.randomOrder()
	c := NewCustomer(k.newID(), order, wait, k.settings.Customers)
	seat, r := k.seats.AssignSeat(c)
	if r.OK() {
		k.logger.Debug("customer seated", "seat", seat, "order", order, "wait", wait)
	}
}

func (k *Kitchen) nextInterval() float64 {
	lo, hi := k.settings.MinInterval, k.settings.MaxInterval
	if hi < lo {
		hi = lo
	}
	interval := lo + k.rng.Float64()*(hi-lo)
	if k.settings.IntervalScale != nil {
		interval *= k.settings.IntervalScale(k.elapsed)
	}
	return interval
}

func (k *Kitchen) randomOrder() ([]Veggie, float64) {
	lo, hi := k.settings.MinOrder, k.settings.MaxOrder
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	n := lo + k.rng.Intn(hi-lo+1)
	order := make([]Veggie, n)
	for i := range order {
		order[i] = NewVeggie(AllVeggieTypes[k.rng.Intn(len(AllVeggieTypes))])
	}
	if n == lo {
		return order, k.settings.SmallOrderTime
	}
	return order, k.settings.BigOrderTime
}

// handleEvents applies seat events to players and forwards them.
func (k *Kitchen) handleEvents() {
	for _, e := range k.seats.Drain() {
		switch ev := e.(type) {
		case ScoreEvent:
			k.applyScore(ev)
		case GiftEvent:
			k.emit(e)
			pk := k.spawnPickup(ev.Player)
			k.logger.Debug("gift", "player", ev.Player, "pickup", pk.Kind)
			continue
		case CustomerArrivedEvent:
			k.presenter.CustomerMood(ev.Seat, MoodWaiting)
		case CustomerLeftEvent:
			mood := MoodUnhappy
			if ev.Satisfied {
				mood = MoodHappy
			}
			k.presenter.CustomerMood(ev.Seat, mood)
			k.logger.Debug("customer left", "seat", ev.Seat, "satisfied", ev.Satisfied, "angry", ev.Angry, "server", ev.Server)
		}
		k.emit(e)
	}
}

// spawnPickup grants a pickup to player and lets anyone already standing on
// its cell touch it.
func (k *Kitchen) spawnPickup(player core.PlayerID) Pickup {
	pk := k.pickups.Grant(player)
	k.items = append(k.items, &Interactable{ID: pk.ID, Kind: KindPickup, Station: player, Pos: pk.Pos})
	for _, p := range k.players {
		if id, found := k.sensor.Overlap(p.pos, k.items); found && id == pk.ID {
			p.enter(id)
		}
	}
	k.emit(PickupSpawnedEvent{Pickup: pk})
	return pk
}

func (k *Kitchen) applyScore(ev ScoreEvent) {
	for _, p := range k.players {
		if ev.Player == core.PlayerNone || ev.Player == p.id {
			p.AddScore(ev.Delta)
			k.presenter.ScoreChanged(p.id, p.score)
		}
	}
}

func (k *Kitchen) endRound() {
	k.over = true
	k.seats.FlushSeats()
	k.handleEvents()
	for _, p := range k.players {
		k.sched.Cancel(p.entity)
	}
	for _, pk := range k.pickups.All() {
		k.remove(pk.ID)
	}
	k.pickups.Clear()

	res := RoundResult{Winner: core.PlayerNone}
	best := 0
	for _, p := range k.players {
		res.Scores = append(res.Scores, PlayerScore{Player: p.id, Score: p.score})
		if p.score > best {
			best = p.score
			res.Winner = p.id
		}
	}
	k.result = res
	k.logger.Info("round over", "winner", res.WinnerName(), "score", best)

	if k.recorder != nil && res.Winner != core.PlayerNone {
		if err := k.recorder.RecordScore(res.WinnerName(), best); err != nil {
			k.logger.Warn("could not record score", "error", err)
		}
	}
	k.emit(RoundOverEvent{Result: res})
}
