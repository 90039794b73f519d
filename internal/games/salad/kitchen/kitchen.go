// Package kitchen holds the rules of the salad kitchen: containers, chopping
// boards, plates, customers, seats, pickups and the round that ties them
// together. It has no clock, no input device and no view of its own.
package kitchen

import (
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/salad-chef/internal/core"
)

// Round and station defaults.
const (
	DefaultChopDelay       = 5.0
	DefaultSpeederStep     = 1.0
	DefaultSpeederDuration = 10.0
	DefaultScorerBonus     = 20
	DefaultTimerBonus      = 15.0
	DefaultMinInterval     = 20.0
	DefaultMaxInterval     = 30.0
	DefaultMinOrder        = 1
	DefaultMaxOrder        = 2
	DefaultSmallOrderTime  = 60.0
	DefaultBigOrderTime    = 90.0
)

// Settings tunes a round. Times are in seconds, positions in world units.
type Settings struct {
	PlayerTime        float64
	InventoryCapacity int
	MoveStep          float64
	SpeederStep       float64
	SpeederDuration   float64
	ChopDelay         float64

	Customers  CustomerRules
	GraceDelay float64
	SeatCount  int

	OrderScore  int
	ScorerBonus int
	TimerBonus  float64

	MinInterval    float64
	MaxInterval    float64
	MinOrder       int
	MaxOrder       int
	SmallOrderTime float64
	BigOrderTime   float64

	Bounds core.Bounds
	Spawns map[core.PlayerID]core.Vec2

	// IntervalScale shrinks or stretches the customer interval as the round
	// goes on. Nil means no scaling.
	IntervalScale func(elapsed float64) float64
}

// DefaultSettings returns the stock kitchen.
func DefaultSettings() Settings {
	return Settings{
		PlayerTime:        DefaultPlayerTime,
		InventoryCapacity: DefaultInventoryCapacity,
		MoveStep:          DefaultMoveStep,
		SpeederStep:       DefaultSpeederStep,
		SpeederDuration:   DefaultSpeederDuration,
		ChopDelay:         DefaultChopDelay,
		Customers:         DefaultCustomerRules(),
		GraceDelay:        DefaultGraceDelay,
		SeatCount:         DefaultSeatCount,
		OrderScore:        DefaultOrderScore,
		ScorerBonus:       DefaultScorerBonus,
		TimerBonus:        DefaultTimerBonus,
		MinInterval:       DefaultMinInterval,
		MaxInterval:       DefaultMaxInterval,
		MinOrder:          DefaultMinOrder,
		MaxOrder:          DefaultMaxOrder,
		SmallOrderTime:    DefaultSmallOrderTime,
		BigOrderTime:      DefaultBigOrderTime,
		Bounds: core.Bounds{
			Min: core.Vec2{X: -5.5, Y: -2.5},
			Max: core.Vec2{X: 5.5, Y: 1.5},
		},
		Spawns: map[core.PlayerID]core.Vec2{
			core.Player1: {X: -2.5, Y: -2.5},
			core.Player2: {X: 2.5, Y: -2.5},
		},
	}
}

// Sensor is the overlap detector: it reports which interactable, if any, a
// player at pos is standing at.
type Sensor interface {
	Overlap(pos core.Vec2, candidates []*Interactable) (EntityID, bool)
}

// ProximitySensor picks the closest interactable within Reach on both axes.
type ProximitySensor struct {
	Reach float64
}

// Overlap implements Sensor.
func (s ProximitySensor) Overlap(pos core.Vec2, candidates []*Interactable) (EntityID, bool) {
	var (
		best  EntityID
		found bool
		dist  float64
	)
	for _, it := range candidates {
		if !pos.Near(it.Pos, s.Reach) {
			continue
		}
		dx, dy := pos.X-it.Pos.X, pos.Y-it.Pos.Y
		d := dx*dx + dy*dy
		if !found || d < dist {
			best, dist, found = it.ID, d, true
		}
	}
	return best, found
}

// ScoreRecorder persists the winning score of a round.
type ScoreRecorder interface {
	RecordScore(name string, score int) error
}

// Option configures a Kitchen.
type Option func(*Kitchen)

// WithLogger sets the logger lifecycle events are written to.
func WithLogger(l *log.Logger) Option {
	return func(k *Kitchen) {
		if l != nil {
			k.logger = l
		}
	}
}

// WithPresenter sets the view notification sink.
func WithPresenter(p Presenter) Option {
	return func(k *Kitchen) {
		if p != nil {
			k.presenter = p
		}
	}
}

// WithSensor replaces the default proximity sensor.
func WithSensor(s Sensor) Option {
	return func(k *Kitchen) {
		if s != nil {
			k.sensor = s
		}
	}
}

// WithRecorder sets where the winner's score is recorded at round end.
func WithRecorder(r ScoreRecorder) Option {
	return func(k *Kitchen) {
		k.recorder = r
	}
}

// PlayerScore is one line of a round result.
type PlayerScore struct {
	Player core.PlayerID
	Score  int
}

// RoundResult is the outcome of a finished round.
type RoundResult struct {
	Scores []PlayerScore
	Winner core.PlayerID // PlayerNone when nobody scored above zero
}

// WinnerName returns the winner's display name, or "" without a winner.
func (r RoundResult) WinnerName() string {
	if r.Winner == core.PlayerNone {
		return ""
	}
	return r.Winner.String()
}

// WinnerScore returns the winner's score, or 0 without a winner.
func (r RoundResult) WinnerScore() int {
	for _, s := range r.Scores {
		if s.Player == r.Winner {
			return s.Score
		}
	}
	return 0
}

// Kitchen is one round of play.
type Kitchen struct {
	settings Settings
	rng      *rand.Rand
	lastID   EntityID

	players []*Player
	sched   *Scheduler
	seats   *SeatManager
	pickups *PickupManager

	items []*Interactable

	elapsed       float64
	customerTimer float64
	over          bool
	result        RoundResult

	outbox []Event

	logger    *log.Logger
	presenter Presenter
	sensor    Sensor
	recorder  ScoreRecorder
}

// New creates a round for the given players and seats its first customer.
// Stations are added with the Add* builders before the first Step.
func New(settings Settings, seed int64, players []core.PlayerID, opts ...Option) *Kitchen {
	k := &Kitchen{
		settings:  settings,
		rng:       rand.New(rand.NewSource(seed)),
		sched:     NewScheduler(),
		logger:    log.New(io.Discard),
		presenter: NopPresenter{},
		sensor:    ProximitySensor{Reach: 0.5},
	}
	for _, opt := range opts {
		opt(k)
	}
	k.seats = NewSeatManager(settings.SeatCount, settings.OrderScore, settings.GraceDelay, k.sched)
	k.pickups = NewPickupManager(k.rng, k.newID)

	ids := append([]core.PlayerID(nil), players...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		spawn := settings.Spawns[id]
		p := NewPlayer(id, k.newID(), spawn, settings.PlayerTime, settings.InventoryCapacity, settings.MoveStep)
		k.players = append(k.players, p)
	}

	k.generateCustomer()
	return k
}

func (k *Kitchen) newID() EntityID {
	k.lastID++
	return k.lastID
}

// AddBoard places a chopping board for a station.
func (k *Kitchen) AddBoard(station core.PlayerID, pos core.Vec2) *Interactable {
	return k.add(&Interactable{
		Kind:    KindChoppingBoard,
		Station: station,
		Pos:     pos,
		Board:   NewChoppingBoard(station, k.settings.InventoryCapacity),
	})
}

// AddPlate places a plate for a station.
func (k *Kitchen) AddPlate(station core.PlayerID, pos core.Vec2) *Interactable {
	return k.add(&Interactable{
		Kind:    KindPlate,
		Station: station,
		Pos:     pos,
		Plate:   NewPlate(station),
	})
}

// AddGarbage places a bin.
func (k *Kitchen) AddGarbage(pos core.Vec2) *Interactable {
	return k.add(&Interactable{Kind: KindGarbage, Pos: pos})
}

// AddVeggieTile places a raw veggie crate.
func (k *Kitchen) AddVeggieTile(t VeggieType, pos core.Vec2) *Interactable {
	return k.add(&Interactable{Kind: KindVeggies, Veggie: t, Pos: pos})
}

// AddSeatTile places the counter spot where a seat is served.
func (k *Kitchen) AddSeatTile(seat int, pos core.Vec2) *Interactable {
	return k.add(&Interactable{Kind: KindSeat, Seat: seat, Pos: pos})
}

func (k *Kitchen) add(it *Interactable) *Interactable {
	it.ID = k.newID()
	k.items = append(k.items, it)
	return it
}

func (k *Kitchen) remove(id EntityID) {
	for i, it := range k.items {
		if it.ID == id {
			k.items = append(k.items[:i], k.items[i+1:]...)
			break
		}
	}
	for _, p := range k.players {
		if cur, touching := p.Touching(); touching && cur == id {
			p.exit(id)
			k.sense(p)
		}
	}
}

// Interactable looks up a station object by id.
func (k *Kitchen) Interactable(id EntityID) (*Interactable, bool) {
	for _, it := range k.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Interactables returns every station object, pickups included.
func (k *Kitchen) Interactables() []*Interactable {
	out := make([]*Interactable, len(k.items))
	copy(out, k.items)
	return out
}

// Settings returns the round tuning.
func (k *Kitchen) Settings() Settings { return k.settings }

// Players returns the players ordered by id.
func (k *Kitchen) Players() []*Player { return k.players }

// Player returns one player.
func (k *Kitchen) Player(id core.PlayerID) (*Player, bool) {
	for _, p := range k.players {
		if p.id == id {
			return p, true
		}
	}
	return nil, false
}

// Seats returns the seat row.
func (k *Kitchen) Seats() *SeatManager { return k.seats }

// Scheduler returns the round's timer table.
func (k *Kitchen) Scheduler() *Scheduler { return k.sched }

// Pickups returns the pickups lying on the floor.
func (k *Kitchen) Pickups() []Pickup { return k.pickups.All() }

// Elapsed returns the simulated round time.
func (k *Kitchen) Elapsed() float64 { return k.elapsed }

// CustomerTimer returns the time left until the next customer is generated.
func (k *Kitchen) CustomerTimer() float64 { return k.customerTimer }

// Over reports whether the round has ended.
func (k *Kitchen) Over() bool { return k.over }

// Result returns the round result once it is over.
func (k *Kitchen) Result() (RoundResult, bool) { return k.result, k.over }

// Events returns and clears the events raised since the last call.
func (k *Kitchen) Events() []Event {
	out := k.outbox
	k.outbox = nil
	return out
}

func (k *Kitchen) emit(e Event) {
	k.outbox = append(k.outbox, e)
}
