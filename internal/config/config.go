// Package config provides YAML-based kitchen configuration loading and
// difficulty management for Salad Chef.
package config

import (
	"errors"
	"fmt"
)

// SaladConfig contains all configuration for a round of Salad Chef.
type SaladConfig struct {
	Round      RoundConfig      `yaml:"round" envPrefix:"ROUND_"`
	Players    PlayersConfig    `yaml:"players" envPrefix:"PLAYERS_"`
	Chopping   ChoppingConfig   `yaml:"chopping" envPrefix:"CHOPPING_"`
	Customers  CustomersConfig  `yaml:"customers" envPrefix:"CUSTOMERS_"`
	Scoring    ScoringConfig    `yaml:"scoring" envPrefix:"SCORING_"`
	Difficulty DifficultyConfig `yaml:"difficulty" envPrefix:"DIFFICULTY_"`
}

// RoundConfig defines the round clock and customer generation.
type RoundConfig struct {
	PlayerTime          float64 `yaml:"player_time" env:"PLAYER_TIME"`                     // Seconds each player gets
	CustomerMinInterval float64 `yaml:"customer_min_interval" env:"CUSTOMER_MIN_INTERVAL"` // Seconds between customers, lower bound
	CustomerMaxInterval float64 `yaml:"customer_max_interval" env:"CUSTOMER_MAX_INTERVAL"` // Seconds between customers, upper bound
	OrderMin            int     `yaml:"order_min" env:"ORDER_MIN"`                         // Fewest veggies in an order
	OrderMax            int     `yaml:"order_max" env:"ORDER_MAX"`                         // Most veggies in an order
	SmallOrderTime      float64 `yaml:"small_order_time" env:"SMALL_ORDER_TIME"`           // Patience for an order of OrderMin veggies
	BigOrderTime        float64 `yaml:"big_order_time" env:"BIG_ORDER_TIME"`               // Patience for any larger order
}

// PlayersConfig defines player carrying and movement.
type PlayersConfig struct {
	InventoryCapacity int     `yaml:"inventory_capacity" env:"INVENTORY_CAPACITY"`
	MoveStep          float64 `yaml:"move_step" env:"MOVE_STEP"`
	SpeederStep       float64 `yaml:"speeder_step" env:"SPEEDER_STEP"`
	SpeederDuration   float64 `yaml:"speeder_duration" env:"SPEEDER_DURATION"`
}

// ChoppingConfig defines the chopping board.
type ChoppingConfig struct {
	Delay float64 `yaml:"delay" env:"DELAY"` // Seconds a chop keeps the player busy
}

// CustomersConfig defines customer behaviour and seating.
type CustomersConfig struct {
	Seats         int     `yaml:"seats" env:"SEATS"`
	Punishment    float64 `yaml:"punishment" env:"PUNISHMENT"`         // Patience drain multiplier once angry
	GiftThreshold float64 `yaml:"gift_threshold" env:"GIFT_THRESHOLD"` // Fraction of patience left to earn a gift
	GraceDelay    float64 `yaml:"grace_delay" env:"GRACE_DELAY"`       // Seconds a leaving customer stays visible
}

// ScoringConfig defines score changes.
type ScoringConfig struct {
	OrderScore  int     `yaml:"order_score" env:"ORDER_SCORE"`
	ScorerBonus int     `yaml:"scorer_bonus" env:"SCORER_BONUS"`
	TimerBonus  float64 `yaml:"timer_bonus" env:"TIMER_BONUS"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" env:"ENABLED"`
	InitialLevel float64           `yaml:"initial_level" env:"INITIAL_LEVEL"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" envPrefix:"PROGRESSION_"`
	Scaling      ScalingConfig     `yaml:"scaling" envPrefix:"SCALING_"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" env:"TYPE"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" env:"MAX_AT"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction" env:"INTERVAL_REDUCTION"` // Fraction cut from the customer interval at max difficulty
}

// Validate reports every setting that would make a round unplayable.
func (c SaladConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	r := c.Round
	check(r.PlayerTime > 0, "round.player_time must be positive, got %v", r.PlayerTime)
	check(r.CustomerMinInterval > 0, "round.customer_min_interval must be positive, got %v", r.CustomerMinInterval)
	check(r.CustomerMaxInterval >= r.CustomerMinInterval,
		"round.customer_max_interval (%v) must not be below customer_min_interval (%v)",
		r.CustomerMaxInterval, r.CustomerMinInterval)
	check(r.OrderMin >= 1, "round.order_min must be at least 1, got %d", r.OrderMin)
	check(r.OrderMax >= r.OrderMin, "round.order_max (%d) must not be below order_min (%d)", r.OrderMax, r.OrderMin)
	check(r.SmallOrderTime > 0 && r.BigOrderTime > 0, "round order times must be positive")

	p := c.Players
	check(p.InventoryCapacity >= 1, "players.inventory_capacity must be at least 1, got %d", p.InventoryCapacity)
	check(r.OrderMax <= p.InventoryCapacity,
		"round.order_max (%d) cannot exceed players.inventory_capacity (%d)", r.OrderMax, p.InventoryCapacity)
	check(p.MoveStep > 0, "players.move_step must be positive, got %v", p.MoveStep)
	check(p.SpeederStep > 0, "players.speeder_step must be positive, got %v", p.SpeederStep)
	check(p.SpeederDuration >= 0, "players.speeder_duration must not be negative")

	check(c.Chopping.Delay >= 0, "chopping.delay must not be negative")

	cu := c.Customers
	check(cu.Seats >= 1, "customers.seats must be at least 1, got %d", cu.Seats)
	check(cu.Punishment >= 1, "customers.punishment must be at least 1, got %v", cu.Punishment)
	check(cu.GiftThreshold >= 0 && cu.GiftThreshold <= 1, "customers.gift_threshold must be within [0, 1], got %v", cu.GiftThreshold)
	check(cu.GraceDelay >= 0, "customers.grace_delay must not be negative")

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty.initial_level must be within [0, 1], got %v", d.InitialLevel)
	switch d.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", d.Progression.Type))
	}
	check(d.Scaling.IntervalReduction >= 0 && d.Scaling.IntervalReduction < 1,
		"difficulty.scaling.interval_reduction must be within [0, 1), got %v", d.Scaling.IntervalReduction)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid salad config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
