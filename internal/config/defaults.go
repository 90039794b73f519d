package config

import (
	_ "embed"
)

//go:embed defaults/salad.yaml
var defaultSaladYAML []byte

// DefaultSaladConfig returns the default Salad Chef configuration.
func DefaultSaladConfig() SaladConfig {
	return SaladConfig{
		Round: RoundConfig{
			PlayerTime:          60,
			CustomerMinInterval: 20,
			CustomerMaxInterval: 30,
			OrderMin:            1,
			OrderMax:            2,
			SmallOrderTime:      60,
			BigOrderTime:        90,
		},
		Players: PlayersConfig{
			InventoryCapacity: 2,
			MoveStep:          0.5,
			SpeederStep:       1.0,
			SpeederDuration:   10,
		},
		Chopping: ChoppingConfig{
			Delay: 5,
		},
		Customers: CustomersConfig{
			Seats:         5,
			Punishment:    1.5,
			GiftThreshold: 0.7,
			GraceDelay:    1,
		},
		Scoring: ScoringConfig{
			OrderScore:  30,
			ScorerBonus: 20,
			TimerBonus:  15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600, // 1 minute at 60fps
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
			},
		},
	}
}
