package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SALAD_ROUND_PLAYER_TIME.
const EnvPrefix = "SALAD_"

const configFile = "salad.yaml"

// LoadSalad loads the Salad Chef configuration.
// Search order: customPath -> ~/.saladchef/configs/salad.yaml -> ./configs/salad.yaml -> embedded default.
// Keys missing from the file keep their default values. SALAD_* environment
// variables are applied on top of whichever file was used.
func LoadSalad(customPath string) (SaladConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (SaladConfig, error) {
	cfg := DefaultSaladConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultSaladConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		candidate := DefaultSaladConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSaladYAML, &cfg); err != nil {
		return DefaultSaladConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any SALAD_* environment variables that are set.
func ApplyEnv(cfg *SaladConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".saladchef", "configs", filename)
}

// ApplySaladPreset modifies the config based on a difficulty preset.
func ApplySaladPreset(cfg *SaladConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust customer patience based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Round.SmallOrderTime *= 1.25
		cfg.Round.BigOrderTime *= 1.25
		cfg.Customers.Punishment = 1.25
	case DifficultyHard:
		cfg.Round.SmallOrderTime *= 0.75
		cfg.Round.BigOrderTime *= 0.75
		cfg.Customers.Punishment = 2.0
		cfg.Customers.GiftThreshold = 0.8
	}
}
