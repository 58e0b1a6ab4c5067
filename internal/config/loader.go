package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for settings the game can't run with.
var ErrInvalidConfig = errors.New("invalid config")

// minBoardSide is the smallest board side that still has an interior cell.
const minBoardSide = 3

// Load returns the embedded default configuration.
// Falls back to DefaultConfig if the embedded document can't be decoded.
func Load() Config {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Parse decodes a YAML document on top of DefaultConfig, so missing keys keep
// their default values.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: cannot parse yaml")
	}
	return cfg, nil
}

// Validate checks that the board is large enough and that the configured
// food and hazard counts fit into it. Hazards can't use the snake's starting
// lane, so they are checked against the interior minus that lane minus the
// cells food may already occupy.
func Validate(cfg Config) error {
	b := cfg.Board
	if b.Width < minBoardSide || b.Height < minBoardSide {
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d is smaller than %dx%d",
			b.Width, b.Height, minBoardSide, minBoardSide)
	}
	if b.MessageWidth < 0 || b.MessageHeight < 0 {
		return errors.Wrapf(ErrInvalidConfig, "message area %dx%d is negative", b.MessageWidth, b.MessageHeight)
	}

	items := cfg.Items
	if items.Food < 0 || items.Hazards < 0 || items.MoreHazards < 0 {
		return errors.Wrapf(ErrInvalidConfig, "item counts must not be negative (food %d, hazards %d, more hazards %d)",
			items.Food, items.Hazards, items.MoreHazards)
	}

	interior := (b.Width - 2) * (b.Height - 2)
	startX, _ := cfg.Start()
	lane := b.Width - 1 - startX // start cell through the last interior column

	if foodRoom := interior - 1; items.Food > foodRoom {
		return errors.Wrapf(ErrInvalidConfig, "%d food items do not fit, room for %d", items.Food, foodRoom)
	}
	if hazardRoom := max(0, interior-lane-items.Food); items.Hazards > hazardRoom {
		return errors.Wrapf(ErrInvalidConfig, "%d hazards do not fit next to %d food items, room for %d",
			items.Hazards, items.Food, hazardRoom)
	}

	if cfg.Scoring.FoodBonus < 0 || cfg.Scoring.StepReward < 0 {
		return errors.Wrapf(ErrInvalidConfig, "score increments must not be negative (food %d, step %d)",
			cfg.Scoring.FoodBonus, cfg.Scoring.StepReward)
	}

	t := cfg.Timing
	if t.StepInterval <= 0 || t.PollInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "intervals must be positive (step %s, poll %s)",
			t.StepInterval, t.PollInterval)
	}
	if t.RefreshRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "refresh rate must be positive, got %d", t.RefreshRate)
	}

	return nil
}
