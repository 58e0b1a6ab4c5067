package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the hard-coded defaults. It mirrors
// defaults/snake.yaml and is used when the embedded document can't be parsed.
func DefaultConfig() Config {
	return Config{
		Title: "Snake Snake Snake",
		Board: BoardConfig{
			Width:         30,
			Height:        30,
			MessageWidth:  60,
			MessageHeight: 10,
		},
		Items: ItemsConfig{
			Food:        10,
			Hazards:     10,
			MoreHazards: 100,
		},
		Scoring: ScoringConfig{
			FoodBonus:  10,
			StepReward: 1,
		},
		Timing: TimingConfig{
			StepInterval: 100 * time.Millisecond,
			PollInterval: 5 * time.Millisecond,
			RefreshRate:  60,
		},
	}
}
