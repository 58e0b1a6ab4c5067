// Package config provides the game settings: an embedded YAML document with
// the defaults, the command-line override for hazards, and capacity checks.
package config

import "time"

// Config contains all settings for a game of Snake.
type Config struct {
	Title   string        `yaml:"title"`
	Board   BoardConfig   `yaml:"board"`
	Items   ItemsConfig   `yaml:"items"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the play area and the message area below it.
type BoardConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	MessageWidth  int `yaml:"message_width"`
	MessageHeight int `yaml:"message_height"`
}

// ItemsConfig defines how many items are scattered on every reset.
type ItemsConfig struct {
	Food        int `yaml:"food"`
	Hazards     int `yaml:"hazards"`
	MoreHazards int `yaml:"more_hazards"` // Hazard count with --more-hazards
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	FoodBonus  int `yaml:"food_bonus"`
	StepReward int `yaml:"step_reward"` // Added for every move that doesn't eat
}

// TimingConfig defines the two loop cadences.
type TimingConfig struct {
	StepInterval time.Duration `yaml:"step_interval"` // Between snake moves
	PollInterval time.Duration `yaml:"poll_interval"` // Between input polls
	RefreshRate  int           `yaml:"refresh_rate"`  // Terminal frames per second
}

// WithMoreHazards returns a copy of cfg using the raised hazard count.
func (c Config) WithMoreHazards() Config {
	c.Items.Hazards = c.Items.MoreHazards
	return c
}

// Start returns the snake's starting cell: the center of the board.
func (c Config) Start() (x, y int) {
	return c.Board.Width / 2, c.Board.Height / 2
}

// WindowSize returns the smallest terminal that fits the board and messages.
func (c Config) WindowSize() (width, height int) {
	width = c.Board.Width
	if c.Board.MessageWidth > width {
		width = c.Board.MessageWidth
	}
	return width, c.Board.Height + c.Board.MessageHeight
}
