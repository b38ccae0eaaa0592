// Package config provides YAML-based engine configuration loading and the
// named board layouts.
package config

import (
	"time"

	"github.com/vovakirdan/snack/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake engine.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Start StartConfig `yaml:"start"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the grid and its timing.
type BoardConfig struct {
	Size int           `yaml:"size"`
	Tick time.Duration `yaml:"tick"`
}

// StartConfig defines the snapshot the engine starts from.
type StartConfig struct {
	Food      PointConfig   `yaml:"food"`
	Snack     []PointConfig `yaml:"snack"`
	Direction string        `yaml:"direction"`
}

// PointConfig is a board cell in YAML form.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RulesConfig defines optional rule variations.
type RulesConfig struct {
	DefaultLength   int    `yaml:"default_length"`
	FoodPlacement   string `yaml:"food_placement"`   // "anywhere" or "free"
	DirectionPolicy string `yaml:"direction_policy"` // "any" or "cardinal"
}

func (p PointConfig) position() snake.Position {
	return snake.Pos(p.X, p.Y)
}
