package config

import (
	_ "embed"
	"fmt"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size: 22,
			Tick: 230 * time.Millisecond,
		},
		Start: StartConfig{
			Food:      PointConfig{X: 5, Y: 5},
			Snack:     []PointConfig{{X: 7, Y: 7}},
			Direction: "right",
		},
		Rules: RulesConfig{
			DefaultLength:   4,
			FoodPlacement:   "anywhere",
			DirectionPolicy: "any",
		},
	}
}

// Layout is a named board size and tick period.
type Layout struct {
	Name        string
	Description string
	Size        int
	Tick        time.Duration
}

// layouts are the two boards the game shipped with.
var layouts = []Layout{
	{Name: "classic", Description: "22x22 board, relaxed pace", Size: 22, Tick: 230 * time.Millisecond},
	{Name: "compact", Description: "16x16 board, quicker pace", Size: 16, Tick: 150 * time.Millisecond},
}

// Layouts returns the available named layouts.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

// LookupLayout finds a layout by name.
func LookupLayout(name string) (Layout, error) {
	for _, l := range layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("unknown layout %q", name)
}
