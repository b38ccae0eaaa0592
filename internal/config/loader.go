package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snack/internal/games/snake"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// localConfigPath is checked after the user config directory.
var localConfigPath = filepath.Join("configs", "snake.yaml")

// Load loads the snake configuration.
// Search order: customPath -> ~/.snack/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig

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
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snack", "configs", filename)
}

// ApplyLayout overrides board size and tick with a named layout.
// Start positions that no longer fit are wrapped onto the smaller board.
func ApplyLayout(cfg *SnakeConfig, name string) error {
	l, err := LookupLayout(name)
	if err != nil {
		return err
	}
	cfg.Board.Size = l.Size
	cfg.Board.Tick = l.Tick
	cfg.Start.Food = cfg.Start.Food.wrap(l.Size)
	for i, p := range cfg.Start.Snack {
		cfg.Start.Snack[i] = p.wrap(l.Size)
	}
	return nil
}

func (p PointConfig) wrap(size int) PointConfig {
	return PointConfig{X: snake.Wrap(p.X, size), Y: snake.Wrap(p.Y, size)}
}

// Validate reports the first problem that would stop the engine from starting.
func (c SnakeConfig) Validate() error {
	if c.Rules.DefaultLength < 1 {
		return fmt.Errorf("%w: rules.default_length must be at least 1, got %d", ErrInvalidConfig, c.Rules.DefaultLength)
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// EngineOptions converts the configuration into engine options.
func (c SnakeConfig) EngineOptions(seed int64, logger *log.Logger) (snake.Options, error) {
	if err := c.Validate(); err != nil {
		return snake.Options{}, err
	}
	opts, err := c.options()
	if err != nil {
		return snake.Options{}, err
	}
	opts.Seed = seed
	opts.Logger = logger
	return opts, nil
}

func (c SnakeConfig) options() (snake.Options, error) {
	dir, err := snake.ParseDirection(c.Start.Direction)
	if err != nil {
		return snake.Options{}, fmt.Errorf("%w: start.direction: %v", ErrInvalidConfig, err)
	}
	body := make([]snake.Position, len(c.Start.Snack))
	for i, p := range c.Start.Snack {
		body[i] = p.position()
	}
	return snake.Options{
		TickPeriod:       c.Board.Tick,
		BoardSize:        c.Board.Size,
		InitialFood:      c.Start.Food.position(),
		InitialSnack:     body,
		InitialDirection: dir,
		DefaultLength:    c.Rules.DefaultLength,
		FoodPlacement:    snake.FoodPlacement(c.Rules.FoodPlacement),
		DirectionPolicy:  snake.DirectionPolicy(c.Rules.DirectionPolicy),
	}, nil
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
