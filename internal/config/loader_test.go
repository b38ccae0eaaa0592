package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/snack/internal/games/snake"
)

// isolate points the user and local search paths at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	old := localConfigPath
	localConfigPath = filepath.Join(t.TempDir(), "configs", "snake.yaml")
	t.Cleanup(func() { localConfigPath = old })
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, `
board:
  size: 9
  tick: 100ms
start:
  food: {x: 1, y: 1}
  snack: [{x: 4, y: 4}, {x: 3, y: 4}]
  direction: up
rules:
  default_length: 3
  food_placement: free
  direction_policy: cardinal
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 9 || cfg.Board.Tick != 100*time.Millisecond {
		t.Errorf("board = %+v, expected size 9 tick 100ms", cfg.Board)
	}
	if len(cfg.Start.Snack) != 2 || cfg.Start.Direction != "up" {
		t.Errorf("start = %+v", cfg.Start)
	}
	if cfg.Rules.FoodPlacement != "free" || cfg.Rules.DirectionPolicy != "cardinal" {
		t.Errorf("rules = %+v", cfg.Rules)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [unterminated")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)
	writeFile(t, localConfigPath, "board: {size: 12, tick: 1s}\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 12 {
		t.Errorf("local config not used: size = %d", cfg.Board.Size)
	}

	writeFile(t, filepath.Join(home, ".snack", "configs", "snake.yaml"), "board: {size: 14, tick: 1s}\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 14 {
		t.Errorf("user config should win over local: size = %d", cfg.Board.Size)
	}
}

func TestApplyLayout(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Start.Food = PointConfig{X: 20, Y: 3}

	if err := ApplyLayout(&cfg, "compact"); err != nil {
		t.Fatalf("ApplyLayout: %v", err)
	}
	if cfg.Board.Size != 16 || cfg.Board.Tick != 150*time.Millisecond {
		t.Errorf("board = %+v, expected compact", cfg.Board)
	}
	if cfg.Start.Food != (PointConfig{X: 4, Y: 3}) {
		t.Errorf("food = %+v, expected wrapped (4,3)", cfg.Start.Food)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("compact layout should validate: %v", err)
	}

	if err := ApplyLayout(&cfg, "huge"); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
	}{
		{"bad direction", func(c *SnakeConfig) { c.Start.Direction = "north" }},
		{"zero length", func(c *SnakeConfig) { c.Rules.DefaultLength = 0 }},
		{"no board", func(c *SnakeConfig) { c.Board.Size = 0 }},
		{"no tick", func(c *SnakeConfig) { c.Board.Tick = 0 }},
		{"empty snack", func(c *SnakeConfig) { c.Start.Snack = nil }},
		{"food off board", func(c *SnakeConfig) { c.Start.Food = PointConfig{X: 30} }},
		{"bad placement", func(c *SnakeConfig) { c.Rules.FoodPlacement = "ceiling" }},
		{"bad policy", func(c *SnakeConfig) { c.Rules.DirectionPolicy = "diagonal" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultSnakeConfig()

	opts, err := cfg.EngineOptions(99, nil)
	if err != nil {
		t.Fatalf("EngineOptions: %v", err)
	}

	want := snake.DefaultOptions()
	want.Seed = 99
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("EngineOptions = %+v, expected %+v", opts, want)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	data, err := DefaultSnakeConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("round trip = %+v", cfg)
	}
}

func TestLayouts(t *testing.T) {
	ls := Layouts()
	if len(ls) != 2 {
		t.Fatalf("Layouts() has %d entries, expected 2", len(ls))
	}
	ls[0].Size = 1
	if l, _ := LookupLayout("classic"); l.Size != 22 {
		t.Error("Layouts() should return a copy")
	}
}
