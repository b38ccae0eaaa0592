package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// DirectionPolicy controls which vectors SetDirection accepts.
type DirectionPolicy string

const (
	// DirectionsAny accepts every vector, including zero and diagonals.
	DirectionsAny DirectionPolicy = "any"
	// DirectionsCardinal ignores everything except Right, Left, Down, Up.
	DirectionsCardinal DirectionPolicy = "cardinal"
)

// Construction errors.
var (
	ErrInvalidBoard  = errors.New("board size must be positive")
	ErrInvalidTick   = errors.New("tick period must be positive")
	ErrEmptySnack    = errors.New("initial snack must have at least one segment")
	ErrOutOfBounds   = errors.New("position outside the board")
	ErrInvalidLength = errors.New("default length must be positive")
)

// Options configures an Engine.
type Options struct {
	TickPeriod       time.Duration
	BoardSize        int
	InitialFood      Position
	InitialSnack     []Position
	InitialDirection Direction

	// DefaultLength is the starting growth target. Zero means DefaultLength.
	DefaultLength   int
	Seed            int64
	FoodPlacement   FoodPlacement
	DirectionPolicy DirectionPolicy

	// Logger receives engine events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the classic board: 22 cells, 230ms per tick,
// food at (5,5) and a single segment at (7,7) heading right.
func DefaultOptions() Options {
	return Options{
		TickPeriod:       230 * time.Millisecond,
		BoardSize:        22,
		InitialFood:      Pos(5, 5),
		InitialSnack:     []Position{Pos(7, 7)},
		InitialDirection: Right,
		DefaultLength:    DefaultLength,
		FoodPlacement:    FoodAnywhere,
		DirectionPolicy:  DirectionsAny,
	}
}

// withDefaults fills zero-valued optional fields.
func (o Options) withDefaults() Options {
	if o.DefaultLength == 0 {
		o.DefaultLength = DefaultLength
	}
	if o.FoodPlacement == "" {
		o.FoodPlacement = FoodAnywhere
	}
	if o.DirectionPolicy == "" {
		o.DirectionPolicy = DirectionsAny
	}
	return o
}

// Validate checks the options for values the engine cannot run with.
func (o Options) Validate() error {
	if o.BoardSize < 1 {
		return fmt.Errorf("snake: %w: got %d", ErrInvalidBoard, o.BoardSize)
	}
	if o.TickPeriod <= 0 {
		return fmt.Errorf("snake: %w: got %s", ErrInvalidTick, o.TickPeriod)
	}
	if o.DefaultLength < 0 {
		return fmt.Errorf("snake: %w: got %d", ErrInvalidLength, o.DefaultLength)
	}
	if len(o.InitialSnack) == 0 {
		return fmt.Errorf("snake: %w", ErrEmptySnack)
	}
	if !o.inBounds(o.InitialFood) {
		return fmt.Errorf("snake: food %s: %w", o.InitialFood, ErrOutOfBounds)
	}
	for i, p := range o.InitialSnack {
		if !o.inBounds(p) {
			return fmt.Errorf("snake: segment %d %s: %w", i, p, ErrOutOfBounds)
		}
	}
	switch o.FoodPlacement {
	case "", FoodAnywhere, FoodFree:
	default:
		return fmt.Errorf("snake: unknown food placement %q", o.FoodPlacement)
	}
	switch o.DirectionPolicy {
	case "", DirectionsAny, DirectionsCardinal:
	default:
		return fmt.Errorf("snake: unknown direction policy %q", o.DirectionPolicy)
	}
	return nil
}

func (o Options) inBounds(p Position) bool {
	return p.X >= 0 && p.X < o.BoardSize && p.Y >= 0 && p.Y < o.BoardSize
}

func (o Options) rules() Rules {
	return Rules{
		BoardSize:     o.BoardSize,
		DefaultLength: o.DefaultLength,
		FoodPlacement: o.FoodPlacement,
	}
}

func (o Options) initialState() State {
	snack := make([]Position, len(o.InitialSnack))
	copy(snack, o.InitialSnack)
	return State{Food: o.InitialFood, Snack: snack}
}
