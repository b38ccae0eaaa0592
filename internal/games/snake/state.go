// Package snake implements the tick-driven snake engine: a pure update step
// over immutable snapshots and an Engine that runs it on a ticker while
// accepting direction changes from other goroutines.
package snake

import "fmt"

// Position is a cell on the board.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a movement vector added to the head every tick.
// Screen coordinates: y grows downward.
type Direction struct {
	DX, DY int
}

var (
	Right = Direction{DX: 1, DY: 0}
	Left  = Direction{DX: -1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Up    = Direction{DX: 0, DY: -1}
)

// IsCardinal reports whether d is one of Right, Left, Down, Up.
func (d Direction) IsCardinal() bool {
	switch d {
	case Right, Left, Down, Up:
		return true
	}
	return false
}

// Clockwise returns the cardinal direction a quarter turn clockwise.
// Non-cardinal directions are returned unchanged.
func (d Direction) Clockwise() Direction {
	switch d {
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	case Up:
		return Right
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a name (right, left, down, up) to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	}
	return Direction{}, fmt.Errorf("snake: unknown direction %q", name)
}

// State is an immutable snapshot of the board.
// Snack holds the body head first; callers must not modify it.
type State struct {
	Tick  uint64
	Food  Position
	Snack []Position
}

// Head returns the first body segment.
func (s State) Head() Position {
	return s.Snack[0]
}

// Len returns the body length.
func (s State) Len() int {
	return len(s.Snack)
}

// Occupies reports whether p is part of the body.
func (s State) Occupies(p Position) bool {
	for _, seg := range s.Snack {
		if seg == p {
			return true
		}
	}
	return false
}
