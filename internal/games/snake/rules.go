package snake

import "math/rand"

// FoodPlacement selects where respawned food may land.
type FoodPlacement string

const (
	// FoodAnywhere picks any cell, including ones under the body.
	FoodAnywhere FoodPlacement = "anywhere"
	// FoodFree picks only cells the new body does not cover.
	FoodFree FoodPlacement = "free"
)

// DefaultLength is the growth target a snake starts with and resets to
// after hitting itself.
const DefaultLength = 4

// Rules holds the board parameters used by Advance.
type Rules struct {
	BoardSize     int
	DefaultLength int
	FoodPlacement FoodPlacement
}

// Outcome is the result of one tick.
type Outcome struct {
	Next         State
	AteFood      bool
	SelfCollided bool
	Growth       int // growth target after this tick
}

// Wrap maps v onto [0, n).
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Advance computes the next snapshot from cur moving in dir.
// growth is the current growth target; the returned Outcome carries the
// updated one. rng is used only when food is eaten.
func (r Rules) Advance(cur State, dir Direction, growth int, rng *rand.Rand) Outcome {
	head := cur.Head()
	newHead := Position{
		X: Wrap(head.X+dir.DX+r.BoardSize, r.BoardSize),
		Y: Wrap(head.Y+dir.DY+r.BoardSize, r.BoardSize),
	}

	ate := newHead == cur.Food
	// Checked against the body before the tail moves, so stepping onto the
	// last segment counts.
	collided := cur.Occupies(newHead)

	if ate {
		growth++
	}
	if collided {
		growth = r.DefaultLength
	}

	keep := min(max(growth-1, 0), len(cur.Snack))
	body := make([]Position, 0, keep+1)
	body = append(body, newHead)
	body = append(body, cur.Snack[:keep]...)

	next := State{
		Tick:  cur.Tick + 1,
		Food:  cur.Food,
		Snack: body,
	}
	if ate {
		next.Food = r.spawnFood(next, rng)
	}

	return Outcome{
		Next:         next,
		AteFood:      ate,
		SelfCollided: collided,
		Growth:       growth,
	}
}

// spawnFood picks a new food cell for the given post-move state.
func (r Rules) spawnFood(s State, rng *rand.Rand) Position {
	if r.FoodPlacement == FoodFree {
		var free []Position
		for y := range r.BoardSize {
			for x := range r.BoardSize {
				p := Position{X: x, Y: y}
				if !s.Occupies(p) {
					free = append(free, p)
				}
			}
		}
		if len(free) > 0 {
			return free[rng.Intn(len(free))]
		}
	}
	return Position{
		X: rng.Intn(r.BoardSize),
		Y: rng.Intn(r.BoardSize),
	}
}
