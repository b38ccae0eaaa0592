package snake

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack/internal/core"
)

// ticker is the tick source driving the loop.
type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Engine runs the snake on a fixed tick.
// The loop goroutine is the only writer of game state; SetDirection records
// intent that the next tick consumes.
type Engine struct {
	opts   Options
	rules  Rules
	rng    *rand.Rand
	logger *log.Logger
	states *core.Broadcast[State]

	mu  sync.Mutex
	dir Direction

	reset    chan struct{}
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New validates opts, publishes the initial snapshot and starts ticking.
// The loop stops on Stop or when ctx is cancelled.
func New(ctx context.Context, opts Options) (*Engine, error) {
	return newEngine(ctx, opts, newTimeTicker)
}

func newEngine(ctx context.Context, opts Options, newTicker func(time.Duration) ticker) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		opts:   opts,
		rules:  opts.rules(),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
		states: core.NewBroadcast(opts.initialState()),
		dir:    opts.InitialDirection,
		reset:  make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	t := newTicker(opts.TickPeriod)
	go e.run(ctx, t)

	e.logger.Info("engine started",
		"board", opts.BoardSize,
		"tick", opts.TickPeriod,
		"direction", opts.InitialDirection)
	return e, nil
}

// SetDirection records the direction the next tick moves in.
// Under DirectionsCardinal anything other than the four unit vectors is
// ignored. Calls after Stop have no effect.
func (e *Engine) SetDirection(d Direction) {
	if e.opts.DirectionPolicy == DirectionsCardinal && !d.IsCardinal() {
		e.logger.Debug("direction ignored", "direction", d)
		return
	}
	e.mu.Lock()
	e.dir = d
	e.mu.Unlock()
}

// Direction returns the most recently requested direction.
func (e *Engine) Direction() Direction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dir
}

// Subscribe returns a stream that yields the current snapshot and then
// every snapshot produced afterwards. After Stop the stream is closed.
func (e *Engine) Subscribe() *core.Subscriber[State] {
	return e.states.Subscribe()
}

// Current returns the latest published snapshot.
func (e *Engine) Current() State {
	return e.states.Last()
}

// Reset restores the initial snapshot, direction and growth target on the
// next loop iteration. It has no effect once the engine has stopped.
func (e *Engine) Reset() {
	select {
	case <-e.done:
		return
	default:
	}
	select {
	case e.reset <- struct{}{}:
	default:
		// a reset is already pending
	}
}

// Stop halts the loop and closes all state streams. It is safe to call
// more than once and from any goroutine.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.quit) })
	<-e.done
}

// Done is closed once the loop has exited.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Options returns the effective options the engine runs with.
func (e *Engine) Options() Options {
	return e.opts
}

func (e *Engine) run(ctx context.Context, t ticker) {
	defer close(e.done)
	defer e.states.Close()
	defer t.Stop()

	cur := e.states.Last()
	growth := e.opts.DefaultLength

	for {
		select {
		case <-e.quit:
			e.logger.Info("engine stopped", "tick", cur.Tick)
			return
		case <-ctx.Done():
			e.logger.Info("engine cancelled", "tick", cur.Tick, "err", ctx.Err())
			return
		case <-e.reset:
			next := e.opts.initialState()
			next.Tick = cur.Tick + 1
			e.mu.Lock()
			e.dir = e.opts.InitialDirection
			e.mu.Unlock()
			growth = e.opts.DefaultLength
			cur = next
			e.states.Publish(cur)
			e.logger.Info("engine reset", "tick", cur.Tick)
		case <-t.C():
			out := e.rules.Advance(cur, e.Direction(), growth, e.rng)
			if out.AteFood {
				e.logger.Debug("food eaten",
					"tick", out.Next.Tick,
					"head", out.Next.Head(),
					"food", out.Next.Food,
					"growth", out.Growth)
			}
			if out.SelfCollided {
				e.logger.Debug("self collision",
					"tick", out.Next.Tick,
					"head", out.Next.Head(),
					"length", cur.Len())
			}
			growth = out.Growth
			cur = out.Next
			e.states.Publish(cur)
		}
	}
}
