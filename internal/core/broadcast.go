package core

import "sync"

// Broadcast fans out published values to every subscriber.
// New subscribers receive the latest value first, then everything published
// after they joined. Each subscriber has its own unbounded queue, so Publish
// never blocks on a slow reader and no value is dropped.
type Broadcast[T any] struct {
	mu      sync.Mutex
	last    T
	hasLast bool
	closed  bool
	subs    map[*Subscriber[T]]struct{}
}

// NewBroadcast creates a broadcast seeded with an initial value.
func NewBroadcast[T any](initial T) *Broadcast[T] {
	return &Broadcast[T]{
		last:    initial,
		hasLast: true,
		subs:    make(map[*Subscriber[T]]struct{}),
	}
}

// Publish replaces the latest value and queues it for all subscribers.
// Publishing to a closed broadcast is ignored.
func (b *Broadcast[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.last = v
	b.hasLast = true
	for s := range b.subs {
		s.push(v)
	}
}

// Last returns the most recently published value.
func (b *Broadcast[T]) Last() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Subscribe registers a new subscriber. Its channel yields the latest value
// immediately. On a closed broadcast the channel is already closed.
func (b *Broadcast[T]) Subscribe() *Subscriber[T] {
	s := newSubscriber[T]()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		s.done = true
		close(s.out)
		return s
	}
	s.detach = func() { b.remove(s) }
	if b.hasLast {
		s.push(b.last)
	}
	b.subs[s] = struct{}{}
	go s.pump()
	return s
}

// Close closes every subscriber after its queue drains.
// Further Publish calls are ignored and new subscribers get a closed channel.
func (b *Broadcast[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		s.finish()
	}
	b.subs = nil
}

// Len returns the number of active subscribers.
func (b *Broadcast[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcast[T]) remove(s *Subscriber[T]) {
	b.mu.Lock()
	if b.subs != nil {
		delete(b.subs, s)
	}
	b.mu.Unlock()
	s.finish()
}

// Subscriber is one receiving end of a Broadcast.
// Its pump goroutine holds the queue until C is drained to its close or
// Cancel is called, including after the broadcast has closed.
type Subscriber[T any] struct {
	out    chan T
	wake   chan struct{}
	stop   chan struct{}
	detach func()

	mu      sync.Mutex
	queue   []T
	done    bool
	stopped sync.Once
}

func newSubscriber[T any]() *Subscriber[T] {
	return &Subscriber[T]{
		out:  make(chan T),
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
}

// C returns the receive channel. It is closed once the broadcast closes
// (after queued values are delivered) or the subscriber is cancelled.
func (s *Subscriber[T]) C() <-chan T {
	return s.out
}

// Cancel detaches the subscriber and closes its channel.
// Values still queued are discarded.
func (s *Subscriber[T]) Cancel() {
	s.stopped.Do(func() { close(s.stop) })
	if s.detach != nil {
		s.detach()
	}
}

func (s *Subscriber[T]) push(v T) {
	s.mu.Lock()
	s.queue = append(s.queue, v)
	s.mu.Unlock()
	s.signal()
}

// finish marks the queue complete; the pump closes the channel once it drains.
func (s *Subscriber[T]) finish() {
	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
	s.signal()
}

func (s *Subscriber[T]) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump moves queued values to the output channel in order.
func (s *Subscriber[T]) pump() {
	defer close(s.out)
	for {
		select {
		case <-s.stop:
			return
		default:
		}

		s.mu.Lock()
		if len(s.queue) == 0 {
			done := s.done
			s.mu.Unlock()
			if done {
				return
			}
			select {
			case <-s.wake:
			case <-s.stop:
				return
			}
			continue
		}
		v := s.queue[0]
		var zero T
		s.queue[0] = zero
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- v:
		case <-s.stop:
			return
		}
	}
}
