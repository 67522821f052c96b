package theme

import "sync"

// Event is a signal fanned out by the Bus.
type Event interface{ themeEvent() }

// PaletteChanged carries a newly resolved palette.
type PaletteChanged struct {
	Palette Palette
}

// BaseModeChanged carries the effective mode after a base-mode change.
type BaseModeChanged struct {
	Mode EffectiveMode
}

func (PaletteChanged) themeEvent()  {}
func (BaseModeChanged) themeEvent() {}

// Bus fans theme events out to any number of independent subscribers.
// Every subscriber observes every event published while it is subscribed,
// in publish order — no coalescing, no drops. A subscriber that misses a
// mode change would keep rendering a stale palette with nothing to trigger
// a refresh, so delivery is buffered per subscriber rather than dropped
// when a receiver is slow. The bus holds no theme state of its own.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]*Subscription
}

// Subscription is one subscriber's ordered event stream. Receive from C;
// call Cancel when done.
type Subscription struct {
	C chan Event

	bus *Bus
	id  int

	mu     sync.Mutex
	queue  []Event
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Subscribe registers a new subscriber. Events published before Subscribe
// returns are not delivered to it.
func (b *Bus) Subscribe() *Subscription {
	sub := &Subscription{
		C:    make(chan Event),
		bus:  b,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	b.next++
	sub.id = b.next
	b.subs[sub.id] = sub
	b.mu.Unlock()

	go sub.drain()
	return sub
}

// Publish delivers an event to every current subscriber in order.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		sub.enqueue(ev)
	}
}

// Cancel removes the subscription and closes its channel once queued
// events have been delivered or discarded.
func (s *Subscription) Cancel() {
	s.bus.mu.Lock()
	delete(s.bus.subs, s.id)
	s.bus.mu.Unlock()

	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
	s.mu.Unlock()
	s.signal()
}

func (s *Subscription) enqueue(ev Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
	s.signal()
}

func (s *Subscription) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// drain moves queued events onto C in FIFO order until canceled.
func (s *Subscription) drain() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.mu.Unlock()
			<-s.wake
			s.mu.Lock()
		}
		if s.closed {
			s.mu.Unlock()
			close(s.C)
			return
		}
		ev := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.C <- ev:
		case <-s.done:
			close(s.C)
			return
		}
	}
}
