package reactive

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Signal is a typed single-value reactive container. It shares the
// container's tracking and delivery contract: reads subscribe the current
// listener, writes of a genuinely new value enqueue subscribers for the
// next flush, and no-op writes are elided.
type Signal[T any] struct {
	id uint64

	mu    sync.RWMutex
	value T
	subs  mapset.Set[Listener]

	// equal overrides the default equality rule when non-nil.
	equal func(T, T) bool

	scheduler *Scheduler
}

// NewSignal creates a signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:        nextID(),
		value:     initial,
		subs:      mapset.NewThreadUnsafeSet[Listener](),
		scheduler: defaultScheduler,
	}
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	if l := CurrentListener(); l != nil {
		s.mu.Lock()
		s.subs.Add(l)
		s.mu.Unlock()

		if e, ok := l.(*Effect); ok {
			e.addSource(s)
		}
	}

	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and enqueues subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	if s.equals(s.value, value) {
		s.mu.Unlock()
		return
	}
	s.value = value
	targets := s.subs.ToSlice()
	s.mu.Unlock()

	for _, l := range targets {
		s.scheduler.Enqueue(l)
	}
}

// Update applies fn to the current value and stores the result,
// notifying subscribers if the value changed.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	if s.equals(s.value, next) {
		s.mu.Unlock()
		return
	}
	s.value = next
	targets := s.subs.ToSlice()
	s.mu.Unlock()

	for _, l := range targets {
		s.scheduler.Enqueue(l)
	}
}

// WithEquals returns the signal configured with a custom equality
// function, for types where the default rule is too loose or too strict.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return sameValue(a, b)
}

// detach implements source.
func (s *Signal[T]) detach(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs.Remove(l)
}

// key implements source.
func (s *Signal[T]) key() sourceKey {
	return sourceKey{id: s.id}
}

// subscriberCount reports the signal's subscriber-set cardinality.
func (s *Signal[T]) subscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subs.Cardinality()
}
