package reactive

import (
	"log/slog"
	"sync"
)

// Scheduler is the notification/batching queue. Writes enqueue the
// changed field's subscribers here; the queue flushes in a deferred turn,
// invoking each pending listener at most once per flush. Listeners
// enqueued while a flush is running land in the next turn, never the one
// currently flushing, so a cascade of writes can never recurse unboundedly
// within a single turn.
type Scheduler struct {
	mu sync.Mutex

	// pending is the next turn's queue, insertion-ordered.
	// pendingIDs mirrors it for O(1) deduplication by listener ID.
	pending    []Listener
	pendingIDs map[uint64]struct{}

	// flushing is true while a turn's snapshot is being invoked.
	flushing bool

	// scheduled is true when a deferred flush has been requested for the
	// current turn but has not started yet.
	scheduled bool

	// idle is broadcast whenever the scheduler returns to quiescence.
	idle *sync.Cond

	logger *slog.Logger
}

// NewScheduler creates an empty scheduler. Most callers use the
// package-level Default scheduler; separate instances exist for tests
// and embedded hosts that want isolated queues.
func NewScheduler() *Scheduler {
	s := &Scheduler{
		pendingIDs: make(map[uint64]struct{}),
		logger:     slog.Default(),
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// defaultScheduler is the process-wide queue used by containers, signals,
// and effects created through the package-level API.
var defaultScheduler = NewScheduler()

// Default returns the process-wide scheduler.
func Default() *Scheduler {
	return defaultScheduler
}

// SetLogger replaces the logger used to report recovered listener panics.
func (s *Scheduler) SetLogger(l *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l != nil {
		s.logger = l
	}
}

// Enqueue adds l to the pending set for the upcoming turn. Enqueueing an
// already-pending listener is a no-op, so each listener is invoked at
// most once per flush regardless of how many fields changed. The first
// enqueue of a turn schedules a deferred flush, unless a batch is open on
// the calling goroutine (the batch close schedules it instead).
func (s *Scheduler) Enqueue(l Listener) {
	if l == nil {
		return
	}

	s.mu.Lock()
	id := l.ID()
	if _, ok := s.pendingIDs[id]; ok {
		s.mu.Unlock()
		return
	}
	s.pendingIDs[id] = struct{}{}
	s.pending = append(s.pending, l)

	// Inside a batch on this goroutine, or while a flush is running,
	// the pending set is picked up later: by the batch close or by the
	// turn loop's next iteration.
	ctx := peekTrackingContext()
	if (ctx != nil && ctx.batchDepth > 0) || s.flushing || s.scheduled {
		s.mu.Unlock()
		return
	}
	s.scheduled = true
	s.mu.Unlock()

	go s.runTurns()
}

// kick schedules a deferred flush if there is pending work and none is
// already scheduled or running. Called when the outermost batch closes.
func (s *Scheduler) kick() {
	s.mu.Lock()
	if len(s.pending) == 0 || s.flushing || s.scheduled {
		s.mu.Unlock()
		return
	}
	s.scheduled = true
	s.mu.Unlock()

	go s.runTurns()
}

// runTurns drains the queue one turn at a time. Each iteration snapshots
// the pending set and invokes it; enqueues made during the snapshot's
// invocation accumulate for the following iteration, giving strict turn
// separation.
func (s *Scheduler) runTurns() {
	s.mu.Lock()
	s.scheduled = false
	for len(s.pending) > 0 {
		batch := s.pending
		s.pending = nil
		s.pendingIDs = make(map[uint64]struct{}, len(batch))
		s.flushing = true
		s.mu.Unlock()

		for _, l := range batch {
			s.invoke(l)
		}

		s.mu.Lock()
		s.flushing = false
	}
	s.idle.Broadcast()
	s.mu.Unlock()
}

// invoke delivers one notification. Stopped listeners are skipped, and a
// panicking listener is contained: the panic is recovered and logged so
// sibling listeners in the same flush still run.
func (s *Scheduler) invoke(l Listener) {
	if !l.Alive() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			logger := s.logger
			s.mu.Unlock()
			logger.Error("rynex: listener panicked during flush",
				"listener", l.ID(), "panic", r)
		}
	}()
	l.Invalidate()
}

// Settle blocks until the queue is quiescent: no pending listeners, no
// flush in progress, and no flush scheduled. Host loops call this after
// dispatching an event; tests call it to observe post-flush state.
func (s *Scheduler) Settle() {
	s.mu.Lock()
	for {
		if len(s.pending) == 0 && !s.flushing && !s.scheduled {
			s.mu.Unlock()
			return
		}
		if len(s.pending) > 0 && !s.flushing && !s.scheduled {
			// Nothing will drive this turn (e.g. enqueued under a
			// batch that was closed on another goroutine); drive it
			// here instead of waiting.
			s.scheduled = true
			s.mu.Unlock()
			s.runTurns()
			s.mu.Lock()
			continue
		}
		s.idle.Wait()
	}
}

// Batch groups multiple synchronous writes into a single delivery pass.
// Notifications enqueued inside fn are held until the outermost batch
// completes, then flushed in one deferred turn: a listener subscribed to
// several written fields is invoked once, not once per field.
//
// Batches nest; only the outermost close schedules the flush. The batch
// holds only writes made on the calling goroutine: writes fn makes from
// goroutines it spawns enqueue normally and are not grouped.
func Batch(fn func()) {
	ctx := getTrackingContext()
	ctx.batchDepth++
	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			releaseTrackingContext()
			defaultScheduler.kick()
		}
	}()
	fn()
}

// Settle drains the default scheduler. See Scheduler.Settle.
func Settle() {
	defaultScheduler.Settle()
}
