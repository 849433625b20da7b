package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect represents a tracked computation that re-runs when its
// dependencies change. Effects run immediately when created; every run is
// tracked from scratch, so the dependency set always reflects the fields
// actually read on the latest run. A field read on run N but not on run
// N+1 no longer triggers the effect after run N+1 completes.
type Effect struct {
	id uint64

	// fn is the effect body. It may return a Cleanup that runs before
	// the next re-run and on Stop.
	fn func() Cleanup

	// cleanup is only touched with runMu held.
	cleanup Cleanup

	// runMu serializes the body, its cleanup, and Stop: flush turns run
	// on scheduler goroutines, so a Stop racing an in-flight re-run is
	// the normal case, not an edge case.
	runMu sync.Mutex

	// runningOn is the goroutine ID of an in-flight run, 0 when idle.
	// It lets Stop detect being called from inside the effect's own body.
	runningOn atomic.Uint64

	// sources are the (container, field) pairs and signals read during
	// the most recent run, recorded purely for un-subscription.
	sources   map[sourceKey]source
	sourcesMu sync.Mutex

	stopped atomic.Bool

	scheduler *Scheduler
}

// CreateEffect creates a tracked effect and runs it once synchronously.
// The effect re-runs whenever a container field or signal it read during
// its latest run changes. If fn returns a Cleanup, it is called before
// each re-run and when the effect is stopped.
//
// Example:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("Count is:", state.Get("count"))
//	    return nil
//	})
func CreateEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id:        nextID(),
		fn:        fn,
		sources:   make(map[sourceKey]source),
		scheduler: defaultScheduler,
	}
	e.run()
	return e
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// Alive implements Listener. The scheduler skips invocation for effects
// that were stopped after being enqueued.
func (e *Effect) Alive() bool {
	return !e.stopped.Load()
}

// Invalidate implements Listener: the scheduler delivers a notification
// by re-running the effect.
func (e *Effect) Invalidate() {
	e.run()
}

// run executes the effect body inside a tracked context. Old
// subscriptions are cleared before the body runs so the dependency set is
// rebuilt from scratch each run; stale dependencies are dropped rather
// than accumulating.
func (e *Effect) run() {
	e.runMu.Lock()
	e.runningOn.Store(getGoroutineID())
	defer func() {
		// A Stop issued during the body (from inside it or from another
		// goroutine that saw the run in flight) leaves the teardown to us.
		if e.stopped.Load() {
			e.teardown()
		}
		e.runningOn.Store(0)
		e.runMu.Unlock()
	}()

	if e.stopped.Load() {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.detachAll()

	RunTracked(e, func() {
		e.cleanup = e.fn()
	})
}

// teardown runs the pending cleanup and drops every subscription.
// Callers hold runMu.
func (e *Effect) teardown() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.detachAll()
}

// addSource records a source read during the current run. Reading the
// same field twice in one run records it once.
func (e *Effect) addSource(s source) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	k := s.key()
	if _, ok := e.sources[k]; ok {
		return
	}
	e.sources[k] = s
}

// detachAll removes this effect from every source recorded on the most
// recent run and clears the recorded set.
func (e *Effect) detachAll() {
	e.sourcesMu.Lock()
	sources := e.sources
	e.sources = make(map[sourceKey]source)
	e.sourcesMu.Unlock()

	for _, s := range sources {
		s.detach(e)
	}
}

// Stop tears the effect down: the pending cleanup runs and every live
// subscription is removed, so later writes to previously-read fields no
// longer invoke the body. Stopping twice is a no-op, as is a flush
// encountering an already-stopped effect. Stop called while a re-run is
// in flight waits for the run to finish; the run then performs the
// teardown itself, including when the body stops its own effect.
func (e *Effect) Stop() {
	if e.stopped.Swap(true) {
		return
	}

	if e.runningOn.Load() == getGoroutineID() {
		// Called from inside the effect's own body; run's exit path
		// finishes the teardown.
		return
	}

	e.runMu.Lock()
	defer e.runMu.Unlock()
	e.teardown()
}
