package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive tracking state for one goroutine.
// Each goroutine has its own context so concurrent computations never
// observe each other's listener slot.
type trackingContext struct {
	// currentListener is what's currently tracking dependencies.
	// When a field is read, it subscribes this listener.
	// nil means no tracking (reads don't create subscriptions).
	currentListener Listener

	// batchDepth tracks nested Batch() calls.
	// When > 0, enqueued notifications are held until the outermost
	// batch completes.
	batchDepth int
}

// trackingContexts stores per-goroutine tracking contexts. Goroutine IDs
// are never reused, so an entry must be deleted as soon as its context
// returns to the zero state or the map grows with every goroutine that
// ever tracked — including the scheduler's flush turns.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the runtime stack header ("goroutine <id> ...").
// This is an implementation detail and must not leak past this package.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current
// goroutine, creating it on first use. Callers that mutate the context
// must call releaseTrackingContext once it may be back in its zero state.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// peekTrackingContext returns the current goroutine's context without
// creating one. Read-only paths use this so goroutines that never track
// never occupy a map entry.
func peekTrackingContext() *trackingContext {
	if ctx, ok := trackingContexts.Load(getGoroutineID()); ok {
		return ctx.(*trackingContext)
	}
	return nil
}

// releaseTrackingContext deletes the current goroutine's entry once the
// context is back in its zero state (no listener, no open batch).
func releaseTrackingContext() {
	gid := getGoroutineID()
	if v, ok := trackingContexts.Load(gid); ok {
		ctx := v.(*trackingContext)
		if ctx.currentListener == nil && ctx.batchDepth == 0 {
			trackingContexts.Delete(gid)
		}
	}
}

// CurrentListener returns the listener currently tracking dependencies
// on this goroutine, or nil when no tracked computation is running.
// Containers call this on every field read.
func CurrentListener() Listener {
	if ctx := peekTrackingContext(); ctx != nil {
		return ctx.currentListener
	}
	return nil
}

// setCurrentListener installs l as the current listener and returns the
// previous one so it can be restored.
func setCurrentListener(l Listener) Listener {
	if l == nil && peekTrackingContext() == nil {
		// Suspending tracking on a goroutine that has none: nothing to
		// save and no entry to create.
		return nil
	}
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	if l == nil {
		releaseTrackingContext()
	}
	return old
}

// RunTracked runs fn with l installed as the current listener, so every
// reactive read inside fn subscribes l. The previous listener is restored
// when fn returns, including when fn panics, so nested tracked runs
// restore the outer context correctly.
func RunTracked(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// Untracked runs fn with tracking suspended: reactive reads inside fn do
// not create subscriptions. The previous listener is restored afterward.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}
