package reactive

// Listener is anything that can be notified when a dependency changes.
// This interface is implemented by effects and watches; the renderer's
// DOM bindings are effects under the hood.
type Listener interface {
	// Invalidate is called by the scheduler during a flush to deliver
	// the notification. For effects, this re-runs the effect body.
	Invalidate()

	// ID returns a unique identifier for this listener.
	// Used for deduplication in subscriber sets and the flush queue.
	ID() uint64

	// Alive reports whether the listener may still be invoked.
	// The scheduler checks this before invocation so a listener that
	// was enqueued and then stopped is skipped, not called.
	Alive() bool
}

// Cleanup is a function returned by effects to clean up resources.
// It is called before the effect re-runs and when the effect is stopped.
type Cleanup func()

// source is one subscribable unit: a container field or a typed signal.
// Effects record their sources so they can detach on re-run and on stop.
type source interface {
	// detach removes the listener from this source's subscriber set.
	detach(l Listener)

	// key identifies the source for deduplication in an effect's
	// recorded source list.
	key() sourceKey
}

// sourceKey is a comparable (container id, field) pair. Typed signals use
// their own id with an empty field.
type sourceKey struct {
	id    uint64
	field string
}
