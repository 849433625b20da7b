// Package reactive provides the reactive core for the Rynex framework.
//
// The reactive system provides fine-grained reactivity: dependencies are
// tracked automatically at runtime. Reading a container field (or a typed
// Signal) while a tracked computation is running subscribes that
// computation to the field's changes.
//
// # Core Types
//
// Reactive is a container of named fields:
//
//	state := NewReactive(map[string]any{"count": 0})
//	value := state.Get("count")  // Read (subscribes current listener)
//	state.Set("count", 5)        // Write (enqueues subscribers)
//
// Signal[T] is a typed single-value container:
//
//	count := NewSignal(0)
//	count.Get()
//	count.Set(5)
//
// Effect runs side effects when dependencies change:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("Count is:", state.Get("count"))
//	    return nil
//	})
//
// Watch layers value-change detection on top of an effect:
//
//	Watch(func() int { return count.Get() }, func(newV, oldV int) {
//	    fmt.Println(oldV, "->", newV)
//	}, WatchImmediate())
//
// # Delivery Model
//
// Writes never invoke subscribers synchronously. Changed fields enqueue
// their subscribers onto a process-wide queue that flushes in a deferred
// turn, invoking each pending subscriber at most once per flush no matter
// how many fields changed. Writes made while a flush is running land in
// the next turn, never the one currently flushing. Ordering across
// distinct subscribers within one flush is unspecified.
//
// Use Batch to group several synchronous writes into a single delivery
// pass, and Settle to drain all pending turns deterministically (host
// loops and tests).
//
// # Thread Safety
//
// Container, signal, and queue state are mutex-protected so the package
// is safe under real OS threads. The tracking context is per-goroutine;
// computations spawned onto other goroutines track independently.
package reactive
