package reactive

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Reactive is a container of named mutable fields. Reading a field while
// a tracked computation is running subscribes that computation to the
// field; writing a field with a genuinely new value enqueues the field's
// subscribers for the next flush. Writes that leave the value unchanged
// (identity for reference kinds, == for comparable values) are elided:
// no mutation, no notification.
type Reactive struct {
	id uint64

	mu sync.RWMutex

	// fields maps field name to current value.
	fields map[string]any

	// subs maps field name to its subscriber set. Sets are identity
	// based and deduplicated by listener, so re-reading a field inside
	// one tracked run registers the computation once.
	subs map[string]mapset.Set[Listener]

	scheduler *Scheduler
}

// NewReactive wraps an initial field set in a reactive container.
// The map is copied; later mutations of the argument are not observed.
func NewReactive(initial map[string]any) *Reactive {
	fields := make(map[string]any, len(initial))
	for k, v := range initial {
		fields[k] = v
	}
	return &Reactive{
		id:        nextID(),
		fields:    fields,
		subs:      make(map[string]mapset.Set[Listener], len(initial)),
		scheduler: defaultScheduler,
	}
}

// ID returns the unique identifier for this container.
func (r *Reactive) ID() uint64 {
	return r.id
}

// Get returns the current value of field and, when a tracked computation
// is running, registers it as a subscriber of the field. Registration is
// idempotent. Reads outside a tracked run have no side effect. Reading a
// field that was never set returns nil.
func (r *Reactive) Get(field string) any {
	r.mu.RLock()
	value := r.fields[field]
	r.mu.RUnlock()

	// Track after releasing the value lock to keep lock ordering flat.
	if l := CurrentListener(); l != nil {
		r.subscribe(field, l)
		if e, ok := l.(*Effect); ok {
			e.addSource(&fieldSource{container: r, field: field})
		}
	}

	return value
}

// Peek returns the current value of field without subscribing.
func (r *Reactive) Peek(field string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fields[field]
}

// Set updates field and enqueues its subscribers for the next flush.
// When the new value equals the current one the write is a no-op: the
// stored value is untouched and nothing is enqueued.
func (r *Reactive) Set(field string, value any) {
	r.mu.Lock()
	if sameValue(r.fields[field], value) {
		r.mu.Unlock()
		return
	}
	r.fields[field] = value

	// Copy before notify so no lock is held while enqueueing.
	var targets []Listener
	if set, ok := r.subs[field]; ok {
		targets = set.ToSlice()
	}
	r.mu.Unlock()

	for _, l := range targets {
		r.scheduler.Enqueue(l)
	}
}

// Fields returns the container's field names, unordered.
func (r *Reactive) Fields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	return names
}

// subscribe adds l to field's subscriber set. Adding an already-present
// listener is a no-op (set semantics).
func (r *Reactive) subscribe(field string, l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[field]
	if !ok {
		set = mapset.NewThreadUnsafeSet[Listener]()
		r.subs[field] = set
	}
	set.Add(l)
}

// unsubscribe removes l from field's subscriber set.
func (r *Reactive) unsubscribe(field string, l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.subs[field]; ok {
		set.Remove(l)
	}
}

// subscriberCount reports the cardinality of field's subscriber set.
func (r *Reactive) subscriberCount(field string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if set, ok := r.subs[field]; ok {
		return set.Cardinality()
	}
	return 0
}

// fieldSource adapts one (container, field) pair to the source interface
// recorded by effects for cleanup.
type fieldSource struct {
	container *Reactive
	field     string
}

func (f *fieldSource) detach(l Listener) {
	f.container.unsubscribe(f.field, l)
}

func (f *fieldSource) key() sourceKey {
	return sourceKey{id: f.container.id, field: f.field}
}
