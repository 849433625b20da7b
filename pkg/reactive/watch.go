package reactive

// WatchOption configures Watch.
type WatchOption interface {
	isWatchOption()
	applyWatch(cfg *watchConfig)
}

type watchConfig struct {
	immediate bool
}

type watchOptionFunc func(*watchConfig)

func (f watchOptionFunc) isWatchOption()              {}
func (f watchOptionFunc) applyWatch(cfg *watchConfig) { f(cfg) }

// WatchImmediate causes the callback to be invoked once with
// (initial, initial) when the watch is created, before any change.
func WatchImmediate() WatchOption {
	return watchOptionFunc(func(cfg *watchConfig) {
		cfg.immediate = true
	})
}

// Watch layers value-change detection on top of a tracked effect. The
// getter runs inside a tracked run, so the watch re-evaluates whenever a
// dependency of the getter changes; the callback fires only when the
// getter's result actually differs from the previously observed value,
// and receives (new, old). Stop the returned effect to tear the watch
// down.
//
// Example:
//
//	stop := Watch(
//	    func() int { return count.Get() },
//	    func(newV, oldV int) { fmt.Println(oldV, "->", newV) },
//	)
//	defer stop.Stop()
func Watch[T any](getter func() T, callback func(newV, oldV T), opts ...WatchOption) *Effect {
	var cfg watchConfig
	for _, opt := range opts {
		opt.applyWatch(&cfg)
	}

	var prev T
	first := true

	return CreateEffect(func() Cleanup {
		v := getter()
		if first {
			first = false
			prev = v
			if cfg.immediate {
				// Change detection has nothing to compare yet; the
				// immediate call observes the initial value twice.
				Untracked(func() { callback(v, v) })
			}
			return nil
		}
		if !sameValue(prev, v) {
			old := prev
			prev = v
			Untracked(func() { callback(v, old) })
		}
		return nil
	})
}
