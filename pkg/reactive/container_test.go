package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactiveGetSet(t *testing.T) {
	state := NewReactive(map[string]any{"count": 0, "name": "rynex"})

	assert.Equal(t, 0, state.Get("count"))
	assert.Equal(t, "rynex", state.Get("name"))
	assert.Nil(t, state.Get("missing"))

	state.Set("count", 5)
	assert.Equal(t, 5, state.Get("count"))
}

func TestReactiveNoOpWriteElision(t *testing.T) {
	state := NewReactive(map[string]any{"count": 0})

	runs := 0
	e := CreateEffect(func() Cleanup {
		_ = state.Get("count")
		runs++
		return nil
	})
	defer e.Stop()

	assert.Equal(t, 1, runs)

	state.Set("count", 0)
	Settle()
	assert.Equal(t, 1, runs, "write of equal value must not notify")

	state.Set("count", 1)
	Settle()
	assert.Equal(t, 2, runs)
}

func TestReactiveIdentityEqualityForReferences(t *testing.T) {
	shared := map[string]int{"a": 1}
	state := NewReactive(map[string]any{"obj": shared})

	runs := 0
	e := CreateEffect(func() Cleanup {
		_ = state.Get("obj")
		runs++
		return nil
	})
	defer e.Stop()

	// Same backing object: identity equal, even with mutated contents.
	shared["a"] = 2
	state.Set("obj", shared)
	Settle()
	assert.Equal(t, 1, runs)

	// Distinct object with equal contents: identity differs, notifies.
	state.Set("obj", map[string]int{"a": 2})
	Settle()
	assert.Equal(t, 2, runs)
}

func TestReactiveSingleRegistrationPerRun(t *testing.T) {
	state := NewReactive(map[string]any{"count": 0})

	e := CreateEffect(func() Cleanup {
		for i := 0; i < 10; i++ {
			_ = state.Get("count")
		}
		return nil
	})
	defer e.Stop()

	assert.Equal(t, 1, state.subscriberCount("count"),
		"N reads in one tracked run must register once")
}

func TestReactivePeekDoesNotSubscribe(t *testing.T) {
	state := NewReactive(map[string]any{"count": 0})

	runs := 0
	e := CreateEffect(func() Cleanup {
		_ = state.Peek("count")
		runs++
		return nil
	})
	defer e.Stop()

	state.Set("count", 1)
	Settle()
	assert.Equal(t, 1, runs)
	assert.Equal(t, 0, state.subscriberCount("count"))
}

func TestReactiveReadOutsideTrackedRun(t *testing.T) {
	state := NewReactive(map[string]any{"count": 0})

	// No tracked computation is running, so the read has no side effect.
	_ = state.Get("count")
	assert.Equal(t, 0, state.subscriberCount("count"))
}

func TestReactiveCountLogScenario(t *testing.T) {
	state := NewReactive(map[string]any{"count": 0})

	var log []any
	e := CreateEffect(func() Cleanup {
		log = append(log, state.Get("count"))
		return nil
	})
	defer e.Stop()

	assert.Equal(t, []any{0}, log)

	state.Set("count", 0)
	Settle()
	assert.Equal(t, []any{0}, log, "no-op write must leave the log unchanged")

	state.Set("count", 1)
	Settle()
	assert.Equal(t, []any{0, 1}, log)
}

func TestReactiveFields(t *testing.T) {
	state := NewReactive(map[string]any{"a": 1, "b": 2})
	assert.ElementsMatch(t, []string{"a", "b"}, state.Fields())

	state.Set("c", 3)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, state.Fields())
}

func TestReactiveInitialMapIsCopied(t *testing.T) {
	initial := map[string]any{"count": 0}
	state := NewReactive(initial)

	initial["count"] = 99
	assert.Equal(t, 0, state.Get("count"))
}
