package reactive

import "reflect"

// sameValue reports whether a write of b over current value a is a no-op.
// Reference kinds (maps, slices, funcs, channels, pointers) compare by
// identity; comparable values compare with ==. Non-comparable values that
// are not reference kinds (e.g. structs holding slices) are never
// considered equal, so writes of such values always notify.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		// Identity, not deep equality: assigning the same backing
		// object is a no-op even when its contents changed.
		return ra.Pointer() == rb.Pointer()
	case reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}

	if !ra.Type().Comparable() {
		return false
	}
	return a == b
}
