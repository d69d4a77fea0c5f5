package pubsub

import "reflect"

// isNil reports whether v is a nil interface or a typed nil pointer, map,
// slice, function, or channel. Generic arguments arrive boxed in non-nil
// interfaces even when the underlying value is nil, so a plain comparison
// is not enough. Zero values of non-nilable types (empty structs, empty
// strings, 0) are valid events.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
