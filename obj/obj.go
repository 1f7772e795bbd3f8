// Package obj holds small helpers for map[string]any values of the kind
// produced by decoding JSON: dot-notation flattening, shallow equality and
// JS-style truthiness coercion, plus a panic-absorbing call wrapper.
package obj

import (
	"math"
	"reflect"
)

// Flatten folds one level of nested maps into dot-notation keys. Values
// nested deeper than one level are carried through untouched, so the result
// of Flatten is not necessarily flat all the way down; use FlattenDeep for
// that.
//
//	Flatten({"a": {"b": 1}, "c": 2}) // {"a.b": 1, "c": 2}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		nested, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		for nk, nv := range nested {
			out[k+"."+nk] = nv
		}
	}
	return out
}

// FlattenDeep folds arbitrarily nested maps into a single level of
// dot-notation keys. An empty nested map disappears from the result, since
// it holds no leaf values.
func FlattenDeep(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	flattenInto("", m, out)
	return out
}

func flattenInto(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// ShallowEqual reports whether a and b hold the same keys with equal
// top-level values. Values are compared with ==; values of different
// dynamic types, and values whose type is not comparable (slices, maps,
// functions), compare unequal rather than panicking.
func ShallowEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalValue(av, bv) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Truthy coerces any value to a boolean the way a condition in a script
// would: nil, false, zero numbers, NaN, empty strings and empty
// slices/arrays/maps are false; everything else is true. Non-nil pointers
// and interfaces are judged by the value they point at.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Truthy(rv.Elem().Interface())
	case reflect.Func:
		return !rv.IsNil()
	}
	return true
}
