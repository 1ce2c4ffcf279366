// Package dupes finds values that occur more than once in a sequence.
package dupes

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Of returns the set of values occurring at least twice in seq.
func Of[T comparable](seq []T) map[T]struct{} {
	seen := make(map[T]int, len(seq))
	res := map[T]struct{}{}
	for _, v := range seq {
		seen[v]++
		if seen[v] == 2 {
			res[v] = struct{}{}
		}
	}
	return res
}

// OfAny is Of for dynamically typed elements. Elements whose dynamic type
// cannot be a map key fail with ErrUnhashable.
func OfAny(seq []any) (map[any]struct{}, error) {
	for i, v := range seq {
		if v == nil {
			continue
		}
		if !hashable(reflect.ValueOf(v)) {
			return nil, fmt.Errorf("%w: element %d has type %T", ErrUnhashable, i, v)
		}
	}
	return Of(seq), nil
}

// hashable reports whether v can be used as a map key without panicking.
// The type must be comparable, which rules out arrays of any length over
// non-comparable elements; interfaces nested in arrays and structs are then
// checked by their dynamic value.
func hashable(v reflect.Value) bool {
	if v.Kind() == reflect.Interface {
		return v.IsNil() || hashable(v.Elem())
	}
	if !v.Type().Comparable() {
		return false
	}
	switch v.Kind() {
	case reflect.Array:
		for i := range v.Len() {
			if !hashable(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if !hashable(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

// Sorted returns the members of set in ascending order.
func Sorted[T cmp.Ordered](set map[T]struct{}) []T {
	res := make([]T, 0, len(set))
	for v := range set {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}
