package overlay

import (
	"fmt"
	"iter"
	"maps"
)

// View is immutable once created and safe for concurrent readers as long as
// its base is.
type View[K comparable, V any] struct {
	base      Base[K, V]
	overrides map[K]Entry[V]
}

// New returns a view of base with overrides applied. The overrides map is
// copied; base is not.
func New[K comparable, V any](base Base[K, V], overrides map[K]Entry[V]) *View[K, V] {
	return &View[K, V]{
		base:      base,
		overrides: maps.Clone(overrides),
	}
}

func (v *View[K, V]) Lookup(k K) (V, bool) {
	if e, ok := v.overrides[k]; ok {
		return e.Value()
	}
	if v.base == nil {
		var zero V
		return zero, false
	}
	return v.base.Lookup(k)
}

func (v *View[K, V]) Contains(k K) bool {
	_, ok := v.Lookup(k)
	return ok
}

// Get returns the value for k, or an error wrapping ErrKeyNotFound if k is
// deleted in the overlay or missing from the base.
func (v *View[K, V]) Get(k K) (V, error) {
	val, ok := v.Lookup(k)
	if !ok {
		return val, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return val, nil
}

// GetOr returns the value for k, or def if k is deleted or missing.
func (v *View[K, V]) GetOr(k K, def V) V {
	if val, ok := v.Lookup(k); ok {
		return val
	}
	return def
}

// Keys yields the keys present in the view, base keys first, then keys the
// overlay sets. Keys held only by a base that is not Keyed are not yielded.
func (v *View[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		kb, keyed := v.base.(Keyed[K])
		if keyed {
			for k := range kb.Keys() {
				if e, over := v.overrides[k]; over && e.IsDeleted() {
					continue
				}
				if !yield(k) {
					return
				}
			}
		}
		for k, e := range v.overrides {
			if e.IsDeleted() || (keyed && v.inBase(k)) {
				continue
			}
			if !yield(k) {
				return
			}
		}
	}
}

func (v *View[K, V]) inBase(k K) bool {
	if v.base == nil {
		return false
	}
	_, ok := v.base.Lookup(k)
	return ok
}

// Flatten copies the view into a new map. Only keys yielded by Keys are
// included.
func Flatten[K comparable, V any](v *View[K, V]) map[K]V {
	res := map[K]V{}
	for k := range v.Keys() {
		if val, ok := v.Lookup(k); ok {
			res[k] = val
		}
	}
	return res
}
