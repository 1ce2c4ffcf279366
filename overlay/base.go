package overlay

import "iter"

// Base is the capability a View needs from the mapping it overlays.
type Base[K comparable, V any] interface {
	Lookup(K) (V, bool)
}

// Keyed is implemented by bases that can enumerate their keys.
type Keyed[K comparable] interface {
	Keys() iter.Seq[K]
}

// Map adapts a Go map to Base. The map is used by reference.
type Map[K comparable, V any] map[K]V

func (m Map[K, V]) Lookup(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}
}
