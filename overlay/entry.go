package overlay

// Entry is an overlay value: either a replacement value or a deletion.
// A key missing from the overlay altogether falls through to the base.
type Entry[V any] struct {
	val     V
	deleted bool
}

func Set[V any](v V) Entry[V] {
	return Entry[V]{val: v}
}

func Deleted[V any]() Entry[V] {
	return Entry[V]{deleted: true}
}

func (e Entry[V]) IsDeleted() bool { return e.deleted }

// Value returns the replacement value; ok is false for a deletion.
func (e Entry[V]) Value() (v V, ok bool) {
	if e.deleted {
		return v, false
	}
	return e.val, true
}
