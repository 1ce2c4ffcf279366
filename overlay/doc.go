// Package overlay provides read-only views that layer overrides and
// deletions over a base mapping without copying or mutating it.
//
// Each lookup on a [View] resolves three ways: a key set in the overlay
// yields the overlay value, a key deleted in the overlay is absent, and any
// other key falls through to the base.
//
//	base := overlay.Map[string, int]{"a": 1, "b": 2}
//	v := overlay.New(base, map[string]overlay.Entry[int]{
//	    "b": overlay.Set(3),
//	    "a": overlay.Deleted[int](),
//	})
//	v.Contains("a") // false
//	v.GetOr("b", 0) // 3
//
// Views satisfy [Base] themselves, so they stack.
package overlay
