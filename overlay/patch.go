package overlay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/signadot/xlkit/debug"
)

// FromMergePatch builds a view of base from a JSON merge patch (RFC 7396).
// A top-level null deletes the key; a top-level object is merged with the
// base value for that key into a fresh value, leaving base untouched.
func FromMergePatch(base Base[string, any], patch []byte) (*View[string, any], error) {
	dec := json.NewDecoder(bytes.NewReader(patch))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrBadPatch)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: patch must be an object, got %T", ErrBadPatch, doc)
	}
	overrides := make(map[string]Entry[any], len(obj))
	for k, pv := range obj {
		if pv == nil {
			overrides[k] = Deleted[any]()
			continue
		}
		var bv any
		if base != nil {
			bv, _ = base.Lookup(k)
		}
		overrides[k] = Set(mergeValue(bv, pv))
	}
	if debug.Overlay() {
		debug.Logf("merge patch overlay: %v\n", obj)
	}
	return New(base, overrides), nil
}

func mergeValue(target, patch any) any {
	p, ok := patch.(map[string]any)
	if !ok {
		return patch
	}
	t, _ := target.(map[string]any)
	res := maps.Clone(t)
	if res == nil {
		res = map[string]any{}
	}
	for k, pv := range p {
		if pv == nil {
			delete(res, k)
			continue
		}
		res[k] = mergeValue(res[k], pv)
	}
	return res
}
