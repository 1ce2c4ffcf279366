package overlay

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exampleView() (Map[string, int], *View[string, int]) {
	base := Map[string, int]{"a": 1, "b": 2}
	return base, New(base, map[string]Entry[int]{
		"b": Set(3),
		"c": Deleted[int](),
	})
}

func TestView(t *testing.T) {
	_, v := exampleView()
	if !v.Contains("a") {
		t.Error(`Contains("a") = false`)
	}
	if got, err := v.Get("b"); err != nil || got != 3 {
		t.Errorf(`Get("b") = %d, %v; want 3`, got, err)
	}
	if v.Contains("c") {
		t.Error(`Contains("c") = true`)
	}
	if got, err := v.Get("a"); err != nil || got != 1 {
		t.Errorf(`Get("a") = %d, %v; want 1`, got, err)
	}
	if got := v.GetOr("c", 99); got != 99 {
		t.Errorf(`GetOr("c", 99) = %d`, got)
	}
	if _, err := v.Get("c"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf(`Get("c") error = %v, want ErrKeyNotFound`, err)
	}
}

func TestViewResolution(t *testing.T) {
	base := Map[string, int]{"kept": 1, "over": 2, "gone": 3}
	v := New(base, map[string]Entry[int]{
		"over":  Set(20),
		"gone":  Deleted[int](),
		"added": Set(0),
		"ghost": Deleted[int](),
	})
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"kept", 1, true},
		{"over", 20, true},
		{"gone", 0, false},
		{"added", 0, true},
		{"ghost", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := v.Contains(tt.key); got != tt.ok {
				t.Errorf("Contains = %v, want %v", got, tt.ok)
			}
			got, err := v.Get(tt.key)
			if tt.ok {
				if err != nil || got != tt.want {
					t.Errorf("Get = %d, %v; want %d", got, err, tt.want)
				}
			} else if !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("Get error = %v, want ErrKeyNotFound", err)
			}
			if got := v.GetOr(tt.key, -1); tt.ok && got != tt.want || !tt.ok && got != -1 {
				t.Errorf("GetOr = %d", got)
			}
		})
	}
}

func TestViewDoesNotTouchBase(t *testing.T) {
	base, v := exampleView()
	_ = Flatten(v)
	want := Map[string, int]{"a": 1, "b": 2}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("base changed (-want +got):\n%s", diff)
	}
}

func TestViewCopiesOverrides(t *testing.T) {
	overrides := map[string]Entry[int]{"a": Set(5)}
	v := New(Map[string, int]{}, overrides)
	overrides["a"] = Deleted[int]()
	overrides["b"] = Set(6)
	if got := v.GetOr("a", 0); got != 5 {
		t.Errorf(`GetOr("a") = %d, want 5`, got)
	}
	if v.Contains("b") {
		t.Error(`Contains("b") after mutating the caller's map`)
	}
}

func TestViewSeesBaseByReference(t *testing.T) {
	base := Map[string, int]{}
	v := New[string, int](base, nil)
	base["late"] = 7
	if got := v.GetOr("late", 0); got != 7 {
		t.Errorf(`GetOr("late") = %d, want 7`, got)
	}
}

func TestViewNilBase(t *testing.T) {
	v := New[string, int](nil, map[string]Entry[int]{"x": Set(1)})
	if !v.Contains("x") || v.Contains("y") {
		t.Error("unexpected containment with nil base")
	}
	if diff := cmp.Diff(map[string]int{"x": 1}, Flatten(v)); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestStackedViews(t *testing.T) {
	_, v := exampleView()
	top := New[string, int](v, map[string]Entry[int]{
		"a": Deleted[int](),
		"c": Set(30),
	})
	want := map[string]int{"b": 3, "c": 30}
	if diff := cmp.Diff(want, Flatten(top)); diff != "" {
		t.Errorf("Flatten(top) mismatch (-want +got):\n%s", diff)
	}
}

func TestKeys(t *testing.T) {
	base := Map[string, int]{"a": 1, "b": 2}
	v := New(base, map[string]Entry[int]{
		"a": Deleted[int](),
		"b": Set(9),
		"c": Set(3),
		"d": Deleted[int](),
	})
	keys := slices.Sorted(v.Keys())
	if diff := cmp.Diff([]string{"b", "c"}, keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

type lookupOnly map[string]int

func (l lookupOnly) Lookup(k string) (int, bool) {
	v, ok := l[k]
	return v, ok
}

func TestKeysUnkeyedBase(t *testing.T) {
	v := New[string, int](lookupOnly{"a": 1, "b": 2}, map[string]Entry[int]{
		"b": Set(20),
		"c": Set(3),
	})
	keys := slices.Sorted(v.Keys())
	if diff := cmp.Diff([]string{"b", "c"}, keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if !v.Contains("a") {
		t.Error(`Contains("a") = false`)
	}
}

func TestConcurrentReaders(t *testing.T) {
	_, v := exampleView()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if v.GetOr("b", 0) != 3 || v.Contains("c") {
					t.Error("inconsistent read")
					return
				}
			}
		}()
	}
	wg.Wait()
}
