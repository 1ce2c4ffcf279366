package overlay

import (
	"encoding/json"
	"errors"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func TestFromMergePatchMatchesJSONPatch(t *testing.T) {
	tests := []struct {
		name        string
		base, patch string
	}{
		{"scalars", `{"a":1,"b":2}`, `{"b":3,"c":null}`},
		{"delete existing", `{"a":1,"b":2}`, `{"a":null}`},
		{"add", `{"a":1}`, `{"z":"new"}`},
		{"nested merge", `{"a":{"x":1,"y":2},"b":true}`, `{"a":{"y":null,"z":3}}`},
		{"object over scalar", `{"a":1}`, `{"a":{"k":"v","n":null}}`},
		{"array replaces", `{"a":[1,2]}`, `{"a":[3]}`},
		{"empty patch", `{"a":1}`, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var base map[string]any
			if err := json.Unmarshal([]byte(tt.base), &base); err != nil {
				t.Fatal(err)
			}
			v, err := FromMergePatch(Map[string, any](base), []byte(tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			merged, err := jsonpatch.MergePatch([]byte(tt.base), []byte(tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			var want map[string]any
			if err := json.Unmarshal(merged, &want); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, Flatten(v)); diff != "" {
				t.Errorf("view differs from merge patch (-want +got):\n%s", diff)
			}

			var orig map[string]any
			if err := json.Unmarshal([]byte(tt.base), &orig); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(orig, base); diff != "" {
				t.Errorf("base changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMergePatchErrors(t *testing.T) {
	for _, patch := range []string{``, `[1]`, `"x"`, `{"a":1} {}`, `{`} {
		if _, err := FromMergePatch(Map[string, any]{}, []byte(patch)); !errors.Is(err, ErrBadPatch) {
			t.Errorf("FromMergePatch(%q) error = %v, want ErrBadPatch", patch, err)
		}
	}
}
