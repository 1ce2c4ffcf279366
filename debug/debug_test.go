package debug

import (
	"testing"
)

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"nope", false},
	}
	for _, tt := range tests {
		t.Setenv("XLU_DEBUG_TEST", tt.val)
		if got := boolEnv("XLU_DEBUG_TEST"); got != tt.want {
			t.Errorf("boolEnv with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}
