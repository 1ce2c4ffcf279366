package libdiff

import "testing"

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"equal", "a\nb\n", "a\nb\n", ""},
		{"insert", "a\nc\n", "a\nb\nc\n", " a\n+b\n c\n"},
		{"delete", "a\nb\nc\n", "a\nc\n", " a\n-b\n c\n"},
		{"replace", "a\nb\n", "a\nx\n", " a\n-b\n+x\n"},
		{"no trailing newline", "a", "b", "-a\n+b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Lines(%q, %q) =\n%s\nwant\n%s", tt.from, tt.to, got, tt.want)
			}
			if Changed(got) != (tt.from != tt.to) {
				t.Errorf("Changed = %v", Changed(got))
			}
		})
	}
}
