package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(tony) error = %v", err)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if !f.IsJSON() || f.String() != "json" {
		t.Errorf("unexpected %v", f)
	}
	if err := f.UnmarshalText([]byte("xml")); !errors.Is(err, ErrBadFormat) {
		t.Errorf("UnmarshalText(xml) error = %v", err)
	}
	if !f.IsJSON() {
		t.Error("failed UnmarshalText changed the format")
	}
	if _, err := Format(7).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("MarshalText(7) error = %v", err)
	}
	if YAMLFormat.IsJSON() || YAMLFormat.String() != "yaml" {
		t.Errorf("unexpected %v", YAMLFormat)
	}
}
