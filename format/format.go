// Package format selects how the xlu command renders structured output.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds the canonical name first, then accepted abbreviations.
var names = [...][]string{
	YAMLFormat: {"yaml", "y"},
	JSONFormat: {"json", "j"},
}

func ParseFormat(v string) (Format, error) {
	for f, ns := range names {
		for _, n := range ns {
			if n == v {
				return Format(f), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f][0]), nil
}

// UnmarshalText accepts any name ParseFormat accepts.
func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
