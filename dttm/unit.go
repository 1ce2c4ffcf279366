package dttm

import "fmt"

type Unit int

const (
	Generic Unit = iota
	Year
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
	Picosecond
	Femtosecond
	Attosecond
)

var unitCodes = []string{
	Generic:     "generic",
	Year:        "Y",
	Month:       "M",
	Week:        "W",
	Day:         "D",
	Hour:        "h",
	Minute:      "m",
	Second:      "s",
	Millisecond: "ms",
	Microsecond: "us",
	Nanosecond:  "ns",
	Picosecond:  "ps",
	Femtosecond: "fs",
	Attosecond:  "as",
}

// ParseUnit parses a unit code such as "D", "s", "ms" or "ns". Codes are
// case sensitive: "M" is months and "m" is minutes.
func ParseUnit(v string) (Unit, error) {
	for u, code := range unitCodes {
		if u != int(Generic) && code == v {
			return Unit(u), nil
		}
	}
	return Generic, fmt.Errorf("%w: %q", ErrUnit, v)
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitCodes) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitCodes[u]
}

func (u *Unit) UnmarshalText(d []byte) error {
	pu, err := ParseUnit(string(d))
	if err != nil {
		return err
	}
	*u = pu
	return nil
}

// seconds returns how many whole seconds one unit spans, for units of at
// least a second.
func (u Unit) seconds() (int64, bool) {
	switch u {
	case Week:
		return 7 * 86400, true
	case Day:
		return 86400, true
	case Hour:
		return 3600, true
	case Minute:
		return 60, true
	case Second:
		return 1, true
	}
	return 0, false
}

// perSecond returns how many units fit in a second, for sub-second units.
func (u Unit) perSecond() (int64, bool) {
	switch u {
	case Millisecond:
		return 1e3, true
	case Microsecond:
		return 1e6, true
	case Nanosecond:
		return 1e9, true
	case Picosecond:
		return 1e12, true
	case Femtosecond:
		return 1e15, true
	case Attosecond:
		return 1e18, true
	}
	return 0, false
}
