package dttm

import (
	"fmt"
	"math"
	"time"
)

// NaT is the value marking a missing datetime.
const NaT = math.MinInt64

var Epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// calendar bounds of the timestamps ToTime produces
const (
	minYear = 1
	maxYear = 9999

	minUnix = -62135596800 // 0001-01-01T00:00:00Z
	maxUnix = 253402300799 // 9999-12-31T23:59:59Z
)

// Datetime64 is a count of Unit since Epoch.
type Datetime64 struct {
	Value int64
	Unit  Unit
}

func (d Datetime64) IsNaT() bool { return d.Value == NaT }

func (d Datetime64) String() string {
	if d.IsNaT() {
		return "NaT"
	}
	return fmt.Sprintf("%d[%s]", d.Value, d.Unit)
}

// ToTime converts d to a UTC calendar timestamp, rounding any
// sub-microsecond remainder half to even.
//
// It fails with ErrValue if d is NaT, has no concrete unit, or lies outside
// years 1 through 9999.
func ToTime(d Datetime64) (time.Time, error) {
	if d.IsNaT() {
		return time.Time{}, fmt.Errorf("%w: NaT has no calendar time", ErrValue)
	}
	var t time.Time
	switch d.Unit {
	case Year:
		if d.Value < minYear-1970 || d.Value > maxYear-1970 {
			return time.Time{}, outOfRange(d)
		}
		t = time.Date(1970+int(d.Value), time.January, 1, 0, 0, 0, 0, time.UTC)
	case Month:
		if d.Value < (minYear-1970)*12 || d.Value > (maxYear-1970+1)*12 {
			return time.Time{}, outOfRange(d)
		}
		t = time.Date(1970, time.January+time.Month(d.Value), 1, 0, 0, 0, 0, time.UTC)
	default:
		secs, micros, err := split(d)
		if err != nil {
			return time.Time{}, err
		}
		if secs < minUnix || secs > maxUnix {
			return time.Time{}, outOfRange(d)
		}
		t = time.Unix(secs, micros*1000).UTC()
	}
	if t.Year() < minYear || t.Year() > maxYear {
		return time.Time{}, outOfRange(d)
	}
	return t, nil
}

// split returns whole seconds since the epoch and the rounded microsecond
// remainder in [0, 1e6).
func split(d Datetime64) (secs, micros int64, err error) {
	if mult, ok := d.Unit.seconds(); ok {
		if d.Value > math.MaxInt64/mult || d.Value < math.MinInt64/mult {
			return 0, 0, outOfRange(d)
		}
		return d.Value * mult, 0, nil
	}
	per, ok := d.Unit.perSecond()
	if !ok {
		return 0, 0, fmt.Errorf("%w: unit %s cannot be measured from the epoch", ErrValue, d.Unit)
	}
	secs = floorDiv(d.Value, per)
	rem := d.Value - secs*per
	if per <= 1e6 {
		return secs, rem * (1e6 / per), nil
	}
	perMicro := per / 1e6
	micros = rem / perMicro
	frac := rem % perMicro
	if 2*frac > perMicro || (2*frac == perMicro && micros%2 == 1) {
		micros++
	}
	if micros == 1e6 {
		secs++
		micros = 0
	}
	return secs, micros, nil
}

// FromTime expresses t as a count of u since the epoch, truncating toward
// the past. It fails with ErrValue when the count does not fit in 64 bits.
func FromTime(t time.Time, u Unit) (Datetime64, error) {
	t = t.UTC()
	switch u {
	case Year:
		return Datetime64{Value: int64(t.Year() - 1970), Unit: u}, nil
	case Month:
		return Datetime64{Value: int64((t.Year()-1970)*12 + int(t.Month()) - 1), Unit: u}, nil
	}
	secs, nanos := t.Unix(), int64(t.Nanosecond())
	if div, ok := u.seconds(); ok {
		return Datetime64{Value: floorDiv(secs, div), Unit: u}, nil
	}
	per, ok := u.perSecond()
	if !ok {
		return Datetime64{}, fmt.Errorf("%w: %s", ErrUnit, u)
	}
	if secs > math.MaxInt64/per-1 || secs < math.MinInt64/per+1 {
		return Datetime64{}, fmt.Errorf("%w: %s does not fit in %s", ErrValue, t.Format(time.RFC3339Nano), u)
	}
	var sub int64
	if per <= 1e9 {
		sub = nanos / (1e9 / per)
	} else {
		sub = nanos * (per / 1e9)
	}
	return Datetime64{Value: secs*per + sub, Unit: u}, nil
}

func outOfRange(d Datetime64) error {
	return fmt.Errorf("%w: %s is out of range", ErrValue, d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
