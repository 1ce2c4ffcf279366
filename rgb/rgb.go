package rgb

import "math"

// ToInt packs r, g and b into a single integer. The channels are not
// checked; values outside [0,255] bleed into neighbouring channels.
func ToInt(r, g, b int) int {
	return r + g*256 + b*256*256
}

// FromInt unpacks n into its channels. Every input is accepted: values
// outside [0, 0xffffff], including negative ones, wrap so that each
// channel lies in [0,255].
func FromInt(n int) (r, g, b int) {
	r = mod(n, 256)
	g = mod(floorDiv(n, 256), 256)
	b = mod(floorDiv(n, 256*256), 256)
	return r, g, b
}

// FromFloat truncates f toward zero and unpacks the result like FromInt.
// NaN unpacks to black.
func FromFloat(f float64) (r, g, b int) {
	if math.IsNaN(f) {
		return 0, 0, 0
	}
	return FromInt(int(math.Trunc(f)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
