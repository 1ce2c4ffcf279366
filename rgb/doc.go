// Package rgb converts between packed spreadsheet color integers and
// red/green/blue channels.
//
// A packed color stores red in the lowest byte, green in the middle byte and
// blue in the highest byte:
//
//	n := rgb.ToInt(255, 128, 0) // 33023
//	r, g, b := rgb.FromInt(n)   // 255, 128, 0
//
// [Color] adds hex formatting and terminal swatches on top of the codec.
package rgb
