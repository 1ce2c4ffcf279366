// Package dttm converts epoch-relative 64-bit datetime values, as produced by
// array libraries that store a count of fixed units since
// 1970-01-01T00:00:00Z, into calendar timestamps.
//
// Results are UTC [time.Time] values at microsecond precision, the
// resolution spreadsheet date cells carry:
//
//	t, err := dttm.ToTime(dttm.Datetime64{Value: 86400, Unit: dttm.Second})
//	// 1970-01-02 00:00:00 +0000 UTC
package dttm
