// Package libdiff computes line oriented differences between texts, such as
// a freshly generated module and the copy already stored in a workbook.
package libdiff
