// Package vba writes indented, VBA-style source text.
//
// A [Writer] tracks the nesting depth and whether the output is at the start
// of a line, indenting each new line by one unit per level:
//
//	w := vba.NewWriter(os.Stdout)
//	w.Block("Function One()", "End Function", func() error {
//	    return w.WriteLine("One = 1", nil)
//	})
//
// Templates may reference named values with {expr} placeholders, evaluated
// with github.com/expr-lang/expr against an [Env]. Use {{ and }} for literal
// braces.
//
// [WriteUDFModule] uses a Writer to generate the VBA wrappers that expose
// worksheet functions to a spreadsheet.
package vba
