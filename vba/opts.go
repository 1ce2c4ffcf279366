package vba

type Option func(*Writer)

// WithIndent sets the text emitted per nesting level. The default is a tab.
func WithIndent(s string) Option {
	return func(w *Writer) { w.indent = s }
}
