package vba

import (
	"errors"
	"io"
	"strings"
)

// Writer is not safe for concurrent use.
type Writer struct {
	w         io.Writer
	indent    string
	depth     int
	freshLine bool
}

func NewWriter(w io.Writer, opts ...Option) *Writer {
	vw := &Writer{
		w:         w,
		indent:    "\t",
		freshLine: true,
	}
	for _, opt := range opts {
		opt(vw)
	}
	return vw
}

func (w *Writer) Depth() int {
	return w.depth
}

// Write writes template, indenting first if the output is at the start of a
// line. With a non-empty env, placeholders are expanded (see Expand) before
// anything is written, so a bad template writes nothing.
func (w *Writer) Write(template string, env Env) error {
	if len(env) != 0 {
		s, err := Expand(template, env)
		if err != nil {
			return err
		}
		template = s
	}
	if template == "" {
		return nil
	}
	if w.freshLine {
		if w.depth > 0 {
			if err := writeString(w.w, strings.Repeat(w.indent, w.depth)); err != nil {
				return err
			}
		}
		w.freshLine = false
	}
	if err := writeString(w.w, template); err != nil {
		return err
	}
	if template[len(template)-1] == '\n' {
		w.freshLine = true
	}
	return nil
}

func (w *Writer) WriteLine(template string, env Env) error {
	return w.Write(template+"\n", env)
}

// WriteLabel writes "label:" one level left of the current depth, as for
// jump targets inside a block.
func (w *Writer) WriteLabel(label string) error {
	depth := w.depth
	if w.depth > 0 {
		w.depth--
	}
	defer func() { w.depth = depth }()
	return w.Write(label+":\n", nil)
}

// Block writes start as a line, runs body one level deeper, then writes end
// as a line at the starting depth. Once start is written the depth is
// restored and end is written however body returns, panics included. An
// error from body is returned in preference to one writing end.
func (w *Writer) Block(start, end string, body func() error) (err error) {
	if err := w.WriteLine(start, nil); err != nil {
		return err
	}
	w.depth++
	defer func() {
		w.depth--
		endErr := w.WriteLine(end, nil)
		switch {
		case err == nil:
			err = endErr
		case endErr != nil:
			err = errors.Join(err, endErr)
		}
	}()
	return body()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
