package svgshape

import (
	"io"
)

// Writer adapts any io.Writer into a sink for the emitters. Emitters ignore
// write errors, so Writer keeps the first one and silently drops every
// later write. Check Err once the document is complete.
type Writer struct {
	w   io.Writer
	n   int64
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (sw *Writer) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	sw.n += int64(n)
	if err != nil {
		sw.err = err
	}
	return n, err
}

func (sw *Writer) WriteString(s string) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := io.WriteString(sw.w, s)
	sw.n += int64(n)
	if err != nil {
		sw.err = err
	}
	return n, err
}

// Written reports how many bytes reached the underlying writer.
func (sw *Writer) Written() int64 { return sw.n }

// Err returns the first error returned by the underlying writer.
func (sw *Writer) Err() error { return sw.err }
