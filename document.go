package svgshape

import (
	"bytes"
	"fmt"
	"io"
)

// MaxRenderedWidth is the max-width, in CSS pixels, set on every document.
const MaxRenderedWidth = 1026

const svgNamespace = "http://www.w3.org/2000/svg"

// WriteDocument wraps body in the top-level <svg> element. style is written
// verbatim right after the opening tag and is never escaped; pass trusted
// content only, typically built with StyleBlock. The body is not checked
// for well-formedness.
func WriteDocument(w io.Writer, viewWidth, viewHeight int, style, body string) {
	writeDocumentOpen(w, viewWidth, viewHeight, style)
	io.WriteString(w, body)
	io.WriteString(w, "\n</svg>\n")
}

func writeDocumentOpen(w io.Writer, viewWidth, viewHeight int, style string) {
	fmt.Fprintf(w, `<svg xmlns="%s" width="100%%" viewBox="0 0 %d %d" style="max-width: %dpx;">`+"\n",
		svgNamespace, viewWidth, viewHeight, MaxRenderedWidth)
	io.WriteString(w, style)
	io.WriteString(w, "\n")
}

// StyleBlock wraps css in a <style> element.
func StyleBlock(css string) string {
	return "<style>\n" + css + "\n</style>"
}

// Document collects shape markup and wraps it on WriteTo. Shapes are
// emitted into it directly since it is an io.Writer:
//
//	doc := svgshape.NewDocument(200, 100)
//	svgshape.Line(doc, 0, 0, 200, 100, "axis")
//	doc.WriteTo(os.Stdout)
type Document struct {
	ViewWidth, ViewHeight int
	// Style is written verbatim, see WriteDocument.
	Style string

	body bytes.Buffer
}

func NewDocument(viewWidth, viewHeight int) *Document {
	return &Document{ViewWidth: viewWidth, ViewHeight: viewHeight}
}

// Write appends shape markup to the body. It never fails.
func (d *Document) Write(p []byte) (int, error) {
	return d.body.Write(p)
}

func (d *Document) WriteString(s string) (int, error) {
	return d.body.WriteString(s)
}

// Body returns the markup collected so far.
func (d *Document) Body() string {
	return d.body.String()
}

// Reset drops the collected markup, keeping size and style.
func (d *Document) Reset() {
	d.body.Reset()
}

// WriteTo writes the complete document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	sw := NewWriter(w)
	WriteDocument(sw, d.ViewWidth, d.ViewHeight, d.Style, d.body.String())
	return sw.Written(), sw.Err()
}

// Bytes returns the complete document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}
