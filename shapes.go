package svgshape

import (
	"fmt"
	"io"
)

func writeRectOpen(w io.Writer, x, y, width, height int) {
	fmt.Fprintf(w, `<rect x="%d" y="%d" width="%d" height="%d" `, x, y, width, height)
}

// Rect writes a plain <rect> referencing a style class.
func Rect(w io.Writer, x, y, width, height int, class string) {
	writeRectOpen(w, x, y, width, height)
	writeClassAttr(w, class)
	io.WriteString(w, " />\n")
}

// RectStroke writes a plain <rect> with inline stroke and fill.
func RectStroke(w io.Writer, x, y, width, height int, st Stroke) {
	writeRectOpen(w, x, y, width, height)
	st.writeStrokeAttrs(w)
	st.writeFillAttrs(w)
	io.WriteString(w, "/>\n")
}

func roundRectClass(w io.Writer, x, y, width, height, r int, class string) {
	writeRectOpen(w, x, y, width, height)
	fmt.Fprintf(w, `rx="%d" ry="%d" `, r, r)
	writeClassAttr(w, class)
	io.WriteString(w, " />\n")
}

func roundRectStroke(w io.Writer, x, y, width, height, r int, st Stroke) {
	writeRectOpen(w, x, y, width, height)
	fmt.Fprintf(w, `rx="%d" ry="%d" `, r, r)
	st.writeStrokeAttrs(w)
	st.writeFillAttrs(w)
	io.WriteString(w, "/>\n")
}

// RoundRect writes a rectangle whose selected corners are rounded with
// radius r. With no corner selected it is a plain <rect> and r is ignored;
// with all four it is a <rect> with rx/ry set to the resolved radius. Any
// other selection is written as a closed path.
func RoundRect(w io.Writer, x, y, width, height, r int, corners Corner, class string) {
	switch corners & CornersAll {
	case CornersNone:
		Rect(w, x, y, width, height, class)
	case CornersAll:
		g := ResolveRoundRect(width, height, r, CornersAll)
		roundRectClass(w, x, y, width, height, g.Radius, class)
	default:
		RoundRectPath(x, y, width, height, r, corners).WriteClass(w, class)
	}
}

// RoundRectStroke is RoundRect with inline stroke and fill.
func RoundRectStroke(w io.Writer, x, y, width, height, r int, corners Corner, st Stroke) {
	switch corners & CornersAll {
	case CornersNone:
		RectStroke(w, x, y, width, height, st)
	case CornersAll:
		g := ResolveRoundRect(width, height, r, CornersAll)
		roundRectStroke(w, x, y, width, height, g.Radius, st)
	default:
		RoundRectPath(x, y, width, height, r, corners).WriteStroke(w, st)
	}
}

// RectLR rounds whole sides: the left pair of corners, the right pair,
// both or neither.
func RectLR(w io.Writer, x, y, width, height int, class string, roundLeft, roundRight bool, r int) {
	corners := CornersNone
	if roundLeft {
		corners |= CornersLeft
	}
	if roundRight {
		corners |= CornersRight
	}
	RoundRect(w, x, y, width, height, r, corners, class)
}

func writeLineOpen(w io.Writer, x1, y1, x2, y2 int) {
	fmt.Fprintf(w, `<line x1="%d" y1="%d" x2="%d" y2="%d" `, x1, y1, x2, y2)
}

// Line writes a <line> referencing a style class.
func Line(w io.Writer, x1, y1, x2, y2 int, class string) {
	writeLineOpen(w, x1, y1, x2, y2)
	writeClassAttr(w, class)
	io.WriteString(w, "/>\n")
}

// LineStroke writes a <line> with inline stroke attributes. Lines carry no
// fill, so st.Fill is ignored.
func LineStroke(w io.Writer, x1, y1, x2, y2 int, st Stroke) {
	writeLineOpen(w, x1, y1, x2, y2)
	st.writeStrokeAttrs(w)
	io.WriteString(w, "/>\n")
}

// Text writes an escaped text label. Baseline defaults to "auto" and the
// horizontal anchor to "start".
func Text(w io.Writer, x, y int, text, class string, opts ...TextOption) {
	baseline, anchor := TextAttrs(opts...)

	fmt.Fprintf(w, `<text x="%d" y="%d" `, x, y)
	writeClassAttr(w, class)
	io.WriteString(w, ` dominant-baseline="`)
	WriteEscaped(w, baseline)
	io.WriteString(w, `" text-anchor="`)
	WriteEscaped(w, anchor)
	io.WriteString(w, `">`)
	WriteEscaped(w, text)
	io.WriteString(w, "</text>\n")
}
