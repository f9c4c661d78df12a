// Package svgshape emits SVG markup as text: rectangles with selectively
// rounded corners, lines, paths built from quadratic bezier segments and
// text labels, plus the top-level <svg> envelope.
//
// Every emitter appends to a caller-owned io.Writer and returns nothing.
// The package holds no global mutable state, so separate goroutines may
// emit concurrently as long as each one uses its own sink.
//
// The interesting part is RoundRect: given which corners must be round
// and a requested radius, ResolveRoundRect derives a radius that fits the
// rectangle and the straight run left on every side, and the result is
// written as a single closed relative path.
//
//	var b strings.Builder
//	svgshape.RoundRect(&b, 10, 10, 100, 50, 8, svgshape.CornersTop, "card")
//	svgshape.WriteDocument(os.Stdout, 120, 70, svgshape.StyleBlock(css), b.String())
package svgshape
