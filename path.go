package svgshape

import (
	"fmt"
	"io"
	"strings"
)

// The Path* functions below are stateless appends of SVG path-data tokens.
// They must be called in drawing order: PathStart (or PathStartStroke),
// any number of segment commands, then PathEnd. Uppercase commands are
// absolute, lowercase ones relative to the current pen position.

func cmdLetter(abs bool, upper, lower byte) byte {
	if abs {
		return upper
	}
	return lower
}

func writeMove(w io.Writer, x, y int, abs bool) {
	fmt.Fprintf(w, "%c %d %d", cmdLetter(abs, 'M', 'm'), x, y)
}

// PathStart opens a <path> element, with an optional class, and writes the
// initial move command.
func PathStart(w io.Writer, x, y int, class string, abs bool) {
	io.WriteString(w, "<path ")
	if class != "" {
		writeClassAttr(w, class)
		io.WriteString(w, " ")
	}
	io.WriteString(w, `d="`)
	writeMove(w, x, y, abs)
}

// PathStartStroke opens a <path> element carrying inline stroke and fill
// attributes and writes the initial move command.
func PathStartStroke(w io.Writer, x, y int, st Stroke, abs bool) {
	io.WriteString(w, "<path ")
	st.writeStrokeAttrs(w)
	st.writeFillAttrs(w)
	io.WriteString(w, `d="`)
	writeMove(w, x, y, abs)
}

func PathLineTo(w io.Writer, x, y int, abs bool) {
	fmt.Fprintf(w, " %c %d %d", cmdLetter(abs, 'L', 'l'), x, y)
}

func PathHLineTo(w io.Writer, x int, abs bool) {
	fmt.Fprintf(w, " %c %d", cmdLetter(abs, 'H', 'h'), x)
}

func PathVLineTo(w io.Writer, y int, abs bool) {
	fmt.Fprintf(w, " %c %d", cmdLetter(abs, 'V', 'v'), y)
}

// PathQuadTo appends a quadratic bezier with control point (cx, cy) ending
// at (x, y).
func PathQuadTo(w io.Writer, cx, cy, x, y int, abs bool) {
	fmt.Fprintf(w, " %c %d %d %d %d", cmdLetter(abs, 'Q', 'q'), cx, cy, x, y)
}

// PathEnd optionally closes the contour and terminates the element.
func PathEnd(w io.Writer, closePath bool) {
	if closePath {
		io.WriteString(w, " z")
	}
	io.WriteString(w, "\" />\n")
}

// Op identifies one path-data command.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpHLine
	OpVLine
	OpQuad
	OpClose
)

// Command is one entry of a Path. Args holds, in order, the numeric
// arguments the command uses: (x, y) for moves and lines, (x) or (y) for
// horizontal and vertical lines, (cx, cy, x, y) for quadratic beziers.
type Command struct {
	Op   Op
	Abs  bool
	Args [4]int
}

// Path is an ordered command sequence describing one contour. It is built
// by the geometry resolver and consumed by the primitive writer; nothing
// keeps it after emission.
type Path []Command

func (p *Path) MoveTo(x, y int, abs bool) {
	*p = append(*p, Command{Op: OpMove, Abs: abs, Args: [4]int{x, y}})
}

func (p *Path) LineTo(x, y int, abs bool) {
	*p = append(*p, Command{Op: OpLine, Abs: abs, Args: [4]int{x, y}})
}

func (p *Path) HLineTo(x int, abs bool) {
	*p = append(*p, Command{Op: OpHLine, Abs: abs, Args: [4]int{x}})
}

func (p *Path) VLineTo(y int, abs bool) {
	*p = append(*p, Command{Op: OpVLine, Abs: abs, Args: [4]int{y}})
}

func (p *Path) QuadTo(cx, cy, x, y int, abs bool) {
	*p = append(*p, Command{Op: OpQuad, Abs: abs, Args: [4]int{cx, cy, x, y}})
}

func (p *Path) Close() {
	*p = append(*p, Command{Op: OpClose})
}

// start returns the initial move of p and the remaining commands. A path
// that does not begin with a move starts at the relative origin.
func (p Path) start() (Command, Path) {
	if len(p) > 0 && p[0].Op == OpMove {
		return p[0], p[1:]
	}
	return Command{Op: OpMove}, p
}

func writeCommands(w io.Writer, cmds Path) {
	for _, c := range cmds {
		a := c.Args
		switch c.Op {
		case OpMove:
			io.WriteString(w, " ")
			writeMove(w, a[0], a[1], c.Abs)
		case OpLine:
			PathLineTo(w, a[0], a[1], c.Abs)
		case OpHLine:
			PathHLineTo(w, a[0], c.Abs)
		case OpVLine:
			PathVLineTo(w, a[0], c.Abs)
		case OpQuad:
			PathQuadTo(w, a[0], a[1], a[2], a[3], c.Abs)
		case OpClose:
			io.WriteString(w, " z")
		}
	}
}

// WriteClass emits p as a <path> element with the given class.
func (p Path) WriteClass(w io.Writer, class string) {
	first, rest := p.start()
	PathStart(w, first.Args[0], first.Args[1], class, first.Abs)
	writeCommands(w, rest)
	PathEnd(w, false)
}

// WriteStroke emits p as a <path> element with inline stroke attributes.
func (p Path) WriteStroke(w io.Writer, st Stroke) {
	first, rest := p.start()
	PathStartStroke(w, first.Args[0], first.Args[1], st, first.Abs)
	writeCommands(w, rest)
	PathEnd(w, false)
}

// Data returns the bare path data, suitable for a d attribute written by
// another SVG library.
func (p Path) Data() string {
	var b strings.Builder
	first, rest := p.start()
	writeMove(&b, first.Args[0], first.Args[1], first.Abs)
	writeCommands(&b, rest)
	return b.String()
}

func (p Path) String() string {
	return p.Data()
}

// Drawer receives a path in absolute coordinates. *gg.Context satisfies it.
type Drawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	ClosePath()
}

// Replay walks p, resolving relative commands against the pen position,
// and forwards every segment to d.
func (p Path) Replay(d Drawer) {
	var curX, curY, startX, startY int
	for _, c := range p {
		a := c.Args
		switch c.Op {
		case OpMove:
			if c.Abs {
				curX, curY = a[0], a[1]
			} else {
				curX, curY = curX+a[0], curY+a[1]
			}
			startX, startY = curX, curY
			d.MoveTo(float64(curX), float64(curY))
		case OpLine:
			if c.Abs {
				curX, curY = a[0], a[1]
			} else {
				curX, curY = curX+a[0], curY+a[1]
			}
			d.LineTo(float64(curX), float64(curY))
		case OpHLine:
			if c.Abs {
				curX = a[0]
			} else {
				curX += a[0]
			}
			d.LineTo(float64(curX), float64(curY))
		case OpVLine:
			if c.Abs {
				curY = a[0]
			} else {
				curY += a[0]
			}
			d.LineTo(float64(curX), float64(curY))
		case OpQuad:
			cx, cy, ex, ey := a[0], a[1], a[2], a[3]
			if !c.Abs {
				cx, cy, ex, ey = curX+cx, curY+cy, curX+ex, curY+ey
			}
			curX, curY = ex, ey
			d.QuadraticTo(float64(cx), float64(cy), float64(ex), float64(ey))
		case OpClose:
			curX, curY = startX, startY
			d.ClosePath()
		}
	}
}

// Bounds returns the extent of the on-curve points of p. An empty path
// has an empty extent at the origin.
func (p Path) Bounds() (minX, minY, maxX, maxY int) {
	b := &boundsDrawer{}
	p.Replay(b)
	return int(b.minX), int(b.minY), int(b.maxX), int(b.maxY)
}

type boundsDrawer struct {
	minX, minY, maxX, maxY float64
	isSet                  bool
}

func (b *boundsDrawer) update(x, y float64) {
	if !b.isSet {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.isSet = true
		return
	}
	if x < b.minX {
		b.minX = x
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if y > b.maxY {
		b.maxY = y
	}
}

func (b *boundsDrawer) MoveTo(x, y float64) {
	b.update(x, y)
}

func (b *boundsDrawer) LineTo(x, y float64) {
	b.update(x, y)
}

func (b *boundsDrawer) QuadraticTo(_, _, x2, y2 float64) {
	b.update(x2, y2)
}

func (b *boundsDrawer) ClosePath() {}
