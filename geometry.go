package svgshape

// RoundRectGeometry is the resolved layout of a rectangle whose selected
// corners are rounded with one shared radius.
type RoundRectGeometry struct {
	Width, Height int
	Corners       Corner
	// Radius is the requested radius after clamping. It is never larger
	// than the requested one.
	Radius int
	// Straight run left on each side once the arcs at both of its ends are
	// taken out.
	Top, Right, Bottom, Left int
}

// ResolveRoundRect clamps radius so the selected corners fit a width by
// height rectangle and computes the straight run of every side.
//
// Clamping, first match wins:
//   - exactly both left corners, or exactly both right corners: radius <= height
//   - exactly both top corners, or exactly both bottom corners: radius <= width
//   - otherwise, with m the largest number of round corners touching any
//     single side: radius <= width/m and radius <= height/m (integer division).
//     With no round corners the radius is left as is.
//
// Sizes and radius are not validated. Negative input yields whatever the
// arithmetic gives, which may be a visually wrong but well formed path.
func ResolveRoundRect(width, height, radius int, corners Corner) RoundRectGeometry {
	corners &= CornersAll

	var cntTop, cntBottom, cntLeft, cntRight int
	if corners.Has(TopLeft) {
		cntTop++
		cntLeft++
	}
	if corners.Has(TopRight) {
		cntTop++
		cntRight++
	}
	if corners.Has(BottomLeft) {
		cntBottom++
		cntLeft++
	}
	if corners.Has(BottomRight) {
		cntBottom++
		cntRight++
	}

	r := radius
	switch corners {
	case CornersLeft, CornersRight:
		// only the vertical run along one side constrains the arcs
		r = minInt(r, height)
	case CornersTop, CornersBottom:
		r = minInt(r, width)
	default:
		if m := maxInt(cntTop, cntBottom, cntLeft, cntRight); m > 0 {
			r = minInt(r, width/m, height/m)
		}
	}

	g := RoundRectGeometry{
		Width:   width,
		Height:  height,
		Corners: corners,
		Radius:  r,
		Top:     width - r*cntTop,
		Bottom:  width - r*cntBottom,
		Left:    height - r*cntLeft,
		Right:   height - r*cntRight,
	}
	return g
}

// Path returns the closed contour of g with its top-left corner at (x, y).
// The contour starts with an absolute move and runs clockwise with
// relative commands: top, top-right arc, right, bottom-right arc, bottom,
// bottom-left arc, left. Each round corner is one quadratic bezier whose
// control point sits on the rectangle corner.
func (g RoundRectGeometry) Path(x, y int) Path {
	r := g.Radius
	p := make(Path, 0, 10)

	if g.Corners.Has(TopLeft) {
		p.MoveTo(x, y+r, true)
		p.QuadTo(0, -r, r, -r, false)
	} else {
		p.MoveTo(x, y, true)
	}

	p.HLineTo(g.Top, false)
	if g.Corners.Has(TopRight) {
		p.QuadTo(r, 0, r, r, false)
	}

	p.VLineTo(g.Right, false)
	if g.Corners.Has(BottomRight) {
		p.QuadTo(0, r, -r, r, false)
	}

	p.HLineTo(-g.Bottom, false)
	if g.Corners.Has(BottomLeft) {
		p.QuadTo(-r, 0, -r, -r, false)
	}

	p.VLineTo(-g.Left, false)
	p.Close()
	return p
}

// RoundRectPath resolves the geometry and returns its contour.
func RoundRectPath(x, y, width, height, radius int, corners Corner) Path {
	return ResolveRoundRect(width, height, radius, corners).Path(x, y)
}

func minInt(v int, vs ...int) int {
	for _, x := range vs {
		if x < v {
			v = x
		}
	}
	return v
}

func maxInt(v int, vs ...int) int {
	for _, x := range vs {
		if x > v {
			v = x
		}
	}
	return v
}
