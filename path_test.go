package svgshape_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mictilt/go-svgshape"
)

func Test_PathPrimitives(t *testing.T) {
	var b strings.Builder
	svgshape.PathStart(&b, 1, 2, "p", true)
	svgshape.PathLineTo(&b, 3, 4, false)
	svgshape.PathHLineTo(&b, 5, true)
	svgshape.PathVLineTo(&b, -6, false)
	svgshape.PathQuadTo(&b, 1, 2, 3, 4, true)
	svgshape.PathEnd(&b, true)

	assert.Equal(t, `<path class="p" d="M 1 2 l 3 4 H 5 v -6 Q 1 2 3 4 z" />`+"\n", b.String())
}

func Test_PathStart_withoutClass(t *testing.T) {
	var b strings.Builder
	svgshape.PathStart(&b, 0, 0, "", false)
	svgshape.PathEnd(&b, false)
	assert.Equal(t, `<path d="m 0 0" />`+"\n", b.String())
}

func Test_PathStartStroke(t *testing.T) {
	var b strings.Builder
	svgshape.PathStartStroke(&b, 4, 4, svgshape.Stroke{Width: 1, Color: "black", Fill: "none"}, true)
	svgshape.PathLineTo(&b, 8, 8, true)
	svgshape.PathEnd(&b, false)
	assert.Equal(t,
		`<path stroke="black" stroke-width="1" stroke-linejoin="miter" fill="none" d="M 4 4 L 8 8" />`+"\n",
		b.String())
}

func Test_Path_builder(t *testing.T) {
	var p svgshape.Path
	p.MoveTo(10, 10, true)
	p.LineTo(5, 0, false)
	p.QuadTo(5, 0, 5, 5, false)
	p.VLineTo(30, true)
	p.HLineTo(10, true)
	p.Close()

	assert.Equal(t, "M 10 10 l 5 0 q 5 0 5 5 V 30 H 10 z", p.Data())
	assert.Equal(t, p.Data(), fmt.Sprint(p))

	var b strings.Builder
	p.WriteClass(&b, "arrow")
	assert.Equal(t, `<path class="arrow" d="M 10 10 l 5 0 q 5 0 5 5 V 30 H 10 z" />`+"\n", b.String())
}

func Test_Path_defaultStart(t *testing.T) {
	var p svgshape.Path
	p.HLineTo(4, false)
	assert.Equal(t, "m 0 0 h 4", p.Data())
}

type recordDrawer struct {
	calls []string
}

func (r *recordDrawer) MoveTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("M%v,%v", x, y))
}

func (r *recordDrawer) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("L%v,%v", x, y))
}

func (r *recordDrawer) QuadraticTo(x1, y1, x2, y2 float64) {
	r.calls = append(r.calls, fmt.Sprintf("Q%v,%v,%v,%v", x1, y1, x2, y2))
}

func (r *recordDrawer) ClosePath() {
	r.calls = append(r.calls, "Z")
}

func Test_Path_Replay(t *testing.T) {
	p := svgshape.RoundRectPath(10, 20, 30, 20, 5, svgshape.TopLeft)

	rec := &recordDrawer{}
	p.Replay(rec)

	assert.Equal(t, []string{
		"M10,25",
		"Q10,20,15,20",
		"L40,20",
		"L40,40",
		"L10,40",
		"L10,25",
		"Z",
	}, rec.calls)
}

func Test_Path_BoundsEmpty(t *testing.T) {
	var p svgshape.Path
	minX, minY, maxX, maxY := p.Bounds()
	assert.Equal(t, []int{0, 0, 0, 0}, []int{minX, minY, maxX, maxY})
}
