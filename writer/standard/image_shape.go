package standard

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Mictilt/go-svgshape"
	"github.com/Mictilt/go-svgshape/writer/standard/imgkit"
)

// GraphicsContext defines the raster operations a canvas needs.
type GraphicsContext interface {
	svgshape.Drawer

	NewSubPath()
	ClearPath()
	SetColor(c color.Color)
	SetLineWidth(lineWidth float64)
	SetLineJoin(lineJoin gg.LineJoin)
	Fill()
	FillPreserve()
	Stroke()
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// GGContextWrapper wraps gg.Context to implement GraphicsContext
type GGContextWrapper struct {
	*gg.Context
}

func (wrapper *GGContextWrapper) MoveTo(x, y float64) {
	wrapper.Context.MoveTo(x, y)
}

func (wrapper *GGContextWrapper) LineTo(x, y float64) {
	wrapper.Context.LineTo(x, y)
}

func (wrapper *GGContextWrapper) QuadraticTo(cx, cy, x, y float64) {
	wrapper.Context.QuadraticTo(cx, cy, x, y)
}

func (wrapper *GGContextWrapper) ClosePath() {
	wrapper.Context.ClosePath()
}

func (wrapper *GGContextWrapper) NewSubPath() {
	wrapper.Context.NewSubPath()
}

func (wrapper *GGContextWrapper) ClearPath() {
	wrapper.Context.ClearPath()
}

func (wrapper *GGContextWrapper) SetColor(c color.Color) {
	wrapper.Context.SetColor(c)
}

func (wrapper *GGContextWrapper) SetLineWidth(lineWidth float64) {
	wrapper.Context.SetLineWidth(lineWidth)
}

func (wrapper *GGContextWrapper) SetLineJoin(lineJoin gg.LineJoin) {
	wrapper.Context.SetLineJoin(lineJoin)
}

func (wrapper *GGContextWrapper) Fill() {
	wrapper.Context.Fill()
}

func (wrapper *GGContextWrapper) FillPreserve() {
	wrapper.Context.FillPreserve()
}

func (wrapper *GGContextWrapper) Stroke() {
	wrapper.Context.Stroke()
}

func (wrapper *GGContextWrapper) DrawStringAnchored(s string, x, y, ax, ay float64) {
	wrapper.Context.DrawStringAnchored(s, x, y, ax, ay)
}

// defaultRasterStroke paints class-styled shapes, since there is no CSS
// engine behind the raster canvas.
var defaultRasterStroke = svgshape.Stroke{Width: 1, Color: "black"}

// Rasterize renders d with gg at f's pixel size.
func Rasterize(d Drawing, f Frame) image.Image {
	w, h := f.pixelSize()
	dc := gg.NewContext(w, h)

	if f.Background != nil {
		dc.SetColor(f.Background)
		dc.Clear()
	}
	if f.BackgroundImage != nil {
		dc.DrawImage(imgkit.Scale(f.BackgroundImage, image.Rect(0, 0, w, h), nil), 0, 0)
	}

	dc.SetFontFace(basicfont.Face7x13)
	s := f.scale()
	dc.Scale(s, s)

	if d != nil {
		d(rasterCanvas{gc: &GGContextWrapper{dc}, scale: s})
	}
	return dc.Image()
}

// rasterCanvas replays svgshape paths on a GraphicsContext. Rounded
// rectangles go through the same resolver as the SVG output, so the
// raster and vector renderings share one geometry.
type rasterCanvas struct {
	gc    GraphicsContext
	scale float64
}

func (c rasterCanvas) Rect(x, y, width, height int, p Paint) {
	c.RoundRect(x, y, width, height, 0, svgshape.CornersNone, p)
}

func (c rasterCanvas) RoundRect(x, y, width, height, radius int, corners svgshape.Corner, p Paint) {
	c.gc.NewSubPath()
	svgshape.RoundRectPath(x, y, width, height, radius, corners).Replay(c.gc)
	c.paint(p.stroke(), true)
}

func (c rasterCanvas) Line(x1, y1, x2, y2 int, p Paint) {
	c.gc.NewSubPath()
	c.gc.MoveTo(float64(x1), float64(y1))
	c.gc.LineTo(float64(x2), float64(y2))
	c.paint(p.stroke(), false)
}

func (c rasterCanvas) Text(x, y int, text string, p Paint, opts ...svgshape.TextOption) {
	st := p.stroke()
	col, ok := parsePaintColor(st.Fill)
	if !ok {
		if col, ok = parsePaintColor(st.Color); !ok {
			col = color.RGBA{A: 0xff}
		}
	}

	baseline, anchor := svgshape.TextAttrs(opts...)
	c.gc.SetColor(col)
	c.gc.DrawStringAnchored(text, float64(x), float64(y), anchorX(anchor), baselineY(baseline))
}

func (c rasterCanvas) paint(st svgshape.Stroke, fill bool) {
	if fillColor, ok := parsePaintColor(st.Fill); ok && fill {
		c.gc.SetColor(fillColor)
		c.gc.FillPreserve()
	}

	strokeColor, ok := parsePaintColor(st.Color)
	if !ok || st.Width <= 0 {
		c.gc.ClearPath()
		return
	}
	c.gc.SetColor(strokeColor)
	// gg strokes in device pixels
	c.gc.SetLineWidth(float64(st.Width) * c.scale)
	c.gc.SetLineJoin(lineJoin(st.LineJoin))
	c.gc.Stroke()
}

// stroke returns the inline style of p, or the raster default for class
// paints.
func (p Paint) stroke() svgshape.Stroke {
	if p.Stroke != nil {
		return *p.Stroke
	}
	return defaultRasterStroke
}

// lineJoin maps an SVG stroke-linejoin onto gg, which has no miter join.
func lineJoin(s string) gg.LineJoin {
	if strings.EqualFold(s, "round") {
		return gg.LineJoinRound
	}
	return gg.LineJoinBevel
}

func anchorX(anchor string) float64 {
	switch anchor {
	case "middle":
		return 0.5
	case "end":
		return 1
	}
	return 0
}

// baselineY approximates dominant-baseline with gg's vertical anchor,
// where 0 puts the alphabetic baseline at y.
func baselineY(baseline string) float64 {
	switch baseline {
	case "middle", "central":
		return 0.5
	case "hanging", "text-before-edge":
		return 1
	}
	return 0
}
