package standard

import (
	"image"
	"image/color"

	"github.com/Mictilt/go-svgshape"
)

// Paint decides how a shape is styled. A non-nil Stroke is written inline,
// otherwise the shape references Class from the document style block.
type Paint struct {
	Class  string
	Stroke *svgshape.Stroke
}

// Class paints with a CSS class.
func Class(name string) Paint {
	return Paint{Class: name}
}

// Inline paints with inline stroke and fill.
func Inline(st svgshape.Stroke) Paint {
	return Paint{Stroke: &st}
}

// Canvas is the drawing surface handed to a Drawing. Every encoder
// provides its own Canvas, so one Drawing renders to all output formats.
type Canvas interface {
	Rect(x, y, width, height int, p Paint)
	RoundRect(x, y, width, height, radius int, corners svgshape.Corner, p Paint)
	Line(x1, y1, x2, y2 int, p Paint)
	Text(x, y int, text string, p Paint, opts ...svgshape.TextOption)
}

// Drawing issues shapes onto a Canvas. It may be called more than once and
// must not keep the Canvas after returning.
type Drawing func(c Canvas)

// Frame describes the surface a Drawing is rendered on.
type Frame struct {
	// Width and Height of the view box in user units.
	Width, Height int
	// CSS is the style sheet body. It is trusted and written unescaped.
	CSS string
	// Background fills the frame before drawing, nil keeps it transparent.
	Background      color.Color
	BackgroundImage image.Image
	// Scale is the number of raster pixels per user unit. Vector encoders
	// ignore it.
	Scale float64
}

func (f Frame) scale() float64 {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// pixelSize returns the raster size of the frame.
func (f Frame) pixelSize() (int, int) {
	s := f.scale()
	w, h := int(float64(f.Width)*s+0.5), int(float64(f.Height)*s+0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
