package standard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/Mictilt/go-svgshape"
	"github.com/Mictilt/go-svgshape/writer/standard/imgkit"
)

type formatTyp uint8

const (
	// SVG_FORMAT as default output file format, written by the svgshape emitters.
	SVG_FORMAT formatTyp = iota
	// SVGO_FORMAT writes SVG through github.com/ajstarks/svgo.
	SVGO_FORMAT
	// PNG_FORMAT .
	PNG_FORMAT
	// JPEG_FORMAT .
	JPEG_FORMAT
)

// ImageEncoder is an interface which describes the rule how to render a
// Drawing into io.Writer.
type ImageEncoder interface {
	// Encode renders d on a surface described by f and writes it to w.
	Encode(w io.Writer, d Drawing, f Frame) error
}

// backgroundDataURL encodes the frame background image as a base64 PNG
// data URL for <image> elements, shrunk to the raster size of the frame.
func backgroundDataURL(f Frame) (string, error) {
	w, h := f.pixelSize()
	return pngDataURL(imgkit.Fit(f.BackgroundImage, w, h))
}

// pngDataURL encodes img as a base64 PNG data URL.
func pngDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "encode background image")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// svgEncoder writes the document with the svgshape emitters.
type svgEncoder struct{}

func (s svgEncoder) Encode(w io.Writer, d Drawing, f Frame) error {
	doc := svgshape.NewDocument(f.Width, f.Height)
	if f.CSS != "" {
		doc.Style = svgshape.StyleBlock(f.CSS)
	}

	if f.Background != nil {
		svgshape.RectStroke(doc, 0, 0, f.Width, f.Height, svgshape.Stroke{
			Color: "none",
			Fill:  colorToHex(f.Background),
		})
	}
	if f.BackgroundImage != nil {
		dataURL, err := backgroundDataURL(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(doc, `<image x="0" y="0" width="%d" height="%d" href="%s"/>`+"\n",
			f.Width, f.Height, dataURL)
	}

	if d != nil {
		d(svgCanvas{w: doc})
	}

	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, "write svg document")
	}
	return nil
}

type svgCanvas struct {
	w io.Writer
}

func (c svgCanvas) Rect(x, y, width, height int, p Paint) {
	if p.Stroke != nil {
		svgshape.RectStroke(c.w, x, y, width, height, *p.Stroke)
		return
	}
	svgshape.Rect(c.w, x, y, width, height, p.Class)
}

func (c svgCanvas) RoundRect(x, y, width, height, radius int, corners svgshape.Corner, p Paint) {
	if p.Stroke != nil {
		svgshape.RoundRectStroke(c.w, x, y, width, height, radius, corners, *p.Stroke)
		return
	}
	svgshape.RoundRect(c.w, x, y, width, height, radius, corners, p.Class)
}

func (c svgCanvas) Line(x1, y1, x2, y2 int, p Paint) {
	if p.Stroke != nil {
		svgshape.LineStroke(c.w, x1, y1, x2, y2, *p.Stroke)
		return
	}
	svgshape.Line(c.w, x1, y1, x2, y2, p.Class)
}

func (c svgCanvas) Text(x, y int, text string, p Paint, opts ...svgshape.TextOption) {
	svgshape.Text(c.w, x, y, text, p.Class, opts...)
}

// SvgoEncoder writes the document through github.com/ajstarks/svgo. Unlike
// svgEncoder the root element carries a fixed pixel size.
type SvgoEncoder struct{}

func (s SvgoEncoder) Encode(w io.Writer, d Drawing, f Frame) error {
	sw := svgshape.NewWriter(w)
	canvas := svgo.New(sw)
	canvas.Startview(f.Width, f.Height, 0, 0, f.Width, f.Height)
	if f.CSS != "" {
		canvas.Style("text/css", f.CSS)
	}

	if f.Background != nil {
		canvas.Rect(0, 0, f.Width, f.Height, "fill:"+colorToHex(f.Background))
	}
	if f.BackgroundImage != nil {
		dataURL, err := backgroundDataURL(f)
		if err != nil {
			return err
		}
		canvas.Image(0, 0, f.Width, f.Height, dataURL)
	}

	if d != nil {
		d(svgoCanvas{canvas})
	}
	canvas.End()

	return errors.Wrap(sw.Err(), "write svg document")
}

type svgoCanvas struct {
	svg *svgo.SVG
}

// attrs turns p into svgo style arguments. svgo writes arguments that
// contain '=' as raw attributes and the others as a style attribute.
func (p Paint) attrs() []string {
	if p.Stroke == nil {
		if p.Class == "" {
			return nil
		}
		return []string{`class="` + svgshape.EscapeText(p.Class) + `"`}
	}

	st := p.Stroke
	join := st.LineJoin
	if join == "" {
		join = svgshape.DefaultLineJoin
	}
	style := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linejoin:%s;",
		svgshape.EscapeText(st.Color), st.Width, svgshape.EscapeText(join))
	if st.Fill == "" {
		style += "fill-opacity:0"
	} else {
		style += "fill:" + svgshape.EscapeText(st.Fill)
	}
	return []string{style}
}

func (c svgoCanvas) Rect(x, y, width, height int, p Paint) {
	c.svg.Rect(x, y, width, height, p.attrs()...)
}

func (c svgoCanvas) RoundRect(x, y, width, height, radius int, corners svgshape.Corner, p Paint) {
	switch corners & svgshape.CornersAll {
	case svgshape.CornersNone:
		c.svg.Rect(x, y, width, height, p.attrs()...)
	case svgshape.CornersAll:
		r := svgshape.ResolveRoundRect(width, height, radius, corners).Radius
		c.svg.Roundrect(x, y, width, height, r, r, p.attrs()...)
	default:
		c.svg.Path(svgshape.RoundRectPath(x, y, width, height, radius, corners).Data(), p.attrs()...)
	}
}

func (c svgoCanvas) Line(x1, y1, x2, y2 int, p Paint) {
	c.svg.Line(x1, y1, x2, y2, p.attrs()...)
}

func (c svgoCanvas) Text(x, y int, text string, p Paint, opts ...svgshape.TextOption) {
	baseline, anchor := svgshape.TextAttrs(opts...)
	attrs := append(p.attrs(),
		`dominant-baseline="`+svgshape.EscapeText(baseline)+`"`,
		`text-anchor="`+svgshape.EscapeText(anchor)+`"`,
	)
	c.svg.Text(x, y, text, attrs...)
}

// pngEncoder and jpegEncoder rasterize the drawing with gg first.
type pngEncoder struct{}

func (j pngEncoder) Encode(w io.Writer, d Drawing, f Frame) error {
	return errors.Wrap(png.Encode(w, Rasterize(d, f)), "encode png")
}

type jpegEncoder struct{}

func (j jpegEncoder) Encode(w io.Writer, d Drawing, f Frame) error {
	// JPEG has no alpha channel, transparent areas would turn black
	if f.Background == nil || !isOpaque(f.Background) {
		f.Background = color.White
	}
	return errors.Wrap(jpeg.Encode(w, Rasterize(d, f), nil), "encode jpeg")
}
