package svgshape

import (
	"fmt"
	"io"
)

// DefaultLineJoin is used when a Stroke leaves LineJoin empty.
const DefaultLineJoin = "miter"

// Stroke is an inline presentation style. An empty Fill means "no fill"
// and is written as fill-opacity="0" rather than omitted.
type Stroke struct {
	Width    int
	Color    string
	Fill     string
	LineJoin string
}

func (s Stroke) lineJoin() string {
	if s.LineJoin == "" {
		return DefaultLineJoin
	}
	return s.LineJoin
}

// writeStrokeAttrs writes the stroke attributes, each followed by a space.
func (s Stroke) writeStrokeAttrs(w io.Writer) {
	io.WriteString(w, `stroke="`)
	WriteEscaped(w, s.Color)
	fmt.Fprintf(w, `" stroke-width="%d" stroke-linejoin="`, s.Width)
	WriteEscaped(w, s.lineJoin())
	io.WriteString(w, `" `)
}

// writeFillAttrs writes fill or fill-opacity, followed by a space.
func (s Stroke) writeFillAttrs(w io.Writer) {
	if s.Fill == "" {
		io.WriteString(w, `fill-opacity="0" `)
		return
	}
	io.WriteString(w, `fill="`)
	WriteEscaped(w, s.Fill)
	io.WriteString(w, `" `)
}

func writeClassAttr(w io.Writer, class string) {
	io.WriteString(w, `class="`)
	WriteEscaped(w, class)
	io.WriteString(w, `"`)
}

// textOptions holds the optional text label attributes.
type textOptions struct {
	baseline string
	anchor   string
}

func defaultTextOptions() textOptions {
	return textOptions{
		baseline: "auto",
		anchor:   "start",
	}
}

// TextOption configures a text label.
type TextOption interface {
	apply(o *textOptions)
}

type funcTextOption struct {
	f func(o *textOptions)
}

func (fo funcTextOption) apply(o *textOptions) {
	fo.f(o)
}

// WithBaseline sets dominant-baseline: auto, middle, hanging, ...
func WithBaseline(baseline string) TextOption {
	return funcTextOption{func(o *textOptions) {
		if baseline != "" {
			o.baseline = baseline
		}
	}}
}

// WithAnchor sets text-anchor: start, middle or end.
func WithAnchor(anchor string) TextOption {
	return funcTextOption{func(o *textOptions) {
		if anchor != "" {
			o.anchor = anchor
		}
	}}
}

// TextAttrs returns the dominant-baseline and text-anchor values opts
// resolve to, for renderers that place labels themselves.
func TextAttrs(opts ...TextOption) (baseline, anchor string) {
	o := defaultTextOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o.baseline, o.anchor
}
