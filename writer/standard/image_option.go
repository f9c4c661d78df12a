package standard

import (
	"image"
	"image/color"
)

// ImageOption configures a Writer.
type ImageOption interface {
	apply(o *outputImageOptions)
}

const (
	_defaultViewWidth  = 256
	_defaultViewHeight = 256
)

type outputImageOptions struct {
	viewWidth, viewHeight int
	css                   string

	// bgColor is ignored while bgTransparent is set.
	bgColor       color.RGBA
	bgTransparent bool
	bgImage       image.Image

	scale float64

	imageEncoder ImageEncoder
}

func defaultOutputImageOption() *outputImageOptions {
	return &outputImageOptions{
		viewWidth:     _defaultViewWidth,
		viewHeight:    _defaultViewHeight,
		bgColor:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		bgTransparent: true,
		scale:         1,
		imageEncoder:  svgEncoder{},
	}
}

// frame describes the surface every Write renders on.
func (oo *outputImageOptions) frame() Frame {
	f := Frame{
		Width:           oo.viewWidth,
		Height:          oo.viewHeight,
		CSS:             oo.css,
		BackgroundImage: oo.bgImage,
		Scale:           oo.scale,
	}
	if !oo.bgTransparent {
		f.Background = oo.bgColor
	}
	return f
}
