package standard

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/Mictilt/go-svgshape/writer/standard/imgkit"
)

// funcOption wraps a function that modifies outputImageOptions into an
// implementation of the ImageOption interface.
type funcOption struct {
	f func(oo *outputImageOptions)
}

func (fo *funcOption) apply(oo *outputImageOptions) {
	fo.f(oo)
}

func newFuncOption(f func(oo *outputImageOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithViewSize sets the view box size in user units. Non-positive values
// keep the current size.
func WithViewSize(width, height int) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if width > 0 {
			oo.viewWidth = width
		}
		if height > 0 {
			oo.viewHeight = height
		}
	})
}

// WithStyle sets the CSS written into the document style block. The text
// is trusted and never escaped.
func WithStyle(css string) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		oo.css = css
	})
}

// WithStyleFile loads the document CSS from a file.
func WithStyleFile(f string) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		data, err := os.ReadFile(f)
		if err != nil {
			fmt.Printf("could not read style file(%s), error=%v\n", f, err)
			return
		}

		oo.css = string(data)
	})
}

// WithBgTransparent makes the background transparent.
func WithBgTransparent() ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		oo.bgTransparent = true
	})
}

// WithBgColor background color
func WithBgColor(c color.Color) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if c == nil {
			return
		}

		oo.bgColor = parseFromColor(c)
		oo.bgTransparent = false
	})
}

// WithBgColorRGBHex background color
func WithBgColorRGBHex(hex string) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if hex == "" {
			return
		}

		oo.bgColor = parseFromHex(hex)
		oo.bgTransparent = false
	})
}

// WithBackgroundImage draws img under the drawing, stretched to the frame.
func WithBackgroundImage(img image.Image) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if img == nil {
			return
		}

		oo.bgImage = img
	})
}

// WithBackgroundImageFile loads the background image from a file, any
// format imaging can decode.
func WithBackgroundImageFile(f string) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		img, err := imgkit.Read(f)
		if err != nil {
			fmt.Printf("could not open file(%s), error=%v\n", f, err)
			return
		}

		oo.bgImage = img
	})
}

// WithBackgroundGray turns the background image into grayscale. It must
// come after the option that sets the image.
func WithBackgroundGray() ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if oo.bgImage == nil {
			return
		}

		oo.bgImage = imgkit.Gray(oo.bgImage)
	})
}

// WithBackgroundBinaryzation turns the background image into black and
// white around threshold. It must come after the option that sets the image.
func WithBackgroundBinaryzation(threshold uint8) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if oo.bgImage == nil {
			return
		}

		oo.bgImage = imgkit.Binaryzation(oo.bgImage, threshold)
	})
}

// WithScale sets how many raster pixels one user unit takes in PNG and
// JPEG output.
func WithScale(scale float64) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if scale <= 0 {
			return
		}

		oo.scale = scale
	})
}

// WithBuiltinImageEncoder option includes: SVG_FORMAT as default, SVGO_FORMAT,
// PNG_FORMAT, JPEG_FORMAT.
func WithBuiltinImageEncoder(format formatTyp) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		var encoder ImageEncoder
		switch format {
		case SVG_FORMAT:
			encoder = svgEncoder{}
		case SVGO_FORMAT:
			encoder = SvgoEncoder{}
		case PNG_FORMAT:
			encoder = pngEncoder{}
		case JPEG_FORMAT:
			encoder = jpegEncoder{}
		default:
			panic("Not supported file format")
		}

		oo.imageEncoder = encoder
	})
}

// WithCustomImageEncoder to use custom image encoder to render a Drawing
// into io.Writer
func WithCustomImageEncoder(encoder ImageEncoder) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if encoder == nil {
			return
		}

		oo.imageEncoder = encoder
	})
}
