// Package imgkit loads, saves and prepares background images.
package imgkit

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Read decodes the image at path, applying any EXIF orientation.
func Read(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "read image %s", path)
	}
	return img, nil
}

// Save encodes img in the format implied by the extension of path.
func Save(img image.Image, path string) error {
	return errors.Wrapf(imaging.Save(img, path), "save image %s", path)
}

// Binaryzation turns src into black and white: pixels whose gray level is
// above threshold become white, the others black.
func Binaryzation(src image.Image, threshold uint8) *image.Gray {
	gray := Gray(src)
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if gray.GrayAt(x, y).Y > threshold {
				gray.SetGray(x, y, color.Gray{Y: 0xff})
			} else {
				gray.SetGray(x, y, color.Gray{})
			}
		}
	}
	return gray
}

func Gray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.GrayModel.Convert(src.At(x, y))
			gray.SetGray(x, y, c.(color.Gray))
		}
	}

	return gray
}

// Scale stretches src onto a new image covering rect. A nil scaler means
// draw.ApproxBiLinear.
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) image.Image {
	if scale == nil {
		scale = draw.ApproxBiLinear
	}

	dst := image.NewRGBA(rect)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}

// Fit scales src down, keeping its aspect ratio, so it fits in a width by
// height box. Images that already fit are returned as is.
func Fit(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return src
	}
	return imaging.Fit(src, width, height, imaging.Lanczos)
}
