package imgkit_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/go-svgshape/writer/standard/imgkit"
)

// gradient returns a w by h image whose gray level grows left to right.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

func Test_ReadSave(t *testing.T) {
	src := gradient(16, 8)
	path := filepath.Join(t.TempDir(), "gradient.png")

	require.NoError(t, imgkit.Save(src, path))

	img, err := imgkit.Read(path)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), img.Bounds())

	r, g, b, _ := img.At(15, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func Test_Read_missing(t *testing.T) {
	_, err := imgkit.Read(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func Test_Save_unknownExtension(t *testing.T) {
	err := imgkit.Save(gradient(2, 2), filepath.Join(t.TempDir(), "out.unknown"))
	assert.Error(t, err)
}

func Test_Gray(t *testing.T) {
	src := gradient(8, 4)
	out := imgkit.Gray(src)
	assert.Equal(t, src.Bounds(), out.Bounds())
	assert.Equal(t, uint8(0), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0xff), out.GrayAt(7, 3).Y)
}

func TestBinaryzation(t *testing.T) {
	src := gradient(256, 2)
	out := imgkit.Binaryzation(src, 127)
	assert.Equal(t, src.Bounds(), out.Bounds())

	for x := 0; x < 256; x++ {
		want := uint8(0)
		if out.GrayAt(x, 0).Y != 0 {
			want = 0xff
		}
		assert.Equal(t, want, out.GrayAt(x, 1).Y)
	}
	assert.Equal(t, uint8(0), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0xff), out.GrayAt(255, 0).Y)
}

func TestScale(t *testing.T) {
	out := imgkit.Scale(gradient(10, 10), image.Rect(0, 0, 100, 40), nil)
	assert.Equal(t, image.Rect(0, 0, 100, 40), out.Bounds())
}

func TestFit(t *testing.T) {
	small := gradient(10, 10)
	assert.Same(t, small, imgkit.Fit(small, 20, 20))

	out := imgkit.Fit(gradient(200, 100), 50, 50)
	assert.Equal(t, 50, out.Bounds().Dx())
	assert.Equal(t, 25, out.Bounds().Dy())
}
