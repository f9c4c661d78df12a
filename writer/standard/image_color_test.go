package standard

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func Test_parseFromHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#1a2B3c", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{"1a2b3c80", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}},
		{"#12", color.RGBA{A: 0xff}},
		{"#zzzzzz", color.RGBA{A: 0xff}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, parseFromHex(c.in), c.in)
	}
}

func Test_parsePaintColor(t *testing.T) {
	_, ok := parsePaintColor("none")
	assert.False(t, ok)
	_, ok = parsePaintColor("")
	assert.False(t, ok)

	c, ok := parsePaintColor(" SteelBlue ")
	assert.True(t, ok)
	assert.Equal(t, colornames.Steelblue, c)

	c, ok = parsePaintColor("#00ff00")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, c)

	_, ok = parsePaintColor("not-a-color")
	assert.False(t, ok)
}

func Test_colorToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", colorToHex(color.RGBA{R: 0xff, A: 0xff}))
	assert.Equal(t, "", colorToHex(nil))
}
