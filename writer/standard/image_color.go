package standard

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// parseFromHex parses "#rgb", "#rrggbb" or "#rrggbbaa", with or without the
// leading '#'. Malformed input yields opaque black.
func parseFromHex(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	s = strings.TrimPrefix(s, "#")

	var err error
	switch len(s) {
	case 3:
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R, c.G, c.B = c.R*17, c.G*17, c.B*17
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

func parseFromColor(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// parsePaintColor resolves an SVG paint value. "none" and the empty string
// report ok=false. Hex values and SVG color keywords are understood.
func parsePaintColor(s string) (c color.RGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "none":
		return color.RGBA{}, false
	case s == "transparent":
		return color.RGBA{}, true
	case strings.HasPrefix(s, "#"):
		return parseFromHex(s), true
	}

	named, ok := colornames.Map[s]
	return named, ok
}

// colorToHex formats c as "#rrggbb", alpha is dropped.
func colorToHex(c color.Color) string {
	if c == nil {
		return ""
	}
	rgba := parseFromColor(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func isOpaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0xffff
}
