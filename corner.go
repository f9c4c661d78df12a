package svgshape

import (
	"strings"

	"github.com/pkg/errors"
)

// Corner is a set of rectangle corners. Each bit marks one corner as round.
type Corner uint8

const (
	TopLeft Corner = 1 << iota
	TopRight
	BottomLeft
	BottomRight
)

// Derived corner selections.
const (
	CornersNone   Corner = 0
	CornersLeft          = TopLeft | BottomLeft
	CornersRight         = TopRight | BottomRight
	CornersTop           = TopLeft | TopRight
	CornersBottom        = BottomLeft | BottomRight
	CornersAll           = CornersLeft | CornersRight
)

var cornerNames = []struct {
	name string
	c    Corner
}{
	{"top-left", TopLeft},
	{"top-right", TopRight},
	{"bottom-left", BottomLeft},
	{"bottom-right", BottomRight},
}

var cornerAliases = map[string]Corner{
	"left":   CornersLeft,
	"right":  CornersRight,
	"top":    CornersTop,
	"bottom": CornersBottom,
	"all":    CornersAll,
	"none":   CornersNone,
}

// Has reports whether every corner of x is in c.
func (c Corner) Has(x Corner) bool {
	return c&x == x
}

// Count returns the number of round corners.
func (c Corner) Count() int {
	n := 0
	for _, cn := range cornerNames {
		if c&cn.c != 0 {
			n++
		}
	}
	return n
}

func (c Corner) String() string {
	if c&CornersAll == CornersNone {
		return "none"
	}
	if c&CornersAll == CornersAll {
		return "all"
	}
	names := make([]string, 0, 4)
	for _, cn := range cornerNames {
		if c&cn.c != 0 {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseCorners parses a comma separated list of corner names, for example
// "top-left,bottom-right" or "left". Whitespace around names is ignored.
func ParseCorners(s string) (Corner, error) {
	var c Corner
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if alias, ok := cornerAliases[part]; ok {
			c |= alias
			continue
		}
		found := false
		for _, cn := range cornerNames {
			if cn.name == part {
				c |= cn.c
				found = true
				break
			}
		}
		if !found {
			return CornersNone, errors.Errorf("unknown corner %q", part)
		}
	}
	return c, nil
}
