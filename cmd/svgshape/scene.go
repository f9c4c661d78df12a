package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Mictilt/go-svgshape"
	"github.com/Mictilt/go-svgshape/writer/standard"
)

// Shape kinds understood in scene files.
const (
	kindRect      = "rect"
	kindRoundRect = "roundrect"
	kindLine      = "line"
	kindText      = "text"
)

// glyphAdvance is the advance of one narrow cell of the raster font, used
// to estimate label extents.
const glyphAdvance = 7

// Scene is the YAML description of one drawing.
//
//	width: 240
//	height: 80
//	style: |
//	  .card { fill: #fafafa; stroke: #333; }
//	shapes:
//	  - kind: roundrect
//	    x: 10
//	    y: 10
//	    width: 220
//	    height: 60
//	    radius: 12
//	    corners: top
//	    class: card
type Scene struct {
	// Width and Height of the view box. Zero means fit the shapes.
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Margin     int     `yaml:"margin"`
	Style      string  `yaml:"style"`
	StyleFile  string  `yaml:"style_file"`
	Background string  `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape is one scene element. Which fields apply depends on Kind.
type Shape struct {
	Kind string `yaml:"kind"`

	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Radius int `yaml:"radius"`
	// Corners is a comma separated list such as "top-left,right".
	Corners string `yaml:"corners"`

	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`

	Text     string `yaml:"text"`
	Baseline string `yaml:"baseline"`
	Anchor   string `yaml:"anchor"`

	Class  string      `yaml:"class"`
	Stroke *StrokeSpec `yaml:"stroke"`

	corners svgshape.Corner
}

// StrokeSpec is the YAML form of svgshape.Stroke.
type StrokeSpec struct {
	Width    int    `yaml:"width"`
	Color    string `yaml:"color"`
	Fill     string `yaml:"fill"`
	LineJoin string `yaml:"linejoin"`
}

// LoadScene decodes and validates a scene. Unknown keys are rejected.
func LoadScene(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	scene := new(Scene)
	if err := dec.Decode(scene); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene")
		}
		return nil, errors.Wrap(err, "decode scene")
	}

	if err := scene.validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

// LoadSceneFile reads a scene from path, "-" meaning stdin. A relative
// style_file is resolved against the working directory.
func LoadSceneFile(path string, stdin io.Reader) (*Scene, error) {
	if path == pipeName {
		return LoadScene(stdin)
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer fd.Close()

	scene, err := LoadScene(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return scene, nil
}

func (s *Scene) validate() error {
	if s.Width < 0 || s.Height < 0 || s.Margin < 0 {
		return errors.New("scene size and margin must not be negative")
	}

	for i := range s.Shapes {
		sh := &s.Shapes[i]
		sh.Kind = strings.ToLower(strings.TrimSpace(sh.Kind))

		switch sh.Kind {
		case kindRect, kindLine, kindText:
		case kindRoundRect:
			c, err := svgshape.ParseCorners(sh.Corners)
			if err != nil {
				return errors.Wrapf(err, "shape %d", i)
			}
			sh.corners = c
		case "":
			return errors.Errorf("shape %d: missing kind", i)
		default:
			return errors.Errorf("shape %d: unknown kind %q", i, sh.Kind)
		}

		if sh.Width < 0 || sh.Height < 0 || sh.Radius < 0 {
			return errors.Errorf("shape %d: negative size", i)
		}
	}
	return nil
}

func (sh Shape) paint() standard.Paint {
	if sh.Stroke == nil {
		return standard.Class(sh.Class)
	}
	return standard.Inline(svgshape.Stroke{
		Width:    sh.Stroke.Width,
		Color:    sh.Stroke.Color,
		Fill:     sh.Stroke.Fill,
		LineJoin: sh.Stroke.LineJoin,
	})
}

// Drawing renders the shapes in order.
func (s *Scene) Drawing() standard.Drawing {
	return func(c standard.Canvas) {
		for _, sh := range s.Shapes {
			p := sh.paint()
			switch sh.Kind {
			case kindRect:
				c.Rect(sh.X, sh.Y, sh.Width, sh.Height, p)
			case kindRoundRect:
				c.RoundRect(sh.X, sh.Y, sh.Width, sh.Height, sh.Radius, sh.corners, p)
			case kindLine:
				c.Line(sh.X1, sh.Y1, sh.X2, sh.Y2, p)
			case kindText:
				c.Text(sh.X, sh.Y, sh.Text, p,
					svgshape.WithBaseline(sh.Baseline), svgshape.WithAnchor(sh.Anchor))
			}
		}
	}
}

// textWidth estimates the rendered width of a label in user units. Wide
// East Asian runes take two cells.
func textWidth(text string) int {
	return runewidth.StringWidth(text) * glyphAdvance
}

// Extent returns the smallest view size that holds every shape plus the
// margin.
func (s *Scene) Extent() (width, height int) {
	for _, sh := range s.Shapes {
		var right, bottom int
		switch sh.Kind {
		case kindRect, kindRoundRect:
			right, bottom = sh.X+sh.Width, sh.Y+sh.Height
		case kindLine:
			right, bottom = maxInt(sh.X1, sh.X2), maxInt(sh.Y1, sh.Y2)
		case kindText:
			w := textWidth(sh.Text)
			switch sh.Anchor {
			case "middle":
				right = sh.X + (w+1)/2
			case "end":
				right = sh.X
			default:
				right = sh.X + w
			}
			// room for descenders
			bottom = sh.Y + glyphAdvance/2
		}
		width, height = maxInt(width, right), maxInt(height, bottom)
	}
	return width + s.Margin, height + s.Margin
}

// ViewSize returns the declared size, filling zero dimensions from Extent.
func (s *Scene) ViewSize() (width, height int) {
	width, height = s.Width, s.Height
	if width > 0 && height > 0 {
		return width, height
	}

	ew, eh := s.Extent()
	if width == 0 {
		width = ew
	}
	if height == 0 {
		height = eh
	}
	return width, height
}

// Options converts the scene header into writer options.
func (s *Scene) Options() []standard.ImageOption {
	w, h := s.ViewSize()
	opts := []standard.ImageOption{standard.WithViewSize(w, h)}
	if s.StyleFile != "" {
		opts = append(opts, standard.WithStyleFile(s.StyleFile))
	}
	if s.Style != "" {
		opts = append(opts, standard.WithStyle(s.Style))
	}
	if s.Background != "" {
		opts = append(opts, standard.WithBgColorRGBHex(s.Background))
	}
	return opts
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
