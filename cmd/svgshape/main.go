// Command svgshape renders rectangles with selectively rounded corners,
// lines and labels to SVG, PNG or JPEG.
package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Mictilt/go-svgshape"
	"github.com/Mictilt/go-svgshape/writer/standard"
)

func main() {
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("svgshape: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "svgshape",
		Usage: "draw rounded rectangles, lines and labels as SVG or raster images",
		Commands: []*cli.Command{
			drawCommand(),
			rectCommand(),
			escapeCommand(),
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   pipeName,
			Usage:   "destination file, `-` for stdout",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "svg, svgo, png or jpeg; guessed from --out when empty",
		},
		&cli.Float64Flag{
			Name:  "scale",
			Value: 1,
			Usage: "raster pixels per user unit",
		},
		&cli.StringFlag{
			Name:  "bg",
			Usage: "background color as #rrggbb, overrides the scene",
		},
	}
}

// render writes d with the output flags of c on top of opts.
func render(c *cli.Context, d standard.Drawing, opts ...standard.ImageOption) error {
	out := c.String("out")
	formatOpt, raster, err := formatOption(c.String("format"), out)
	if err != nil {
		return err
	}

	wc, err := openOutput(out, c.App.Writer, raster)
	if err != nil {
		return err
	}

	opts = append(opts, formatOpt, standard.WithScale(c.Float64("scale")))
	if bg := c.String("bg"); bg != "" {
		opts = append(opts, standard.WithBgColorRGBHex(bg))
	}

	w := standard.NewWithWriter(wc, opts...)
	if err = w.Write(d); err != nil {
		_ = w.Close()
		return errors.Wrap(err, "render")
	}
	return w.Close()
}

func drawCommand() *cli.Command {
	return &cli.Command{
		Name:      "draw",
		Usage:     "render a YAML scene",
		ArgsUsage: " ",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "scene",
				Aliases:  []string{"s"},
				Usage:    "scene file, `-` for stdin",
				Required: true,
			},
		}, outputFlags()...),
		Action: func(c *cli.Context) error {
			scene, err := LoadSceneFile(c.String("scene"), c.App.Reader)
			if err != nil {
				return err
			}
			return render(c, scene.Drawing(), scene.Options()...)
		},
	}
}

func rectCommand() *cli.Command {
	return &cli.Command{
		Name:  "rect",
		Usage: "render a single rectangle",
		Flags: append([]cli.Flag{
			&cli.IntFlag{Name: "width", Value: 100, Usage: "rectangle width"},
			&cli.IntFlag{Name: "height", Value: 50, Usage: "rectangle height"},
			&cli.IntFlag{Name: "radius", Aliases: []string{"r"}, Value: 8, Usage: "corner radius"},
			&cli.StringFlag{
				Name:  "corners",
				Value: "all",
				Usage: "round corners, e.g. top-left,right or none",
			},
			&cli.IntFlag{Name: "margin", Value: 2, Usage: "space around the rectangle"},
			&cli.StringFlag{Name: "class", Usage: "style class, replaces the inline stroke"},
			&cli.StringFlag{Name: "style", Usage: "CSS for the style block"},
			&cli.StringFlag{Name: "stroke", Value: "black", Usage: "stroke color"},
			&cli.IntFlag{Name: "stroke-width", Value: 1, Usage: "stroke width"},
			&cli.StringFlag{Name: "fill", Usage: "fill color, empty for none"},
			&cli.StringFlag{Name: "linejoin", Value: svgshape.DefaultLineJoin, Usage: "stroke line join"},
		}, outputFlags()...),
		Action: func(c *cli.Context) error {
			corners, err := svgshape.ParseCorners(c.String("corners"))
			if err != nil {
				return err
			}
			if c.Int("width") < 0 || c.Int("height") < 0 || c.Int("radius") < 0 {
				return errors.New("width, height and radius must not be negative")
			}

			m := c.Int("margin")
			sh := Shape{
				Kind:    kindRoundRect,
				X:       m,
				Y:       m,
				Width:   c.Int("width"),
				Height:  c.Int("height"),
				Radius:  c.Int("radius"),
				Class:   c.String("class"),
				corners: corners,
			}
			if sh.Class == "" {
				sh.Stroke = &StrokeSpec{
					Width:    c.Int("stroke-width"),
					Color:    c.String("stroke"),
					Fill:     c.String("fill"),
					LineJoin: c.String("linejoin"),
				}
			}

			scene := &Scene{Margin: m, Style: c.String("style"), Shapes: []Shape{sh}}
			return render(c, scene.Drawing(), scene.Options()...)
		},
	}
}

func escapeCommand() *cli.Command {
	return &cli.Command{
		Name:      "escape",
		Usage:     "escape text for use in SVG markup, reads stdin without arguments",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				_, err := io.WriteString(c.App.Writer,
					svgshape.EscapeText(strings.Join(c.Args().Slice(), " "))+"\n")
				return err
			}

			_, err := io.Copy(svgshape.NewEscapeWriter(c.App.Writer), c.App.Reader)
			return errors.Wrap(err, "escape stdin")
		},
	}
}
