package main

import (
	"fmt"
	"os"

	"github.com/Mictilt/go-svgshape"
	"github.com/Mictilt/go-svgshape/writer/standard"
)

const css = `
.tab { fill: #e8eef7; stroke: #4a6fa5; stroke-width: 1; }
.label { font: 12px sans-serif; fill: #1d2b3a; }
.rule { stroke: #4a6fa5; }
`

var corners = []struct {
	name string
	c    svgshape.Corner
}{
	{"none", svgshape.CornersNone},
	{"top", svgshape.CornersTop},
	{"left", svgshape.CornersLeft},
	{"top-left", svgshape.TopLeft},
	{"diagonal", svgshape.TopLeft | svgshape.BottomRight},
	{"all", svgshape.CornersAll},
}

func tabs(c standard.Canvas) {
	for i, cn := range corners {
		x := 10 + i*110
		c.RoundRect(x, 10, 100, 40, 12, cn.c, standard.Class("tab"))
		c.Text(x+50, 30, cn.name, standard.Class("label"),
			svgshape.WithAnchor("middle"), svgshape.WithBaseline("middle"))
	}
	c.Line(10, 60, 10+len(corners)*110-10, 60, standard.Class("rule"))
}

func main() {
	// plain svg through the emitters
	w, err := standard.New("./rounded-corners.svg",
		standard.WithViewSize(10+len(corners)*110, 70),
		standard.WithStyle(css),
	)
	if err != nil {
		panic(err)
	}
	if err = w.Write(tabs); err != nil {
		panic(err)
	}
	_ = w.Close()

	// the same drawing rasterized at twice the size
	w2, err := standard.New("./rounded-corners.png",
		standard.WithViewSize(10+len(corners)*110, 70),
		standard.WithBgColorRGBHex("#ffffff"),
		standard.WithScale(2),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err != nil {
		panic(err)
	}
	if err = w2.Write(tabs); err != nil {
		panic(err)
	}
	_ = w2.Close()

	// the emitters also work without the writer
	doc := svgshape.NewDocument(120, 60)
	doc.Style = svgshape.StyleBlock(css)
	svgshape.RectLR(doc, 10, 10, 100, 40, "tab", true, false, 20)
	if _, err = doc.WriteTo(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
