package svgshape_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mictilt/go-svgshape"
)

const wantHeader = `<svg xmlns="http://www.w3.org/2000/svg" width="100%" viewBox="0 0 200 100" style="max-width: 1026px;">` + "\n"

func Test_WriteDocument(t *testing.T) {
	var b strings.Builder
	svgshape.WriteDocument(&b, 200, 100, "<style>.a{fill:red}</style>", `<rect class="a"/>`)

	assert.Equal(t, wantHeader+
		"<style>.a{fill:red}</style>\n"+
		`<rect class="a"/>`+"\n"+
		"</svg>\n", b.String())
}

func Test_WriteDocument_styleIsVerbatim(t *testing.T) {
	var b strings.Builder
	css := svgshape.StyleBlock(`text { font-family: "Fira & Co"; }`)
	svgshape.WriteDocument(&b, 200, 100, css, "")
	assert.Contains(t, b.String(), `"Fira & Co"`)
	assert.True(t, strings.HasPrefix(b.String(), wantHeader))
}

func Test_Document(t *testing.T) {
	doc := svgshape.NewDocument(200, 100)
	doc.Style = svgshape.StyleBlock(".c{}")
	svgshape.Rect(doc, 0, 0, 10, 10, "c")
	svgshape.Line(doc, 0, 0, 10, 10, "c")

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, buf.Bytes(), doc.Bytes())

	var want strings.Builder
	svgshape.WriteDocument(&want, 200, 100, doc.Style, doc.Body())
	assert.Equal(t, want.String(), buf.String())

	doc.Reset()
	assert.Empty(t, doc.Body())
}

type failWriter struct {
	calls int
}

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, assert.AnError
}

func Test_Writer_stickyError(t *testing.T) {
	fw := &failWriter{}
	sw := svgshape.NewWriter(fw)

	svgshape.Rect(sw, 0, 0, 1, 1, "c")
	svgshape.Text(sw, 0, 0, "x", "c")

	assert.Equal(t, assert.AnError, sw.Err())
	assert.Equal(t, 1, fw.calls)
	assert.Equal(t, int64(0), sw.Written())
}

func Test_Writer_counts(t *testing.T) {
	var buf bytes.Buffer
	sw := svgshape.NewWriter(&buf)
	svgshape.Line(sw, 0, 0, 1, 1, "l")
	assert.NoError(t, sw.Err())
	assert.Equal(t, int64(buf.Len()), sw.Written())
}
