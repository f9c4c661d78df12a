package main

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"svgshape"}, args...))
	return out.String(), err
}

func Test_escapeCommand(t *testing.T) {
	out, err := runApp(t, "", "escape", "Tom", "&", `"Jerry"`)
	require.NoError(t, err)
	assert.Equal(t, "Tom &amp; &quot;Jerry&quot;\n", out)

	out, err = runApp(t, "<b>it's</b>", "escape")
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;it&apos;s&lt;/b&gt;", out)
}

func Test_rectCommand_stdout(t *testing.T) {
	out, err := runApp(t, "", "rect", "--width", "40", "--height", "20", "-r", "5", "--corners", "right", "--margin", "0")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100%" viewBox="0 0 40 20"`))
	assert.Contains(t, out, `stroke="black" stroke-width="1" stroke-linejoin="miter" fill-opacity="0" d="M 0 0 h 35 q 5 0 5 5 v 10 q 0 5 -5 5 h -35 v -20 z"`)
}

func Test_rectCommand_class(t *testing.T) {
	out, err := runApp(t, "", "rect", "--class", "pill", "--style", ".pill{fill:red}", "--corners", "none")
	require.NoError(t, err)
	assert.Contains(t, out, `<rect x="2" y="2" width="100" height="50" class="pill" />`)
	assert.Contains(t, out, "<style>\n.pill{fill:red}\n</style>")
}

func Test_rectCommand_badCorners(t *testing.T) {
	_, err := runApp(t, "", "rect", "--corners", "diagonal")
	assert.Error(t, err)
}

func Test_drawCommand_png(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(sampleScene), 0o644))

	outPath := filepath.Join(dir, "scene.png")
	_, err := runApp(t, "", "draw", "--scene", scenePath, "--out", outPath, "--scale", "2", "--bg", "#ffffff")
	require.NoError(t, err)

	fd, err := os.Open(outPath)
	require.NoError(t, err)
	defer fd.Close()

	cfg, format, err := image.DecodeConfig(fd)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 248, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func Test_drawCommand_stdinToSvgo(t *testing.T) {
	out, err := runApp(t, sampleScene, "draw", "--scene", "-", "--format", "svgo")
	require.NoError(t, err)
	assert.Contains(t, out, `class="card"`)
	assert.Contains(t, out, "a &lt; b")
}

func Test_drawCommand_errors(t *testing.T) {
	_, err := runApp(t, "", "draw")
	assert.Error(t, err, "scene is required")

	_, err = runApp(t, sampleScene, "draw", "--scene", "-", "--format", "gif")
	assert.Error(t, err)

	_, err = runApp(t, "", "draw", "--scene", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func Test_formatOption(t *testing.T) {
	cases := []struct {
		name, out string
		raster    bool
	}{
		{"", "a.svg", false},
		{"", "-", false},
		{"", "a.PNG", true},
		{"", "a.jpg", true},
		{"jpeg", "a.svg", true},
		{"svgo", "a.png", false},
	}

	for _, c := range cases {
		opt, raster, err := formatOption(c.name, c.out)
		require.NoError(t, err)
		assert.NotNil(t, opt)
		assert.Equal(t, c.raster, raster, "%s %s", c.name, c.out)
	}

	_, _, err := formatOption("bmp", "")
	assert.Error(t, err)
}
