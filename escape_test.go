package svgshape_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mictilt/go-svgshape"
)

func Test_EscapeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a<b&c>d'e"f`, "a&lt;b&amp;c&gt;d&apos;e&quot;f"},
		{`<&>'"`, "&lt;&amp;&gt;&apos;&quot;"},
		{"Привет & 世界", "Привет &amp; 世界"},
		{"&amp;", "&amp;amp;"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, svgshape.EscapeText(c.in), "input %q", c.in)
	}
}

func Test_EscapeText_noReservedIsIdentity(t *testing.T) {
	s := "nothing to see here: 1+1=2 ©"
	assert.Equal(t, s, svgshape.EscapeText(s))
}

func Test_AppendEscaped(t *testing.T) {
	dst := []byte("prefix:")
	out := svgshape.AppendEscaped(dst, []byte("x<y"))
	assert.Equal(t, "prefix:x&lt;y", string(out))

	// invalid UTF-8 passes through untouched
	raw := []byte{0xff, '<', 0xfe}
	out = svgshape.AppendEscaped(nil, raw)
	assert.Equal(t, []byte{0xff, '&', 'l', 't', ';', 0xfe}, out)
}

func Test_EscapeRunes(t *testing.T) {
	out := svgshape.EscapeRunes([]rune(`é"ü`))
	assert.Equal(t, "é&quot;ü", string(out))
	assert.Empty(t, svgshape.EscapeRunes(nil))
}

func Test_WriteEscaped(t *testing.T) {
	var buf bytes.Buffer
	svgshape.WriteEscaped(&buf, "Tom & Jerry")
	assert.Equal(t, "Tom &amp; Jerry", buf.String())
}

func Test_EscapeWriter(t *testing.T) {
	var b strings.Builder
	ew := svgshape.NewEscapeWriter(&b)

	n, err := ew.Write([]byte("1 < 2"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "1 &lt; 2", b.String())
}
