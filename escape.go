package svgshape

import (
	"io"
	"unicode/utf8"
)

// NOTE: the five reserved characters are all ASCII, so the byte and string
//       variants below never split a multi-byte UTF-8 sequence.

var (
	ampEntity  = []byte("&amp;")
	ltEntity   = []byte("&lt;")
	gtEntity   = []byte("&gt;")
	aposEntity = []byte("&apos;")
	quotEntity = []byte("&quot;")
)

func entityOf(c rune) []byte {
	switch c {
	case '&':
		return ampEntity
	case '<':
		return ltEntity
	case '>':
		return gtEntity
	case '\'':
		return aposEntity
	case '"':
		return quotEntity
	}
	return nil
}

// AppendEscaped appends src to dst with &, <, >, ' and " replaced by their
// named entities. All other bytes, including non-ASCII ones, are copied
// verbatim. dst and src must not overlap.
func AppendEscaped(dst, src []byte) []byte {
	last := 0
	for i, b := range src {
		if b >= utf8.RuneSelf {
			continue
		}
		if ent := entityOf(rune(b)); ent != nil {
			dst = append(dst, src[last:i]...)
			dst = append(dst, ent...)
			last = i + 1
		}
	}
	return append(dst, src[last:]...)
}

// EscapeText returns s with the five reserved XML characters replaced.
func EscapeText(s string) string {
	n := needsEscape(s)
	if n < 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+16)
	buf = append(buf, s[:n]...)
	return string(AppendEscaped(buf, []byte(s[n:])))
}

// EscapeRunes is the wide-character variant of EscapeText. The result is
// always a fresh slice.
func EscapeRunes(src []rune) []rune {
	res := make([]rune, 0, len(src))
	for _, r := range src {
		ent := entityOf(r)
		if ent == nil {
			res = append(res, r)
			continue
		}
		for _, b := range ent {
			res = append(res, rune(b))
		}
	}
	return res
}

// WriteEscaped writes the escaped form of s to w.
func WriteEscaped(w io.Writer, s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		ent := entityOf(rune(s[i]))
		if ent == nil {
			continue
		}
		io.WriteString(w, s[last:i])
		w.Write(ent)
		last = i + 1
	}
	io.WriteString(w, s[last:])
}

// needsEscape returns the index of the first reserved character in s,
// or -1 when there is none.
func needsEscape(s string) int {
	for i := 0; i < len(s); i++ {
		if entityOf(rune(s[i])) != nil {
			return i
		}
	}
	return -1
}

// EscapeWriter escapes everything written through it before passing it on.
type EscapeWriter struct {
	w io.Writer
}

func NewEscapeWriter(w io.Writer) EscapeWriter {
	return EscapeWriter{w}
}

func (ew EscapeWriter) Write(data []byte) (n int, err error) {
	last := 0
	for i, b := range data {
		ent := entityOf(rune(b))
		if ent == nil {
			continue
		}
		if _, err = ew.w.Write(data[last:i]); err != nil {
			return last, err
		}
		if _, err = ew.w.Write(ent); err != nil {
			return last, err
		}
		last = i + 1
	}
	if _, err = ew.w.Write(data[last:]); err != nil {
		return last, err
	}
	return len(data), nil
}
