package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/Mictilt/go-svgshape/writer/standard"
)

// pipeName marks stdin or stdout in place of a file name.
const pipeName = "-"

// formatOption maps a format name onto a writer option. An empty name is
// inferred from the output file extension. raster reports binary formats.
func formatOption(name, out string) (opt standard.ImageOption, raster bool, err error) {
	if name == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".png":
			name = "png"
		case ".jpg", ".jpeg":
			name = "jpeg"
		default:
			name = "svg"
		}
	}

	switch strings.ToLower(name) {
	case "svg":
		return standard.WithBuiltinImageEncoder(standard.SVG_FORMAT), false, nil
	case "svgo":
		return standard.WithBuiltinImageEncoder(standard.SVGO_FORMAT), false, nil
	case "png":
		return standard.WithBuiltinImageEncoder(standard.PNG_FORMAT), true, nil
	case "jpg", "jpeg":
		return standard.WithBuiltinImageEncoder(standard.JPEG_FORMAT), true, nil
	}
	return nil, false, errors.Errorf("unsupported format %q", name)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput opens the destination. pipeName writes to stdout, which must
// not be a terminal when the output is binary.
func openOutput(out string, stdout io.Writer, raster bool) (io.WriteCloser, error) {
	if out != pipeName {
		fd, err := os.Create(out)
		if err != nil {
			return nil, errors.Wrap(err, "unable to create the destination file")
		}
		return fd, nil
	}

	if f, ok := stdout.(*os.File); ok && raster && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("`-` should be used with a pipe for binary output")
	}
	return nopCloser{stdout}, nil
}
