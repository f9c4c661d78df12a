package standard

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Writer renders drawings with the configured encoder into its destination.
type Writer struct {
	option *outputImageOptions

	closer io.WriteCloser
}

// New creates (or truncates) filename and returns a Writer for it.
func New(filename string, opts ...ImageOption) (*Writer, error) {
	fd, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "create file failed")
	}

	return NewWithWriter(fd, opts...), nil
}

// NewWithWriter returns a Writer for wc. The Writer owns wc and closes it
// on Close.
func NewWithWriter(wc io.WriteCloser, opts ...ImageOption) *Writer {
	dst := defaultOutputImageOption()
	for _, opt := range opts {
		opt.apply(dst)
	}

	return &Writer{
		option: dst,
		closer: wc,
	}
}

// Write renders d. Calling Write more than once appends complete documents
// back to back, which is only useful for streams.
func (w *Writer) Write(d Drawing) error {
	if w.closer == nil {
		return errors.New("writer is closed or was never opened")
	}
	if w.option.imageEncoder == nil {
		return errors.New("no image encoder configured")
	}

	err := w.option.imageEncoder.Encode(w.closer, d, w.option.frame())
	return errors.Wrap(err, "encode drawing failed")
}

// Frame returns the surface description Write passes to the encoder.
func (w *Writer) Frame() Frame {
	return w.option.frame()
}

// Close closes the destination.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}

	err := w.closer.Close()
	w.closer = nil
	return err
}
