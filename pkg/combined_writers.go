package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to all of its writers.
// A failing writer does not stop the others, errors are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write reports len(p) written only if every writer took all of p.
func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			if written < n {
				n = written
			}
		}
	}
	return n, err
}
