package epntap

import (
	"io"

	"github.com/matzehuels/epntex/pkg/errors"
)

// Sink is the append-only destination of the generated markup. Fragments are
// written immediately, in the order they are emitted.
type Sink struct {
	w       io.Writer
	written int64
}

// NewSink wraps w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Emit writes fragments in order. Emitting into a sink without a writer is
// NULL_EMISSION.
func (s *Sink) Emit(fragments ...string) error {
	if s == nil || s.w == nil {
		return errors.New(errors.ErrCodeNullEmission, "emit into a sink without writer")
	}
	for _, f := range fragments {
		n, err := io.WriteString(s.w, f)
		s.written += int64(n)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write output")
		}
	}
	return nil
}

// Written returns the number of bytes written so far.
func (s *Sink) Written() int64 {
	if s == nil {
		return 0
	}
	return s.written
}
