// Package sink wraps the dataset pipeline's output destination — stdout
// or a file — behind a single buffered io.Writer, following the
// teacher's "build bytes, then write" export pattern but streaming
// line-by-line so a run's output is never held fully in memory.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Sink is a buffered output destination that must be closed to flush
// and, if it owns a file handle, release it.
type Sink struct {
	w      *bufio.Writer
	closer io.Closer
}

// Open returns a Sink writing to path, or to os.Stdout if path is empty.
func Open(path string) (*Sink, error) {
	if path == "" {
		return &Sink{w: bufio.NewWriter(os.Stdout)}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output file %q: %w", path, err)
	}
	return &Sink{w: bufio.NewWriter(f), closer: f}, nil
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes buffered output and closes the underlying file, if any.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
