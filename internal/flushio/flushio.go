// Package flushio provides buffered output streams that must be flushed.
package flushio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// WriteFlushCloser is a WriteFlusher whose Close flushes before releasing
// any underlying file.
type WriteFlushCloser interface {
	WriteFlusher
	io.Closer
}

// NewWriteFlusher returns w itself if it already flushes, a no-op flushing
// wrapper for in-memory buffers and io.Discard, or a bufio.Writer otherwise.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == io.Discard {
		return nopFlusher{w}
	}

	// types like bytes.Buffer and strings.Builder need no flushing
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

// Create opens name for buffered writing, truncating any existing file. The
// name "-" or "" means stdout, which Close flushes but leaves open.
func Create(name string, stdout io.Writer) (WriteFlushCloser, error) {
	if name == "" || name == "-" {
		return flushCloser{NewWriteFlusher(stdout), nil}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return flushCloser{bufio.NewWriter(f), f}, nil
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

type flushCloser struct {
	WriteFlusher
	closer io.Closer
}

func (fc flushCloser) Close() error {
	err := fc.Flush()
	if fc.closer != nil {
		if cerr := fc.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
