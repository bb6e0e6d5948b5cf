package newlinejson

import (
	"bufio"
	"io"
)

// A LineSource produces one line of text per call, without the line
// terminator.  It returns io.EOF when there are no more lines.  Anything
// line-oriented can act as a source: a file, an in-memory buffer, a pipe.
type LineSource interface {
	ReadLine() ([]byte, error)
}

// A LineSink consumes one line of text per call and appends the line
// terminator itself.
type LineSink interface {
	WriteLine([]byte) error
}

// stream holds the state shared by Reader and Writer.
type stream struct {
	lineNumber int
	failures   int
	closed     bool

	// closer is set only when the stream opened the underlying resource
	// itself.  Resources supplied already open stay with the caller.
	closer io.Closer
}

// LineNumber returns the number of physical lines consumed or emitted so
// far.  Blank and undecodable lines count.
func (s *stream) LineNumber() int { return s.lineNumber }

// Failures returns the number of lines that failed to decode or encode
// since the stream was opened.
func (s *stream) Failures() int { return s.failures }

// Close releases the underlying resource if the stream opened it itself.
// Closing an already closed stream is a no-op.
func (s *stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// bufioSource adapts an io.Reader to the LineSource interface.  It handles
// both LF and CRLF terminators and lines longer than the buffer.
type bufioSource struct {
	buf *bufio.Reader
}

func (b *bufioSource) ReadLine() ([]byte, error) {
	var line []byte
	for {
		chunk, isPrefix, err := b.buf.ReadLine()
		if err != nil {
			return nil, err
		}
		line = append(line, chunk...)
		if !isPrefix {
			return line, nil
		}
	}
}

// bufioSink adapts an io.Writer to the LineSink interface.
type bufioSink struct {
	buf *bufio.Writer
}

func (b *bufioSink) WriteLine(line []byte) error {
	if _, err := b.buf.Write(line); err != nil {
		return err
	}
	return b.buf.WriteByte('\n')
}

func (b *bufioSink) Flush() error { return b.buf.Flush() }
