package newlinejson

import (
	"bufio"
	"io"
)

// A Writer encodes one record per line.
//
// Records appear in the output in the exact order they were written.  A
// value the codec cannot serialize produces a *EncodeError and no output for
// that record; a partial line is never flushed.
type Writer struct {
	stream

	// Codec encodes each record.  Nil means the standard library codec.
	Codec Codec

	// SkipFailures counts encode failures instead of returning them.
	SkipFailures bool

	sink LineSink
}

// NewWriter returns a Writer emitting lines to w.  The caller keeps
// ownership of w; closing the Writer flushes but does not close it.
func NewWriter(w io.Writer) *Writer {
	return NewWriterSink(&bufioSink{buf: bufio.NewWriter(w)})
}

// NewWriterSink returns a Writer emitting lines to any LineSink.
func NewWriterSink(sink LineSink) *Writer {
	return &Writer{sink: sink}
}

// Write encodes rec and emits exactly one line.
func (w *Writer) Write(rec Record) error {
	if w.closed {
		return errClosed
	}
	codec := w.Codec
	if codec == nil {
		codec = defaultCodec
	}
	encoded, err := codec.Marshal(rec)
	if err != nil {
		w.failures++
		if w.SkipFailures {
			return nil
		}
		return &EncodeError{Err: err}
	}
	if err := w.sink.WriteLine(encoded); err != nil {
		return err
	}
	w.lineNumber++
	return nil
}

// Flush forces buffered lines out to the underlying writer.
func (w *Writer) Flush() error {
	if w.closed {
		return errClosed
	}
	if f, ok := w.sink.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes buffered output and releases the underlying resource if the
// Writer opened it itself.  Closing an already closed Writer is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.stream.Close()
}
