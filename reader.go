package newlinejson

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// A Record is one decoded JSON value corresponding to one line.  There is no
// schema constraint: objects, arrays and scalars can be mixed freely within
// a single file.
type Record = any

// A Reader decodes newline JSON one record at a time.
//
// By default a line that is not valid JSON is counted in Failures and
// skipped, so one bad record does not abort ingestion of a large file.  Set
// Strict to make the first bad line end iteration with a *DecodeError
// instead.  Blank lines are skipped without counting as failures.
type Reader struct {
	stream

	// Codec decodes each line.  Nil means the standard library codec.
	Codec Codec

	// Strict makes decode failures terminate iteration instead of being
	// counted and skipped.
	Strict bool

	src LineSource
}

// NewReader returns a Reader consuming lines from r.  The caller keeps
// ownership of r; closing the Reader does not close it.
func NewReader(r io.Reader) *Reader {
	return NewReaderSource(&bufioSource{buf: bufio.NewReader(r)})
}

// NewReaderSource returns a Reader consuming lines from any LineSource.
func NewReaderSource(src LineSource) *Reader {
	return &Reader{src: src}
}

// Next returns the next record.  ok is false when the source is exhausted.
// Each call consumes physical lines until one decodes, the source ends or,
// in strict mode, a line fails to decode.
func (r *Reader) Next() (Record, bool, error) {
	if r.closed {
		return nil, false, errClosed
	}
	codec := r.Codec
	if codec == nil {
		codec = defaultCodec
	}
	for {
		line, err := r.src.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, false, nil
			}
			return nil, false, err
		}
		r.lineNumber++
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := codec.Unmarshal(line, &rec); err != nil {
			r.failures++
			if r.Strict {
				return nil, false, &DecodeError{Line: r.lineNumber, Err: err}
			}
			continue
		}
		return rec, true, nil
	}
}

// ReadAll materializes all remaining records.  Only intended for inputs
// small enough to hold in memory; large files should be iterated with Next.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, ok, err := r.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, rec)
	}
}
