package newlinejson

import "fmt"

// A DecodeError records a line that could not be decoded as JSON.  With a
// tolerant Reader decode errors are counted and skipped; in strict mode the
// first one ends iteration and is returned to the caller.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// An EncodeError records a value the codec could not serialize.  No output
// is produced for the failed value.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encode: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// A ConfigError reports an invalid configuration, such as a codec name that
// does not resolve.  It is returned before any I/O is attempted.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// A UsageError reports an operation a stream cannot accept, such as reading
// or writing after Close.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

var errClosed = &UsageError{msg: "stream is closed"}
