// Package newlinejson implements streaming I/O for newline delimited JSON:
// text files where each physical line holds one complete, self-contained
// JSON value.  There is no enclosing array and no multi-line document, which
// is what makes the format appendable and streamable.
//
// Reading is tolerant by default: a line that does not decode as JSON is
// counted and skipped rather than aborting iteration, so one bad record in a
// large heterogeneous file does not lose the rest.  The count of skipped
// lines stays queryable on the Reader.  Strict mode is available for callers
// that prefer a hard stop.
//
//	src, err := newlinejson.OpenReader("records.json")
//	if err != nil {
//		// ...
//	}
//	defer src.Close()
//	for {
//		rec, ok, err := src.Next()
//		if err != nil || !ok {
//			break
//		}
//		// rec is one decoded JSON value: object, array or scalar
//	}
//	if src.Failures() > 0 {
//		// some lines could not be decoded
//	}
//
// The JSON implementation used for each line is pluggable.  The standard
// library codec is the default; faster alternates can be set per instance or
// resolved by name through LookupCodec.  Swapping the codec changes neither
// the format nor any failure-counting behavior.
//
// The CLI utility is in the directory cmd/nlj. You can install it with:
//
//	go install github.com/geowurster/NewlineJSON/cmd/nlj
package newlinejson

// Version of the library and the nlj tool.
const Version = "1.0.0"
