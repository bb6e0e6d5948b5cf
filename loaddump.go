package newlinejson

import (
	"io"
	"strings"
)

// Load reads every record from r into memory, in file order.  Decode
// failures follow the tolerant Reader default: the second return value is
// the number of lines that failed to decode and were skipped, so a clean
// load is distinguishable from a lossy one.  A nil codec means the standard
// library codec.
func Load(r io.Reader, codec Codec) ([]Record, int, error) {
	src := NewReader(r)
	src.Codec = codec
	records, err := src.ReadAll()
	return records, src.Failures(), err
}

// LoadString reads every record from a string of newline JSON.
func LoadString(s string, codec Codec) ([]Record, int, error) {
	return Load(strings.NewReader(s), codec)
}

// Dump writes records to w, one line each, in order.  Equivalent to
// repeated single-record writes; the first encode failure aborts.
func Dump(records []Record, w io.Writer, codec Codec) error {
	dst := NewWriter(w)
	dst.Codec = codec
	for _, rec := range records {
		if err := dst.Write(rec); err != nil {
			return err
		}
	}
	return dst.Flush()
}

// DumpString renders records as a string of newline JSON.
func DumpString(records []Record, codec Codec) (string, error) {
	var buf strings.Builder
	if err := Dump(records, &buf, codec); err != nil {
		return "", err
	}
	return buf.String(), nil
}
