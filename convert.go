package newlinejson

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FromCSV converts CSV input with a header row into newline JSON objects
// written to dst.  Empty cells become null; every other cell is decoded as
// JSON when possible and kept as a string otherwise, so numbers, booleans
// and embedded JSON survive the trip while plain text passes through.
func FromCSV(src io.Reader, dst *Writer) error {
	codec := dst.Codec
	if codec == nil {
		codec = defaultCodec
	}
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		rec := make(map[string]any, len(header))
		for i, name := range header {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			rec[name] = sniffCell(cell, codec)
		}
		if err := dst.Write(rec); err != nil {
			return err
		}
	}
}

func sniffCell(cell string, codec Codec) any {
	if cell == "" {
		return nil
	}
	var v any
	if err := codec.Unmarshal([]byte(cell), &v); err == nil {
		return v
	}
	return cell
}

// ToCSV converts newline JSON objects read from src into CSV written to
// dst.  Field names come from the first record, sorted.  Strings pass
// through as cell values, null becomes the empty cell and any other value
// is serialized back to JSON text.  Every cell is quoted, header included.
//
// The conversion requires uniform record shape: a record carrying a field
// outside the header set, or a record that is not an object, fails the
// whole conversion.  With skipFailures such records are instead projected
// onto the header fields, dropping anything extra.  A record missing some
// header fields always gets empty cells for them.
func ToCSV(src *Reader, dst io.Writer, writeHeader, skipFailures bool) error {
	codec := src.Codec
	if codec == nil {
		codec = defaultCodec
	}
	var fields []string
	for {
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		obj, isObj := rec.(map[string]any)
		if !isObj {
			if skipFailures {
				continue
			}
			return fmt.Errorf("record at line %d is not an object", src.LineNumber())
		}
		if fields == nil {
			fields = make([]string, 0, len(obj))
			for name := range obj {
				fields = append(fields, name)
			}
			sort.Strings(fields)
			if writeHeader {
				if err := writeQuotedRow(dst, fields); err != nil {
					return err
				}
			}
		}
		row := make([]string, len(fields))
		known := 0
		for i, name := range fields {
			v, present := obj[name]
			if present {
				known++
			}
			cell, err := csvCell(v, codec)
			if err != nil {
				return err
			}
			row[i] = cell
		}
		if !skipFailures && known < len(obj) {
			return fmt.Errorf("record at line %d has fields outside %v", src.LineNumber(), fields)
		}
		if err := writeQuotedRow(dst, row); err != nil {
			return err
		}
	}
	return nil
}

// writeQuotedRow emits one CSV record with every cell quoted.  The stdlib
// csv.Writer quotes only the cells that need it, so rows are written by
// hand.
func writeQuotedRow(w io.Writer, row []string) error {
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// csvCell mirrors the decode side of sniffCell: only non-string values are
// serialized, which avoids double quoting, and nulls become empty cells
// rather than the text "null".
func csvCell(v any, codec Codec) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	default:
		encoded, err := codec.Marshal(val)
		if err != nil {
			return "", &EncodeError{Err: err}
		}
		return string(encoded), nil
	}
}
