package newlinejson

import "os"

// OpenReader opens a newline JSON file for reading.  The name "-" reads
// from stdin.  When given a path the Reader owns the file and Close
// releases it; stdin is never closed.
func OpenReader(name string) (*Reader, error) {
	if name == "-" {
		return NewReader(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// OpenWriter creates or truncates a newline JSON file for writing.  The
// name "-" writes to stdout.
func OpenWriter(name string) (*Writer, error) {
	if name == "-" {
		return NewWriter(os.Stdout), nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// OpenAppend opens a newline JSON file for writing, keeping any existing
// records.  The file is created if it does not exist.
func OpenAppend(name string) (*Writer, error) {
	if name == "-" {
		return NewWriter(os.Stdout), nil
	}
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}
