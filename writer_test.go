package newlinejson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(map[string]any{"n": float64(1)}))
	require.NoError(t, w.Write([]any{"a", "b"}))
	require.NoError(t, w.Write("scalar"))
	require.NoError(t, w.Flush())

	assert.Equal(t, "{\"n\":1}\n[\"a\",\"b\"]\n\"scalar\"\n", buf.String())
	assert.Equal(t, 3, w.LineNumber())
	assert.Equal(t, 0, w.Failures())
}

func TestWriterEncodeError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.Write(make(chan int))
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.String(), "no partial line for a failed value")
	assert.Equal(t, 1, w.Failures())
	assert.Equal(t, 0, w.LineNumber())

	// The stream stays usable after an encode failure.
	require.NoError(t, w.Write(map[string]any{"ok": true}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "{\"ok\":true}\n", buf.String())
}

func TestWriterSkipFailures(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SkipFailures = true

	require.NoError(t, w.Write(make(chan int)))
	require.NoError(t, w.Write(make(chan int)))
	require.NoError(t, w.Write("kept"))
	require.NoError(t, w.Flush())

	assert.Equal(t, "\"kept\"\n", buf.String())
	assert.Equal(t, 2, w.Failures())
}

func TestWriterCloseFlushes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(map[string]any{"a": float64(1)}))
	require.NoError(t, w.Close())
	assert.Equal(t, "{\"a\":1}\n", buf.String())

	require.NoError(t, w.Close(), "double close is a no-op")

	err := w.Write("late")
	var usageErr *UsageError
	assert.ErrorAs(t, err, &usageErr)

	assert.ErrorAs(t, w.Flush(), &usageErr, "flush after close is a usage error")
}

func TestRoundTrip(t *testing.T) {
	records := []Record{
		map[string]any{"field1": "l1f1", "field2": float64(2)},
		[]any{float64(1), "two", nil},
		"scalar",
		float64(42),
		true,
		nil,
		map[string]any{"nested": map[string]any{"deep": []any{false}}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	r := NewReader(strings.NewReader(buf.String()))
	got := readAll(t, r)

	assert.Equal(t, records, got)
	assert.Equal(t, 0, r.Failures())
}

// lineLog records lines without buffering, standing in for any custom sink.
type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLine(line []byte) error {
	l.lines = append(l.lines, string(line))
	return nil
}

func TestWriterCustomLineSink(t *testing.T) {
	sink := &lineLog{}
	w := NewWriterSink(sink)

	require.NoError(t, w.Write(map[string]any{"a": float64(1)}))
	require.NoError(t, w.Write("x"))
	require.NoError(t, w.Flush(), "flush on an unbuffered sink is a no-op")

	assert.Equal(t, []string{`{"a":1}`, `"x"`}, sink.lines)
}
