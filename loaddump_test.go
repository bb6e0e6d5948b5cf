package newlinejson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	input := "{\"a\":1}\n[2]\n\"three\"\n"
	records, failures, err := Load(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, []Record{
		map[string]any{"a": float64(1)},
		[]any{float64(2)},
		"three",
	}, records)
	assert.Equal(t, 0, failures)
}

func TestLoadReportsFailures(t *testing.T) {
	input := "{\"a\":1}\nbroken\n{\"b\":2}\n"
	records, failures, err := Load(strings.NewReader(input), nil)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, 1, failures)
}

func TestLoadStringDumpStringRoundTrip(t *testing.T) {
	records := []Record{
		map[string]any{"field1": "v1"},
		[]any{float64(1), float64(2)},
		nil,
	}

	s, err := DumpString(records, nil)
	require.NoError(t, err)
	assert.Equal(t, "{\"field1\":\"v1\"}\n[1,2]\nnull\n", s)

	got, failures, err := LoadString(s, nil)
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, 0, failures)
}

func TestDumpAbortsOnEncodeError(t *testing.T) {
	var buf strings.Builder
	err := Dump([]Record{"fine", make(chan int)}, &buf, nil)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
}

func TestLoadDumpWithAlternateCodec(t *testing.T) {
	records := []Record{map[string]any{"n": float64(7)}}

	s, err := DumpString(records, GoJSON{})
	require.NoError(t, err)

	got, failures, err := LoadString(s, Sonic{})
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, 0, failures)
}
