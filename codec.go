package newlinejson

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
	gojson "github.com/goccy/go-json"
)

// A Codec converts between in-memory values and JSON text.  One line of a
// newline JSON file is always the output of a single Marshal call or the
// input of a single Unmarshal call, so any implementation that round-trips
// values correctly can be substituted without changing the file format.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error

	// Name returns the unique registry name of the codec.
	Name() string
}

// JSON is the standard library codec and the default for all readers and
// writers.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSON) Name() string                       { return "json" }

// GoJSON is a faster codec backed by github.com/goccy/go-json.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) Name() string                       { return "go-json" }

// Sonic is a faster codec backed by github.com/bytedance/sonic.
type Sonic struct{}

func (Sonic) Marshal(v any) ([]byte, error)      { return sonic.Marshal(v) }
func (Sonic) Unmarshal(data []byte, v any) error { return sonic.Unmarshal(data, v) }
func (Sonic) Name() string                       { return "sonic" }

var defaultCodec Codec = JSON{}

var codecs = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
	Sonic{}.Name():  Sonic{},
}

// LookupCodec resolves a codec by its registry name.  Unknown names return a
// *ConfigError.
func LookupCodec(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, &ConfigError{msg: fmt.Sprintf("unknown JSON codec %q", name)}
	}
	return c, nil
}

// CodecNames returns the names LookupCodec resolves, sorted.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
