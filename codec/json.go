package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Table records are plain nested arrays of unsigned integers (and {hi,lo}
// objects for 128-bit cells), which JSON represents exactly: Go emits uint64
// values as full-precision number literals and parses them back losslessly.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
