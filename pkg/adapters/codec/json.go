package codec

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/aretw0/sheaf/pkg/core"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// JSONCodec is the canonical interchange format: a pretty-printed array of
// {"id", "title", "content", "tags"} records with two-space indentation.
type JSONCodec struct{}

// JSON is the default codec.
var JSON core.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

// Encode writes the collection without HTML escaping and without a trailing
// newline.
func (JSONCodec) Encode(c core.Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(prepare(c)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode accepts exactly one JSON array whose records carry the four note
// fields and nothing else.
func (JSONCodec) Decode(data []byte) (core.Collection, error) {
	data = bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(data) == 0 || data[0] != '[' {
		return nil, &core.ParseError{Format: "json", Err: errors.New("expected an array of notes")}
	}
	if !json.Valid(data) {
		return nil, &core.ParseError{Format: "json", Err: errors.New("malformed json")}
	}

	// The decoder matches field names case-insensitively, so the keys are
	// checked against the exact names first.
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &core.ParseError{Format: "json", Err: err}
	}
	for i, fields := range raw {
		for key := range fields {
			if !recordFields[key] {
				return nil, &core.ParseError{Format: "json", Err: fmt.Errorf("record %d: unknown field %q", i, key)}
			}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, &core.ParseError{Format: "json", Err: err}
	}
	return fromRecords("json", records)
}
