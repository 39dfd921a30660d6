package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/sheaf/pkg/core"
)

// YAMLCodec writes the same record list as JSONCodec as a YAML sequence.
type YAMLCodec struct{}

// YAML is the alternate, hand-editable format.
var YAML core.Codec = YAMLCodec{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(c core.Collection) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(prepare(c)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Decode(data []byte) (core.Collection, error) {
	// First pass checks the document shape; the node API does not reject
	// unknown fields, so the records are decoded again with KnownFields.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &core.ParseError{Format: "yaml", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, &core.ParseError{Format: "yaml", Err: errors.New("expected a sequence of notes")}
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var records []record
	if err := decoder.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("empty document")
		}
		return nil, &core.ParseError{Format: "yaml", Err: err}
	}

	var extra yaml.Node
	switch err := decoder.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, &core.ParseError{Format: "yaml", Err: err}
	default:
		return nil, &core.ParseError{Format: "yaml", Err: errors.New("trailing document after the notes")}
	}
	return fromRecords("yaml", records)
}
