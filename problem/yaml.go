package problem

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a problem document. Unknown keys are rejected so that
// misspelled fields do not silently drop data. Missing names are filled by
// position and the result is validated.
func DecodeYAML(r io.Reader) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidf("decode yaml: empty document")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	p.fillDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// EncodeYAML writes p in the layout accepted by DecodeYAML.
func EncodeYAML(w io.Writer, p *Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
