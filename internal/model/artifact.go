package model

import (
	"encoding/json"
	"fmt"
)

// EncodeArtifact serializes the pipeline in its on-disk form.
func EncodeArtifact(p *Pipeline) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode model artifact: %w", err)
	}
	return data, nil
}

// DecodeArtifact parses an artifact and checks that it serves dim features.
func DecodeArtifact(data []byte, dim int) (*Pipeline, error) {
	var p Pipeline
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArtifact, err)
	}
	if err := p.Validate(dim); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArtifact, err)
	}
	return &p, nil
}
