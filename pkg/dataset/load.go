package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnrecognizedShape is returned when the input file is valid JSON but is
// neither a top-level array of records nor an object with an "articles"
// array. Load errors are fatal: no pipeline stage runs on a bad input.
var ErrUnrecognizedShape = errors.New("input must be a JSON array of records or an object with an \"articles\" array")

// Load decodes a dataset from raw JSON. Two shapes are accepted:
//
//	[ {record}, ... ]
//	{ "articles": [ {record}, ... ], ... }
func Load(data []byte) ([]Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parse input: %w", ErrUnrecognizedShape)
	}

	switch trimmed[0] {
	case '[':
		var records []Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse input: %w", err)
		}
		return records, nil

	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("parse input: %w", err)
		}
		raw, ok := wrapper["articles"]
		if !ok {
			return nil, fmt.Errorf("parse input: %w", ErrUnrecognizedShape)
		}
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("parse input: %w", ErrUnrecognizedShape)
		}
		return records, nil

	default:
		return nil, fmt.Errorf("parse input: %w", ErrUnrecognizedShape)
	}
}

// LoadFile reads and decodes a dataset file.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	records, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
