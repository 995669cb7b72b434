package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// compressedSuffix marks output paths that receive snappy-compressed JSON.
const compressedSuffix = ".snappy"

// WriteFile serializes the trace as JSON to the given path. Paths ending in
// ".snappy" are snappy-compressed; decode with snappy.Decode before parsing.
func (st *SimulationTrace) WriteFile(path string) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trace: %w", err)
	}
	if strings.HasSuffix(path, compressedSuffix) {
		data = snappy.Encode(nil, data)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write trace %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a trace previously written by WriteFile, transparently
// decompressing ".snappy" paths.
func ReadFile(path string) (*SimulationTrace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}
	if strings.HasSuffix(path, compressedSuffix) {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("decompress trace %s: %w", path, err)
		}
	}
	var st SimulationTrace
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal trace %s: %w", path, err)
	}
	return &st, nil
}
