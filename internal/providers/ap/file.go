package ap

import (
	"fmt"
	"os"

	"github.com/sandevgo/elex/internal/core"
)

// LoadFile decodes a local data file saved from the elections endpoint.
func LoadFile(path string) (*core.Election, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var e core.Election
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode data file %s: %w", path, err)
	}
	return &e, nil
}
