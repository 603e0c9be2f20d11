package twconfig

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
)

// DefaultConfigFile is the descriptor file name the generator looks for.
const DefaultConfigFile = "tailwind.config.js"

// LoadFile reads a descriptor from disk, choosing the record form from the
// file extension. Unknown keys are returned alongside the descriptor.
func LoadFile(path string) (Descriptor, []string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Descriptor{}, nil, err
	}

	data, err := ReadSource(path)
	if err != nil {
		return Descriptor{}, nil, err
	}

	d, unknown, err := Unmarshal(data, format)
	if err != nil {
		return Descriptor{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, unknown, nil
}

// ReadSource returns the raw bytes of a descriptor file.
func ReadSource(path string) ([]byte, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
