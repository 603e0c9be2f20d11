package twconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
)

// Format identifies a record form of the descriptor.
type Format string

const (
	// FormatJS is the CommonJS/ESM module form (tailwind.config.js).
	FormatJS Format = "js"
	// FormatYAML is a YAML document with the record keys at the top level.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON object with the record keys at the top level.
	FormatJSON Format = "json"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJS, FormatYAML, FormatJSON}

// ParseFormat resolves a format name; "yml" and "javascript" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "js", "javascript", "cjs", "mjs":
		return FormatJS, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Marshal writes the descriptor in the given record form.
// The JS and JSON forms replace invalid UTF-8 with U+FFFD; Check reports
// such globs as invalid-pattern.
func Marshal(d Descriptor, format Format) ([]byte, error) {
	switch format {
	case FormatJS:
		return writeJS(d), nil
	case FormatYAML:
		return yaml.Parser().Marshal(d.Record())
	case FormatJSON:
		raw, err := kjson.Parser().Marshal(d.Record())
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Unmarshal reads a descriptor from its record form. The returned keys were
// present but are not recognised (for example "theme.colors" outside extend).
func Unmarshal(data []byte, format Format) (Descriptor, []string, error) {
	var (
		raw map[string]any
		err error
	)

	switch format {
	case FormatJS:
		raw, err = parseJS(data)
	case FormatYAML:
		raw, err = yaml.Parser().Unmarshal(data)
	case FormatJSON:
		raw, err = kjson.Parser().Unmarshal(data)
	default:
		return Descriptor{}, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Descriptor{}, nil, err
	}

	return fromRecord(raw)
}
