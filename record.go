package twconfig

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// record mirrors the generator's config object.
type record struct {
	Content any         `mapstructure:"content"`
	Theme   themeRecord `mapstructure:"theme"`
	Plugins []any       `mapstructure:"plugins"`
}

type themeRecord struct {
	Extend map[string]any `mapstructure:"extend"`
}

// fromRecord decodes a record map into a descriptor. The returned keys were
// present in raw but are not part of the descriptor, sorted.
func fromRecord(raw map[string]any) (Descriptor, []string, error) {
	var (
		rec record
		md  mapstructure.Metadata
	)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &rec,
	})
	if err != nil {
		return Descriptor{}, nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return Descriptor{}, nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	unknown := append([]string(nil), md.Unused...)

	content, extra, err := decodeContent(rec.Content)
	if err != nil {
		return Descriptor{}, nil, err
	}
	unknown = append(unknown, extra...)

	plugins, err := decodePlugins(rec.Plugins)
	if err != nil {
		return Descriptor{}, nil, err
	}

	sort.Strings(unknown)
	return New(content, rec.Theme.Extend, plugins), unknown, nil
}

// decodeContent accepts a glob list or the object form {files: [...]}.
func decodeContent(v any) ([]string, []string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil, nil
	case []any:
		return decodeGlobs(val)
	case []string:
		return append([]string(nil), val...), nil, nil
	case map[string]any:
		var extra []string
		for k := range val {
			if k != "files" {
				extra = append(extra, KeyContent+"."+k)
			}
		}
		files, ok := val["files"].([]any)
		if !ok && val["files"] != nil {
			return nil, nil, fmt.Errorf("%w: content.files must be a list", ErrInvalidRecord)
		}
		globs, _, err := decodeGlobs(files)
		return globs, extra, err
	default:
		return nil, nil, fmt.Errorf("%w: content must be a list, got %T", ErrInvalidRecord, v)
	}
}

func decodeGlobs(items []any) ([]string, []string, error) {
	globs := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: content[%d] must be a string, got %T", ErrInvalidRecord, i, item)
		}
		globs = append(globs, s)
	}
	return globs, nil, nil
}

// decodePlugins accepts "module" or {module, options} entries.
func decodePlugins(items []any) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(items))
	for i, item := range items {
		switch val := item.(type) {
		case string:
			plugins = append(plugins, Plugin{Module: val})
		case map[string]any:
			module, ok := val["module"].(string)
			if !ok {
				return nil, fmt.Errorf("%w: plugins[%d].module must be a string", ErrInvalidRecord, i)
			}
			p := Plugin{Module: module}
			// options: null is the same as no options
			if opts := val["options"]; opts != nil {
				m, ok := opts.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%w: plugins[%d].options must be an object", ErrInvalidRecord, i)
				}
				p.Options = m
			}
			plugins = append(plugins, p)
		default:
			return nil, fmt.Errorf("%w: plugins[%d] has type %T", ErrInvalidRecord, i, item)
		}
	}
	return plugins, nil
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
