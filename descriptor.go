package twconfig

import (
	"reflect"

	"github.com/mitchellh/copystructure"
)

// Record keys recognised by the external generator.
const (
	KeyContent = "content"
	KeyTheme   = "theme"
	KeyExtend  = "extend"
	KeyPlugins = "plugins"
)

// Project-relative globs scanned by the generator for this project.
var defaultContent = []string{
	"./open_data_lakehouse_demo/templates/**/*.html",
	"./open_data_lakehouse_demo/static/src/**/*.js",
	"./open_data_lakehouse_demo/static/src/**/*.css",
}

// Plugin references a generator plugin by module specifier.
type Plugin struct {
	Module  string         // "@tailwindcss/forms"
	Options map[string]any // Argument of require(...)(options); nil when the plugin is not invoked
}

// Descriptor is an immutable configuration descriptor.
// The zero value is an empty descriptor; use Load or New to build one.
type Descriptor struct {
	content []string
	extend  map[string]any
	plugins []Plugin
}

// Load returns the project's descriptor. It performs no I/O and returns
// an equal value on every call.
func Load() Descriptor {
	return New(defaultContent, nil, nil)
}

// New builds a descriptor from deep copies of its arguments.
// Nil maps and slices become empty ones; numbers become float64.
func New(content []string, extend map[string]any, plugins []Plugin) Descriptor {
	d := Descriptor{
		content: make([]string, len(content)),
		extend:  make(map[string]any, len(extend)),
		plugins: make([]Plugin, 0, len(plugins)),
	}
	copy(d.content, content)

	for k, v := range extend {
		d.extend[k] = normalizeValue(v)
	}

	for _, p := range plugins {
		cp := Plugin{Module: p.Module}
		if p.Options != nil {
			cp.Options = normalizeValue(p.Options).(map[string]any)
		}
		d.plugins = append(d.plugins, cp)
	}

	return d
}

// ContentGlobs returns the content globs in declaration order.
func (d Descriptor) ContentGlobs() []string {
	out := make([]string, len(d.content))
	copy(out, d.content)
	return out
}

// ThemeExtensions returns a copy of theme.extend.
func (d Descriptor) ThemeExtensions() map[string]any {
	if d.extend == nil {
		return map[string]any{}
	}
	return deepCopy(d.extend).(map[string]any)
}

// Plugins returns the plugin references in declaration order.
func (d Descriptor) Plugins() []Plugin {
	out := make([]Plugin, len(d.plugins))
	for i, p := range d.plugins {
		out[i] = Plugin{Module: p.Module}
		if p.Options != nil {
			out[i].Options = deepCopy(p.Options).(map[string]any)
		}
	}
	return out
}

// Equal reports whether both descriptors hold the same fields.
func (d Descriptor) Equal(other Descriptor) bool {
	return reflect.DeepEqual(d.ContentGlobs(), other.ContentGlobs()) &&
		reflect.DeepEqual(d.ThemeExtensions(), other.ThemeExtensions()) &&
		reflect.DeepEqual(d.Plugins(), other.Plugins())
}

// Record returns the descriptor in record form:
//
//	{content: [...], theme: {extend: {...}}, plugins: [...]}
//
// A plugin without options is recorded as its module string, otherwise as
// {module, options}.
func (d Descriptor) Record() map[string]any {
	content := make([]any, len(d.content))
	for i, g := range d.content {
		content[i] = g
	}

	plugins := make([]any, len(d.plugins))
	for i, p := range d.Plugins() {
		if p.Options == nil {
			plugins[i] = p.Module
			continue
		}
		plugins[i] = map[string]any{
			"module":  p.Module,
			"options": p.Options,
		}
	}

	return map[string]any{
		KeyContent: content,
		KeyTheme: map[string]any{
			KeyExtend: d.ThemeExtensions(),
		},
		KeyPlugins: plugins,
	}
}

func deepCopy(v any) any {
	return copystructure.Must(copystructure.Copy(v))
}

// normalizeValue copies a JSON-like value, turning every number into float64
// so values compare equal whichever codec produced them.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[toString(k)] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case int:
		return float64(val)
	case int8:
		return float64(val)
	case int16:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint8:
		return float64(val)
	case uint16:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	default:
		return val
	}
}
