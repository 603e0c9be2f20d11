package twconfig

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const jsIndent = "    "

// jsHeader is the type annotation editors use for completion.
const jsHeader = "/** @type {import('tailwindcss').Config} */\n"

// writeJS renders the descriptor as a CommonJS module.
func writeJS(d Descriptor) []byte {
	var buf bytes.Buffer
	buf.WriteString(jsHeader)
	buf.WriteString("module.exports = {\n")

	w := &jsWriter{buf: &buf}

	w.key(1, KeyContent)
	w.stringList(1, d.ContentGlobs())
	buf.WriteString(",\n")

	w.key(1, KeyTheme)
	buf.WriteString("{\n")
	w.key(2, KeyExtend)
	w.value(2, d.ThemeExtensions())
	buf.WriteString(",\n")
	buf.WriteString(jsIndent + "},\n")

	w.key(1, KeyPlugins)
	plugins := d.Plugins()
	if len(plugins) == 0 {
		buf.WriteString("[],\n")
	} else {
		buf.WriteString("[\n")
		for _, p := range plugins {
			w.indent(2)
			buf.WriteString("require(" + quoteJS(p.Module) + ")")
			if p.Options != nil {
				buf.WriteString("(")
				w.value(2, p.Options)
				buf.WriteString(")")
			}
			buf.WriteString(",\n")
		}
		buf.WriteString(jsIndent + "],\n")
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

type jsWriter struct {
	buf *bytes.Buffer
}

func (w *jsWriter) indent(depth int) {
	w.buf.WriteString(strings.Repeat(jsIndent, depth))
}

func (w *jsWriter) key(depth int, name string) {
	w.indent(depth)
	w.buf.WriteString(jsKey(name))
	w.buf.WriteString(": ")
}

func (w *jsWriter) stringList(depth int, items []string) {
	if len(items) == 0 {
		w.buf.WriteString("[]")
		return
	}
	w.buf.WriteString("[\n")
	for _, s := range items {
		w.indent(depth + 1)
		w.buf.WriteString(quoteJS(s))
		w.buf.WriteString(",\n")
	}
	w.indent(depth)
	w.buf.WriteString("]")
}

func (w *jsWriter) value(depth int, v any) {
	switch val := v.(type) {
	case nil:
		w.buf.WriteString("null")
	case bool:
		w.buf.WriteString(strconv.FormatBool(val))
	case float64:
		w.buf.WriteString(strconv.FormatFloat(val, 'f', -1, 64))
	case string:
		w.buf.WriteString(quoteJS(val))
	case []any:
		if len(val) == 0 {
			w.buf.WriteString("[]")
			return
		}
		w.buf.WriteString("[\n")
		for _, item := range val {
			w.indent(depth + 1)
			w.value(depth+1, item)
			w.buf.WriteString(",\n")
		}
		w.indent(depth)
		w.buf.WriteString("]")
	case map[string]any:
		if len(val) == 0 {
			w.buf.WriteString("{}")
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w.buf.WriteString("{\n")
		for _, k := range keys {
			w.key(depth+1, k)
			w.value(depth+1, val[k])
			w.buf.WriteString(",\n")
		}
		w.indent(depth)
		w.buf.WriteString("}")
	default:
		w.buf.WriteString(quoteJS(fmt.Sprint(val)))
	}
}

// jsKey leaves identifiers bare and quotes everything else ("1/2", "primary-500").
func jsKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return quoteJS(name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func quoteJS(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
