package twconfig

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// parseJS extracts the exported config object from a JS module.
//
// Recognised exports:
//
//	module.exports = { ... }
//	export default { ... }
//	const config = { ... }; module.exports = config
//
// The object may only contain literals, arrays, objects, require('x') and
// require('x')(options).
func parseJS(src []byte) (map[string]any, error) {
	ast, err := js.Parse(parse.NewInputBytes(src), js.Options{})
	if err != nil {
		return nil, fmt.Errorf("parse js: %w", err)
	}

	bindings := make(map[string]js.IExpr)
	var exported js.IExpr

	for _, stmt := range ast.List {
		switch s := stmt.(type) {
		case *js.VarDecl:
			for _, el := range s.List {
				if v, ok := el.Binding.(*js.Var); ok && el.Default != nil {
					bindings[string(v.Data)] = el.Default
				}
			}
		case *js.ExprStmt:
			if bin, ok := s.Value.(*js.BinaryExpr); ok && bin.Op == js.EqToken && isModuleExports(bin.X) {
				exported = bin.Y
			}
		case *js.ExportStmt:
			if s.Default && s.Decl != nil {
				exported = s.Decl
			}
		}
	}

	if exported == nil {
		return nil, ErrMissingExport
	}
	if v, ok := exported.(*js.Var); ok {
		bound, found := bindings[string(v.Data)]
		if !found {
			return nil, fmt.Errorf("%w: %s is not bound to a literal", ErrMissingExport, v.Data)
		}
		exported = bound
	}

	obj, ok := unwrapGroup(exported).(*js.ObjectExpr)
	if !ok {
		return nil, fmt.Errorf("%w: exported value is %s, not an object", ErrMissingExport, exported.String())
	}

	value, err := objectValue(obj, "")
	if err != nil {
		return nil, err
	}
	return value, nil
}

func isModuleExports(e js.IExpr) bool {
	dot, ok := unwrapGroup(e).(*js.DotExpr)
	if !ok {
		return false
	}
	v, ok := dot.X.(*js.Var)
	if !ok || string(v.Data) != "module" {
		return false
	}
	switch y := dot.Y.(type) {
	case *js.LiteralExpr:
		return string(y.Data) == "exports"
	case *js.Var:
		return string(y.Data) == "exports"
	}
	return false
}

func unwrapGroup(e js.IExpr) js.IExpr {
	for {
		g, ok := e.(*js.GroupExpr)
		if !ok {
			return e
		}
		e = g.X
	}
}

// exprValue converts a literal JS expression into a JSON-like Go value.
// path names the location for error messages ("theme.extend.colors").
func exprValue(e js.IExpr, path string) (any, error) {
	switch x := unwrapGroup(e).(type) {
	case *js.LiteralExpr:
		return literalValue(x, path)
	case *js.UnaryExpr:
		if x.Op == js.NegToken {
			if lit, ok := x.X.(*js.LiteralExpr); ok && isNumberToken(lit.TokenType) {
				f, err := numberValue(lit, path)
				if err != nil {
					return nil, err
				}
				return -f, nil
			}
		}
	case *js.ArrayExpr:
		out := make([]any, 0, len(x.List))
		for i, el := range x.List {
			if el.Spread || el.Value == nil {
				return nil, unsupported(fmt.Sprintf("%s[%d]", path, i), e)
			}
			v, err := exprValue(el.Value, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case *js.ObjectExpr:
		return objectValue(x, path)
	case *js.CallExpr:
		return pluginValue(x, path)
	}
	return nil, unsupported(path, e)
}

func objectValue(obj *js.ObjectExpr, path string) (map[string]any, error) {
	out := make(map[string]any, len(obj.List))
	for _, prop := range obj.List {
		if prop.Spread || prop.Name == nil || prop.Name.IsComputed() {
			return nil, unsupported(path, obj)
		}
		key, err := propertyKey(prop.Name.Literal)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		v, err := exprValue(prop.Value, joinPath(path, key))
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// pluginValue handles require('x') and require('x')(options).
func pluginValue(call *js.CallExpr, path string) (any, error) {
	if module, ok := requireTarget(call); ok {
		return module, nil
	}

	inner, ok := call.X.(*js.CallExpr)
	if !ok {
		return nil, unsupported(path, call)
	}
	module, ok := requireTarget(inner)
	if !ok || len(call.Args.List) > 1 {
		return nil, unsupported(path, call)
	}

	options := map[string]any{}
	if len(call.Args.List) == 1 {
		obj, ok := unwrapGroup(call.Args.List[0].Value).(*js.ObjectExpr)
		if !ok {
			return nil, unsupported(path, call)
		}
		var err error
		if options, err = objectValue(obj, path+".options"); err != nil {
			return nil, err
		}
	}
	return map[string]any{"module": module, "options": options}, nil
}

func requireTarget(call *js.CallExpr) (string, bool) {
	fn, ok := call.X.(*js.Var)
	if !ok || string(fn.Data) != "require" || len(call.Args.List) != 1 {
		return "", false
	}
	lit, ok := call.Args.List[0].Value.(*js.LiteralExpr)
	if !ok || lit.TokenType != js.StringToken {
		return "", false
	}
	s, err := unquoteJS(lit.Data)
	if err != nil {
		return "", false
	}
	return s, true
}

func literalValue(lit *js.LiteralExpr, path string) (any, error) {
	switch lit.TokenType {
	case js.StringToken:
		s, err := unquoteJS(lit.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return s, nil
	case js.IntegerToken, js.DecimalToken, js.HexadecimalToken, js.OctalToken, js.BinaryToken:
		return numberValue(lit, path)
	case js.TrueToken:
		return true, nil
	case js.FalseToken:
		return false, nil
	case js.NullToken:
		return nil, nil
	}
	return nil, unsupported(path, lit)
}

func isNumberToken(tt js.TokenType) bool {
	switch tt {
	case js.IntegerToken, js.DecimalToken, js.HexadecimalToken, js.OctalToken, js.BinaryToken:
		return true
	}
	return false
}

// numberValue parses a numeric literal. Hex, octal and binary forms use
// Go's prefix syntax, which matches JS for 0x, 0o and 0b.
func numberValue(lit *js.LiteralExpr, path string) (float64, error) {
	text := string(lit.Data)
	switch lit.TokenType {
	case js.HexadecimalToken, js.OctalToken, js.BinaryToken:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func propertyKey(lit js.LiteralExpr) (string, error) {
	if lit.TokenType == js.StringToken {
		return unquoteJS(lit.Data)
	}
	return string(lit.Data), nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func unsupported(path string, e js.INode) error {
	if path == "" {
		path = "config"
	}
	return fmt.Errorf("%w at %s: %s", ErrUnsupportedExpression, path, e.String())
}

// unquoteJS decodes a single- or double-quoted JS string literal.
func unquoteJS(data []byte) (string, error) {
	if len(data) < 2 || (data[0] != '"' && data[0] != '\'') || data[len(data)-1] != data[0] {
		return "", fmt.Errorf("malformed string literal %s", data)
	}
	body := string(data[1 : len(data)-1])
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	malformed := fmt.Errorf("malformed escape in %s", data)

	var b strings.Builder
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		i += size
		if r != '\\' || i >= len(body) {
			b.WriteRune(r)
			continue
		}

		esc := body[i]
		i++
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'v':
			b.WriteByte('\v')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 > len(body) {
				return "", malformed
			}
			code, err := strconv.ParseUint(body[i:i+2], 16, 8)
			if err != nil {
				return "", malformed
			}
			b.WriteRune(rune(code))
			i += 2
		case 'u':
			code, n, ok := unicodeEscape(body[i:])
			if !ok {
				return "", malformed
			}
			i += n
			// A high surrogate followed by an escaped low surrogate is one rune
			if utf16.IsSurrogate(code) && strings.HasPrefix(body[i:], "\\u") {
				if low, m, ok := unicodeEscape(body[i+2:]); ok {
					if pair := utf16.DecodeRune(code, low); pair != utf8.RuneError {
						code = pair
						i += 2 + m
					}
				}
			}
			b.WriteRune(code)
		case '\r':
			// line continuation; \r\n counts as one terminator
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n':
			// line continuation
		default:
			// \\, \', \" and identity escapes; esc may start a multi-byte rune
			i--
			r, size := utf8.DecodeRuneInString(body[i:])
			i += size
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// unicodeEscape reads the part after \u: four hex digits or {hex}.
// It returns the code point and the number of bytes consumed.
func unicodeEscape(s string) (rune, int, bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		code, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || code > unicode.MaxRune {
			return 0, 0, false
		}
		return rune(code), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	code, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(code), 4, true
}
