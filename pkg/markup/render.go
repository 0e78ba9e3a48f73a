package markup

import (
	"io"
	"math"
	"reflect"
	"strings"

	g "maragu.dev/gomponents"
)

// Render serializes n, substituting tokens from the mapping. Tokens missing
// from the mapping, or mapped to a falsy value, render as nothing. A consumed
// node renders as "".
//
// Render does not modify n or any node reachable from tokens, so it may be
// called any number of times. On error no output is produced.
func (n *Node) Render(tokens Tokens) (string, error) {
	if n == nil {
		return "", nil
	}
	var b strings.Builder
	if err := n.render(&b, tokens, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo renders n and writes the result to w. Nothing is written if
// rendering fails.
func (n *Node) RenderTo(w io.Writer, tokens Tokens) error {
	s, err := n.Render(tokens)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// render writes n to b. path holds the nodes currently being rendered
// through token substitution.
func (n *Node) render(b *strings.Builder, tokens Tokens, path []*Node) error {
	if n.err != nil {
		return n.err
	}
	if n.consumed {
		return nil
	}
	for _, p := range path {
		if p == n {
			return unsupported(n, "token mapping refers back to a node being rendered")
		}
	}
	path = append(path, n)

	b.WriteString(n.open)
	for _, p := range n.children {
		if !p.isToken {
			b.WriteString(p.text)
			continue
		}
		if err := resolve(b, tokens[p.token], tokens, path); err != nil {
			return err
		}
	}
	b.WriteString(n.close)
	return nil
}

// resolve writes the content mapped to a token. Falsy values write nothing;
// true and non-zero numbers are not content and are rejected.
func resolve(b *strings.Builder, value any, tokens Tokens, path []*Node) error {
	if isFalsy(value) {
		return nil
	}

	switch v := value.(type) {
	case string:
		b.WriteString(v)

	case *Node:
		return v.render(b, tokens, path)

	case Void:
		if v.node == nil {
			return unsupported(v, "zero Void")
		}
		if v.node.err != nil {
			return v.node.err
		}
		b.WriteString(v.node.open)

	case Builder:
		return writeDeferred(b, value, v())

	case func(...any) *Node:
		return writeDeferred(b, value, v())

	case func() *Node:
		return writeDeferred(b, value, v())

	case []any:
		for _, item := range v {
			if err := resolve(b, item, tokens, path); err != nil {
				return err
			}
		}

	case g.Node:
		return v.Render(b)

	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return unsupported(value, "token values must be string, *Node, Void, Builder, func() *Node, gomponents.Node or a slice of these")
		}
		for i := 0; i < rv.Len(); i++ {
			if err := resolve(b, rv.Index(i).Interface(), tokens, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// isFalsy reports whether a token value renders as nothing: nil, false, zero
// and NaN numbers, empty strings, and nil pointers, functions, maps or slices.
func isFalsy(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.IsZero()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func writeDeferred(b *strings.Builder, fn any, result *Node) error {
	if result == nil {
		return unsupported(fn, "the function returned an unhandled type")
	}
	if result.err != nil {
		return result.err
	}
	b.WriteString(result.open)
	return nil
}
