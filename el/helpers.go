package el

import (
	"fmt"

	"github.com/vango-dev/htmlr/pkg/markup"
)

// Doctype returns the builder for the "<!DOCTYPE html>" preamble. It has no
// closing tag; content appended to it follows the preamble.
func Doctype(attrs ...Attrs) Builder {
	return markup.Tag("!DOCTYPE html", attrs...)
}

// Tag returns the helper for an element without a named function.
func Tag(name string) func(attrs ...Attrs) Builder {
	return markup.Sigil(name)
}

// Text escapes content for use as element text.
func Text(content string) string {
	return markup.EscapeText(content)
}

// Textf formats and escapes content for use as element text.
func Textf(format string, args ...any) string {
	return markup.EscapeText(fmt.Sprintf(format, args...))
}

// Range maps items to nodes, for building lists.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// If returns node when cond is true and an empty item otherwise.
func If(cond bool, node any) any {
	if cond {
		return node
	}
	return []any{}
}

// NewToken issues a placeholder token.
func NewToken(name string) Token {
	return markup.NewToken(name)
}
