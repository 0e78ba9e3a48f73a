package markup

import (
	"io"

	g "maragu.dev/gomponents"
)

// Component adapts a tree to gomponents.Node, rendering it with tokens each
// time the component is rendered.
func Component(n *Node, tokens Tokens) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return n.RenderTo(w, tokens)
	})
}
