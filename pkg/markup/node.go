package markup

import "strings"

// part is one entry of a node's child list: verbatim text or a placeholder.
type part struct {
	text    string
	token   Token
	isToken bool
}

// appendText appends text to parts, merging it into a trailing text entry.
func appendText(parts []part, text string) []part {
	if text == "" {
		return parts
	}
	if last := len(parts) - 1; last >= 0 && !parts[last].isToken {
		parts[last].text += text
		return parts
	}
	return append(parts, part{text: text})
}

// appendPart appends p to parts, preserving text coalescing.
func appendPart(parts []part, p part) []part {
	if p.isToken {
		return append(parts, p)
	}
	return appendText(parts, p.text)
}

// Node is an element with its opening and closing markup rendered up front
// and an ordered list of text and placeholder children.
//
// A Node is consumed when it is appended to another node: its children move
// into the parent and the Node itself renders to "" from then on.
type Node struct {
	open     string
	close    string
	children []part
	consumed bool
	err      error
}

// New creates an element. name must be ASCII letters and digits or a doctype
// preamble ("!DOCTYPE html"); a preamble gets no closing tag.
func New(name string, attrs ...Attrs) (*Node, error) {
	preamble, err := checkTag(name)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		if err := a.writeTo(&b); err != nil {
			return nil, err
		}
	}
	b.WriteByte('>')

	n := &Node{
		open:     b.String(),
		children: make([]part, 0, 4),
	}
	if !preamble {
		n.close = "</" + name + ">"
	}
	return n, nil
}

// Must is like New but panics if the element cannot be created.
func Must(name string, attrs ...Attrs) *Node {
	n, err := New(name, attrs...)
	if err != nil {
		panic(err)
	}
	return n
}

// failed returns a node that only carries err.
func failed(err error) *Node {
	return &Node{err: err, consumed: true}
}

// Open returns the opening markup, e.g. `<main id="x">`.
func (n *Node) Open() string {
	return n.open
}

// Close returns the closing markup, or "" for a preamble.
func (n *Node) Close() string {
	return n.close
}

// Err returns the first error recorded while building n.
func (n *Node) Err() error {
	return n.err
}

// Consumed reports whether n has been merged into another node.
func (n *Node) Consumed() bool {
	return n.consumed
}

// Tokens returns the placeholders in n in document order, each once.
func (n *Node) Tokens() []Token {
	var out []Token
	seen := make(map[Token]bool)
	for _, p := range n.children {
		if p.isToken && !seen[p.token] {
			seen[p.token] = true
			out = append(out, p.token)
		}
	}
	return out
}

// voidTags are elements that cannot have children and have no closing tag.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidTag reports whether name is an HTML void element.
func IsVoidTag(name string) bool {
	return voidTags[strings.ToLower(name)]
}

// Void is an element that contributes only its opening markup, such as <br>
// or <link rel="stylesheet" href="a.css">.
type Void struct {
	node *Node
}

// NewVoid creates a void element. Any valid tag name is accepted; IsVoidTag
// lists the HTML ones.
func NewVoid(name string, attrs ...Attrs) (Void, error) {
	n, err := New(name, attrs...)
	if err != nil {
		return Void{}, err
	}
	return Void{node: n}, nil
}

// VoidTag is like NewVoid but records a construction error in the returned
// Void, where Append and Render report it.
func VoidTag(name string, attrs ...Attrs) Void {
	n, err := New(name, attrs...)
	if err != nil {
		return Void{node: failed(err)}
	}
	return Void{node: n}
}

// Open returns the element's markup, or "" for the zero Void.
func (v Void) Open() string {
	if v.node == nil {
		return ""
	}
	return v.node.open
}

// Err returns the construction error, if any.
func (v Void) Err() error {
	if v.node == nil {
		return nil
	}
	return v.node.err
}
