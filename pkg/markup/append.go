package markup

import (
	"reflect"
	"strings"

	g "maragu.dev/gomponents"
)

// Append adds content to n and returns n. Items may be:
//
//   - string: appended verbatim, merged with adjacent text
//   - *Node: merged; its markup and children move into n and it is consumed
//   - Void: its opening markup
//   - Token: a placeholder resolved by Render
//   - Builder or func() *Node: invoked, and only the opening markup of the
//     result is appended (the deferred void element form)
//   - gomponents.Node: rendered to text
//   - a slice or array of any of these, nested to any depth
//
// Any other item records an *UnsupportedNodeError on n. Nothing from a failed
// call is committed and no appended node is consumed. Once n carries an error
// or has been consumed, Append does nothing.
func (n *Node) Append(items ...any) *Node {
	if n.err != nil || n.consumed {
		return n
	}

	s := &stage{parent: n, merged: make(map[*Node]bool)}
	if err := s.add(items); err != nil {
		n.err = err
		return n
	}

	for _, p := range s.parts {
		n.children = appendPart(n.children, p)
	}
	for m := range s.merged {
		m.children = nil
		m.consumed = true
	}
	return n
}

// stage collects the parts of one Append call before they are committed.
type stage struct {
	parent *Node
	parts  []part
	merged map[*Node]bool
}

func (s *stage) text(t string) {
	s.parts = appendText(s.parts, t)
}

func (s *stage) add(items []any) error {
	for _, item := range items {
		if err := s.addOne(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *stage) addOne(item any) error {
	switch v := item.(type) {
	case string:
		s.text(v)

	case *Node:
		return s.merge(v)

	case Void:
		if v.node == nil {
			return unsupported(v, "zero Void")
		}
		if v.node.err != nil {
			return v.node.err
		}
		s.text(v.node.open)

	case Token:
		if v.IsZero() {
			return unsupported(v, "token was not created by NewToken")
		}
		s.parts = append(s.parts, part{token: v, isToken: true})

	case Builder:
		if v == nil {
			return unsupported(item, "nil builder")
		}
		return s.deferred(item, v())

	case func(...any) *Node:
		if v == nil {
			return unsupported(item, "nil builder")
		}
		return s.deferred(item, v())

	case func() *Node:
		if v == nil {
			return unsupported(item, "nil function")
		}
		return s.deferred(item, v())

	case []any:
		return s.add(v)

	case g.Node:
		var b strings.Builder
		if err := v.Render(&b); err != nil {
			return unsupported(item, err.Error())
		}
		s.text(b.String())

	default:
		rv := reflect.ValueOf(item)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return unsupported(item, "")
		}
		for i := 0; i < rv.Len(); i++ {
			if err := s.addOne(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// merge splices child into the staged parts. A node that is already
// consumed, or merged earlier in the same call, contributes only its markup.
func (s *stage) merge(child *Node) error {
	if child == nil {
		return unsupported(child, "nil node")
	}
	if child == s.parent {
		return unsupported(child, "a node cannot be appended to itself")
	}
	if child.err != nil {
		return child.err
	}

	s.text(child.open)
	if !child.consumed && !s.merged[child] {
		for _, p := range child.children {
			s.parts = appendPart(s.parts, p)
		}
		s.merged[child] = true
	}
	s.text(child.close)
	return nil
}

// deferred appends the opening markup of a node returned by an uninvoked
// constructor.
func (s *stage) deferred(fn any, result *Node) error {
	if result == nil {
		return unsupported(fn, "the function returned an unhandled type")
	}
	if result.err != nil {
		return result.err
	}
	s.text(result.open)
	return nil
}
