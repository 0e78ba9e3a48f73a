// Package markup builds HTML documents from a tree of pre-rendered element
// fragments with placeholder tokens resolved at render time.
//
// A Node is created by the element factory (New, or a named helper from the
// el package) and grown with Append. Appending a Node merges it into its
// parent: its opening fragment, children and closing fragment are spliced in
// and the appended Node is consumed.
//
//	$greetings := markup.NewToken("greetings")
//
//	page := markup.Must("!DOCTYPE html").Append(
//	    markup.Must("html").Append(
//	        markup.Must("head"),
//	        markup.Must("body").Append(
//	            markup.Must("main", markup.Attrs{"id": "main"}).Append($greetings),
//	        ),
//	    ),
//	)
//
//	html, err := page.Render(markup.Tokens{
//	    $greetings: markup.Must("ul").Append(markup.Must("li").Append("Hello")),
//	})
//
// # Escaping
//
// Attribute values are validated and entity-encoded when the element is
// created. Text content is written verbatim: callers escape free text
// themselves (see EscapeText).
//
// # Void Elements
//
// Elements without a closing tag (br, img, link, ...) are represented by the
// Void variant. Appending or substituting a Void contributes only its opening
// fragment. Builders and func() *Node values are treated the same way when they
// are passed uninvoked.
//
// # Errors
//
// Construction failures are reported as *ValidationError, unsupported content
// as *UnsupportedNodeError. Inside a fluent chain the first error sticks to the
// node, travels into any parent it is appended to, and is returned by Render.
package markup
