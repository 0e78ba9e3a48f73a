package markup

// Builder appends content to an element and returns it. Named helpers and
// Sigil return Builders; a Builder passed to Append or mapped to a token
// without being called stands for a void element.
type Builder func(content ...any) *Node

// Tag creates the element and returns its bound Builder. Calling the Builder
// more than once keeps appending to the same element. A construction error is
// recorded on the element and surfaces from Append and Render.
func Tag(name string, attrs ...Attrs) Builder {
	n, err := New(name, attrs...)
	if err != nil {
		n = failed(err)
	}
	return n.Append
}

// Sigil binds a tag name to the element factory, for tags without a named
// helper.
//
//	article := markup.Sigil("article")
//	n := article(markup.Attrs{"class": "post"})("Hello")
func Sigil(name string) func(attrs ...Attrs) Builder {
	return func(attrs ...Attrs) Builder {
		return Tag(name, attrs...)
	}
}
