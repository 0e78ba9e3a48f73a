package el

import "strings"

// ID sets the id attribute.
func ID(id string) Attrs {
	return Attrs{"id": id}
}

// Class sets the class attribute, joining the names with spaces.
func Class(names ...string) Attrs {
	return Attrs{"class": strings.Join(names, " ")}
}

// Href sets the href attribute.
func Href(url string) Attrs {
	return Attrs{"href": url}
}

// Src sets the src attribute.
func Src(url string) Attrs {
	return Attrs{"src": url}
}

// Rel sets the rel attribute.
func Rel(rel string) Attrs {
	return Attrs{"rel": rel}
}

// Attr sets a single attribute.
func Attr(name string, value any) Attrs {
	return Attrs{name: value}
}

// DataAttr sets a data-* attribute.
func DataAttr(key, value string) Attrs {
	return Attrs{"data-" + key: value}
}

// Bool sets a boolean attribute when on is true.
func Bool(name string, on bool) Attrs {
	return Attrs{name: on}
}
