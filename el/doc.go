// Package el provides named HTML element helpers for the markup builder.
//
// Each helper takes optional attribute maps and returns the element's
// builder; calling the builder appends content:
//
//	import . "github.com/vango-dev/htmlr/el"
//
//	page := Doctype()(
//	    Html()(
//	        Head()(Title()("Hello")),
//	        Body()(
//	            Main(ID("main"))($content),
//	        ),
//	    ),
//	)
//
// Void elements (Br, Img, Link, Meta, ...) return a markup.Void that
// contributes only its opening tag. Tag covers element names without a
// helper.
package el
