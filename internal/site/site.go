package site

import (
	"context"
	"fmt"
	"time"

	"github.com/vango-dev/htmlr/el"
	"github.com/vango-dev/htmlr/pkg/content"
	"github.com/vango-dev/htmlr/pkg/markup"
	"github.com/vango-dev/htmlr/pkg/middleware"
)

// Placeholders in the page template.
var (
	TitleToken        = el.NewToken("title")
	StyleSheetToken   = el.NewToken("style_sheet")
	ScriptToken       = el.NewToken("script")
	InlineScriptToken = el.NewToken("inline_script")
	MainContentToken  = el.NewToken("main_content")
)

// ClockID is the element the live clock fragment replaces.
const ClockID = "clock"

// Paths of the assets the page links to.
const (
	StyleSheetPath = "/styles.css"
	ScriptPath     = "/live.js"
)

var template = el.Doctype()(
	el.Html(el.Attr("lang", "en"))(
		el.Head()(
			el.Meta(el.Attr("charset", "utf-8")),
			TitleToken,
			StyleSheetToken,
			ScriptToken,
			InlineScriptToken,
		),
		el.Body()(
			el.Main(el.ID("main-content"))(
				MainContentToken,
			),
			el.Footer(el.ID("footer"))(
				el.Tag("htmlrbadge")(el.Class("custom-element"))("Rendered by htmlr"),
			),
		),
	),
)

// Template returns the page template. It is shared and must not be
// appended to.
func Template() *markup.Node {
	return template
}

// now is replaced in tests.
var now = time.Now

// sayHello is the inline script of the page.
const sayHello = `function sayHello() {
    alert('Hello, World!');
}`

// Options select optional parts of the page.
type Options struct {
	// Live links the script that keeps the clock current.
	Live bool
}

// Page returns the page template and the token mapping that fills it with
// the greetings.
func Page(greetings []content.Greeting, opts Options) (*markup.Node, markup.Tokens) {
	var script any
	if opts.Live {
		script = el.Script(el.Src(ScriptPath), el.Bool("defer", true))()
	}

	tokens := markup.Tokens{
		TitleToken:        el.Title(el.ID("title"))("Greetings from Around the World"),
		StyleSheetToken:   el.Link(el.Rel("stylesheet"), el.Href(StyleSheetPath)),
		ScriptToken:       script,
		InlineScriptToken: el.Script()(sayHello),
		MainContentToken: el.Section(el.Attr("onclick", "sayHello();"))(
			el.H1()("Greetings from Around the World!"),
			Greetings(greetings),
			el.Div(el.ID(ClockID))(Clock(now())),
		),
	}
	return template, tokens
}

// Greetings renders the greetings as a list.
func Greetings(greetings []content.Greeting) *markup.Node {
	return el.Ul(el.ID("content"))(
		el.Range(greetings, func(g content.Greeting, i int) *markup.Node {
			return el.Li(
				el.ID(fmt.Sprintf("greeting-%d", i)),
				el.Class("greetings"),
				el.Attr("lang", g.Language),
			)(el.Text(g.Text))
		}),
	)
}

// Clock renders the "the time is" fragment for t.
func Clock(t time.Time) *markup.Node {
	return el.P(el.Class("clock"))(
		"the time is ",
		el.Time(el.Attr("datetime", t.Format(time.RFC3339)))(t.Format("15:04:05")),
	)
}

// Render renders the page with the greetings.
func Render(ctx context.Context, greetings []content.Greeting, opts Options) (string, error) {
	page, tokens := Page(greetings, opts)
	return RenderNode(ctx, "page", page, tokens)
}

// RenderNode renders n inside a render span and records render metrics.
func RenderNode(ctx context.Context, name string, n *markup.Node, tokens markup.Tokens) (string, error) {
	_, end := middleware.StartRenderSpan(ctx, name)
	start := time.Now()
	html, err := n.Render(tokens)
	middleware.RecordRender(time.Since(start), err)
	end(len(html), err)
	return html, err
}
