package site

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/htmlr/pkg/content"
	"github.com/vango-dev/htmlr/pkg/markup"
)

var fixedTime = time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)

func stubNow(t *testing.T) {
	t.Helper()
	old := now
	now = func() time.Time { return fixedTime }
	t.Cleanup(func() { now = old })
}

var testGreetings = []content.Greeting{
	{Language: "en", Text: "Hello, World!"},
	{Language: "eo", Text: "Saluton, Mondo!"},
}

func TestRender(t *testing.T) {
	stubNow(t)

	got, err := Render(context.Background(), testGreetings, Options{Live: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
		`<title id="title">Greetings from Around the World</title>` +
		`<link rel="stylesheet" href="/styles.css">` +
		`<script src="/live.js" defer></script>` +
		`<script>` + sayHello + `</script></head>` +
		`<body><main id="main-content"><section onclick="sayHello();">` +
		`<h1>Greetings from Around the World!</h1>` +
		`<ul id="content">` +
		`<li id="greeting-0" class="greetings" lang="en">Hello, World!</li>` +
		`<li id="greeting-1" class="greetings" lang="eo">Saluton, Mondo!</li>` +
		`</ul>` +
		`<div id="clock"><p class="clock">the time is <time datetime="2024-03-01T12:30:05Z">12:30:05</time></p></div>` +
		`</section></main>` +
		`<footer id="footer"><htmlrbadge class="custom-element">Rendered by htmlr</htmlrbadge></footer>` +
		`</body></html>`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_WithoutLive(t *testing.T) {
	stubNow(t)

	got, err := Render(context.Background(), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, ScriptPath) {
		t.Error("live script should be omitted")
	}
	if !strings.Contains(got, `<ul id="content"></ul>`) {
		t.Error("expected an empty greetings list")
	}
}

func TestRender_Repeatable(t *testing.T) {
	stubNow(t)

	first, err := Render(context.Background(), testGreetings, Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Render(context.Background(), testGreetings[:1], Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(second, "Saluton") {
		t.Error("second render should only contain its own greetings")
	}
	third, err := Render(context.Background(), testGreetings, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first != third {
		t.Error("the shared template must not change between renders")
	}
}

func TestGreetings_EscapesText(t *testing.T) {
	got, err := Greetings([]content.Greeting{{Language: "x", Text: "<b>Hi & bye</b>"}}).Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `<ul id="content"><li id="greeting-0" class="greetings" lang="x">&lt;b&gt;Hi &amp; bye&lt;/b&gt;</li></ul>`
	if got != want {
		t.Errorf("Greetings() = %s, want %s", got, want)
	}
}

func TestClock(t *testing.T) {
	got, err := Clock(fixedTime).Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `<p class="clock">the time is <time datetime="2024-03-01T12:30:05Z">12:30:05</time></p>`
	if got != want {
		t.Errorf("Clock() = %s, want %s", got, want)
	}
}

func TestTemplateTokens(t *testing.T) {
	tokens := Template().Tokens()
	want := []markup.Token{TitleToken, StyleSheetToken, ScriptToken, InlineScriptToken, MainContentToken}
	if len(tokens) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("Tokens()[%d] = %v, want %v", i, tokens[i], want[i])
		}
	}
}

func TestRenderNode_Error(t *testing.T) {
	_, err := RenderNode(context.Background(), "broken", Template(), markup.Tokens{TitleToken: 3})
	if !errors.Is(err, markup.ErrUnsupportedNode) {
		t.Errorf("RenderNode() error = %v, want ErrUnsupportedNode", err)
	}
}
