package markup

import (
	"errors"
	"testing"

	g "maragu.dev/gomponents"
)

func mustRender(t *testing.T, n *Node, tokens Tokens) string {
	t.Helper()
	s, err := n.Render(tokens)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s
}

func TestAppendCoalescesText(t *testing.T) {
	n := Must("p").Append("Hello, ", "World!")
	if len(n.children) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(n.children))
	}
	if n.children[0].text != "Hello, World!" {
		t.Errorf("children[0] = %q", n.children[0].text)
	}

	joined := Must("p").Append("Hello, World!")
	if a, b := mustRender(t, n, nil), mustRender(t, joined, nil); a != b {
		t.Errorf("coalesced render %q differs from %q", a, b)
	}

	tok := NewToken("t")
	n.Append(tok, "a", "b")
	if len(n.children) != 3 {
		t.Errorf("len(children) = %d, want 3 (text, token, text)", len(n.children))
	}
}

func TestAppendMergesAndConsumes(t *testing.T) {
	child := Must("span", Attrs{"class": "c"}).Append("x")
	parent := Must("div").Append("a", child, "b")

	if got, want := mustRender(t, parent, nil), `<div>a<span class="c">x</span>b</div>`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if len(parent.children) != 1 {
		t.Errorf("len(children) = %d, want 1 after merge", len(parent.children))
	}
	if !child.Consumed() {
		t.Error("merged child not consumed")
	}
	if got := mustRender(t, child, nil); got != "" {
		t.Errorf("consumed child rendered %q, want empty", got)
	}

	// Appending to a consumed node does nothing.
	child.Append("more")
	if got := mustRender(t, child, nil); got != "" {
		t.Errorf("consumed child rendered %q after Append", got)
	}

	// A consumed node appended again contributes only its markup.
	other := Must("div").Append(child)
	if got, want := mustRender(t, other, nil), `<div><span class="c"></span></div>`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAppendMovesTokens(t *testing.T) {
	tok := NewToken("inner")
	inner := Must("main").Append("<", tok, ">")
	outer := Must("body").Append(inner)

	got := mustRender(t, outer, Tokens{tok: "x"})
	if want := "<body><main><x></main></body>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if len(outer.children) != 3 {
		t.Errorf("len(children) = %d, want 3", len(outer.children))
	}
}

func TestAppendFlattensNestedSequences(t *testing.T) {
	nested := Must("p").Append([]any{[]any{"a", []any{"b"}}, "c"})
	flat := Must("p").Append("a", "b", "c")

	if a, b := mustRender(t, nested, nil), mustRender(t, flat, nil); a != b {
		t.Errorf("nested = %q, flat = %q", a, b)
	}
	if len(nested.children) != 1 {
		t.Errorf("len(children) = %d, want 1", len(nested.children))
	}

	items := []*Node{Must("li").Append("1"), Must("li").Append("2")}
	list := Must("ul").Append(items, [][]string{{"x"}, {"y"}})
	if got, want := mustRender(t, list, nil), "<ul><li>1</li><li>2</li>xy</ul>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAppendDeferredVoid(t *testing.T) {
	tests := []struct {
		name string
		item any
	}{
		{"builder", Tag("br")},
		{"method value", Must("br").Append},
		{"func returning node", func() *Node { return Must("br") }},
		{"void", VoidTag("br")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Must("p").Append("a", tt.item, "b")
			if got, want := mustRender(t, n, nil), "<p>a<br>b</p>"; got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
			if len(n.children) != 1 {
				t.Errorf("len(children) = %d, want 1", len(n.children))
			}
		})
	}
}

func TestAppendUnsupported(t *testing.T) {
	tests := []struct {
		name string
		item any
	}{
		{"int", 42},
		{"nil", nil},
		{"map", map[string]string{"a": "b"}},
		{"func returning nil", func() *Node { return nil }},
		{"nil node", (*Node)(nil)},
		{"zero token", Token{}},
		{"zero void", Void{}},
		{"int inside slice", []any{"a", 1}},
		{"unsupported func", func() string { return "x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Must("div").Append("kept")
			n.Append(tt.item)

			if !errors.Is(n.Err(), ErrUnsupportedNode) {
				t.Fatalf("Err() = %v, want unsupported node error", n.Err())
			}
			var ue *UnsupportedNodeError
			if !errors.As(n.Err(), &ue) {
				t.Fatalf("Err() is %T", n.Err())
			}
			if _, err := n.Render(nil); err == nil {
				t.Error("Render() error = nil, want error")
			}
		})
	}
}

func TestAppendIsAtomic(t *testing.T) {
	child := Must("span").Append("x")
	parent := Must("div").Append("a")
	parent.Append(child, 3.14)

	if parent.Err() == nil {
		t.Fatal("Err() = nil")
	}
	if child.Consumed() {
		t.Error("child consumed by a failed Append")
	}
	if got := mustRender(t, child, nil); got != "<span>x</span>" {
		t.Errorf("child rendered %q", got)
	}
	if len(parent.children) != 1 || parent.children[0].text != "a" {
		t.Errorf("parent children changed: %+v", parent.children)
	}

	// The error sticks: later appends are ignored.
	parent.Append("b")
	if len(parent.children) != 1 {
		t.Errorf("Append after error changed children: %+v", parent.children)
	}
}

func TestAppendSelf(t *testing.T) {
	n := Must("div")
	n.Append(n)
	if !errors.Is(n.Err(), ErrUnsupportedNode) {
		t.Errorf("Err() = %v, want unsupported node error", n.Err())
	}
}

func TestAppendSameNodeTwice(t *testing.T) {
	li := Must("li").Append("x")
	ul := Must("ul").Append(li, li)
	if got, want := mustRender(t, ul, nil), "<ul><li>x</li><li></li></ul>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAppendPropagatesErrors(t *testing.T) {
	bad := Tag("1>2")("content")
	if !errors.Is(bad.Err(), ErrValidation) {
		t.Fatalf("Err() = %v, want validation error", bad.Err())
	}

	parent := Must("div").Append(bad)
	if !errors.Is(parent.Err(), ErrValidation) {
		t.Errorf("parent Err() = %v, want validation error", parent.Err())
	}

	withVoid := Must("div").Append(VoidTag("img", Attrs{"a=b": "c"}))
	if !errors.Is(withVoid.Err(), ErrValidation) {
		t.Errorf("Err() = %v, want validation error", withVoid.Err())
	}
}

func TestAppendGomponents(t *testing.T) {
	n := Must("div").Append(
		g.Text("<b>"),
		g.El("em", g.Text("hi")),
		g.Group{g.Raw("<i>"), g.Raw("</i>")},
	)
	if got, want := mustRender(t, n, nil), "<div>&lt;b&gt;<em>hi</em><i></i></div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
