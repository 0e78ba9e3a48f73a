package el

import "github.com/vango-dev/htmlr/pkg/markup"

// Document structure elements

func Html(attrs ...Attrs) Builder     { return markup.Tag("html", attrs...) }
func Head(attrs ...Attrs) Builder     { return markup.Tag("head", attrs...) }
func Body(attrs ...Attrs) Builder     { return markup.Tag("body", attrs...) }
func Title(attrs ...Attrs) Builder    { return markup.Tag("title", attrs...) }
func Style(attrs ...Attrs) Builder    { return markup.Tag("style", attrs...) }
func Script(attrs ...Attrs) Builder   { return markup.Tag("script", attrs...) }
func Noscript(attrs ...Attrs) Builder { return markup.Tag("noscript", attrs...) }
func Template(attrs ...Attrs) Builder { return markup.Tag("template", attrs...) }
func Slot(attrs ...Attrs) Builder     { return markup.Tag("slot", attrs...) }

// Content sectioning elements

func Header(attrs ...Attrs) Builder  { return markup.Tag("header", attrs...) }
func Footer(attrs ...Attrs) Builder  { return markup.Tag("footer", attrs...) }
func Main(attrs ...Attrs) Builder    { return markup.Tag("main", attrs...) }
func Nav(attrs ...Attrs) Builder     { return markup.Tag("nav", attrs...) }
func Section(attrs ...Attrs) Builder { return markup.Tag("section", attrs...) }
func Article(attrs ...Attrs) Builder { return markup.Tag("article", attrs...) }
func Aside(attrs ...Attrs) Builder   { return markup.Tag("aside", attrs...) }
func Address(attrs ...Attrs) Builder { return markup.Tag("address", attrs...) }
func H1(attrs ...Attrs) Builder      { return markup.Tag("h1", attrs...) }
func H2(attrs ...Attrs) Builder      { return markup.Tag("h2", attrs...) }
func H3(attrs ...Attrs) Builder      { return markup.Tag("h3", attrs...) }
func H4(attrs ...Attrs) Builder      { return markup.Tag("h4", attrs...) }
func H5(attrs ...Attrs) Builder      { return markup.Tag("h5", attrs...) }
func H6(attrs ...Attrs) Builder      { return markup.Tag("h6", attrs...) }
func Hgroup(attrs ...Attrs) Builder  { return markup.Tag("hgroup", attrs...) }
func Search(attrs ...Attrs) Builder  { return markup.Tag("search", attrs...) }

// Text content elements

func Div(attrs ...Attrs) Builder        { return markup.Tag("div", attrs...) }
func P(attrs ...Attrs) Builder          { return markup.Tag("p", attrs...) }
func Span(attrs ...Attrs) Builder       { return markup.Tag("span", attrs...) }
func Pre(attrs ...Attrs) Builder        { return markup.Tag("pre", attrs...) }
func Blockquote(attrs ...Attrs) Builder { return markup.Tag("blockquote", attrs...) }
func Ul(attrs ...Attrs) Builder         { return markup.Tag("ul", attrs...) }
func Ol(attrs ...Attrs) Builder         { return markup.Tag("ol", attrs...) }
func Li(attrs ...Attrs) Builder         { return markup.Tag("li", attrs...) }
func Dl(attrs ...Attrs) Builder         { return markup.Tag("dl", attrs...) }
func Dt(attrs ...Attrs) Builder         { return markup.Tag("dt", attrs...) }
func Dd(attrs ...Attrs) Builder         { return markup.Tag("dd", attrs...) }
func Figure(attrs ...Attrs) Builder     { return markup.Tag("figure", attrs...) }
func Figcaption(attrs ...Attrs) Builder { return markup.Tag("figcaption", attrs...) }
func Menu(attrs ...Attrs) Builder       { return markup.Tag("menu", attrs...) }

// Inline text semantics

func A(attrs ...Attrs) Builder      { return markup.Tag("a", attrs...) }
func Strong(attrs ...Attrs) Builder { return markup.Tag("strong", attrs...) }
func Em(attrs ...Attrs) Builder     { return markup.Tag("em", attrs...) }
func B(attrs ...Attrs) Builder      { return markup.Tag("b", attrs...) }
func I(attrs ...Attrs) Builder      { return markup.Tag("i", attrs...) }
func U(attrs ...Attrs) Builder      { return markup.Tag("u", attrs...) }
func S(attrs ...Attrs) Builder      { return markup.Tag("s", attrs...) }
func Small(attrs ...Attrs) Builder  { return markup.Tag("small", attrs...) }
func Mark(attrs ...Attrs) Builder   { return markup.Tag("mark", attrs...) }
func Sub(attrs ...Attrs) Builder    { return markup.Tag("sub", attrs...) }
func Sup(attrs ...Attrs) Builder    { return markup.Tag("sup", attrs...) }
func Code(attrs ...Attrs) Builder   { return markup.Tag("code", attrs...) }
func Kbd(attrs ...Attrs) Builder    { return markup.Tag("kbd", attrs...) }
func Samp(attrs ...Attrs) Builder   { return markup.Tag("samp", attrs...) }
func Var(attrs ...Attrs) Builder    { return markup.Tag("var", attrs...) }
func Abbr(attrs ...Attrs) Builder   { return markup.Tag("abbr", attrs...) }
func Time(attrs ...Attrs) Builder   { return markup.Tag("time", attrs...) }
func Cite(attrs ...Attrs) Builder   { return markup.Tag("cite", attrs...) }
func Q(attrs ...Attrs) Builder      { return markup.Tag("q", attrs...) }
func Dfn(attrs ...Attrs) Builder    { return markup.Tag("dfn", attrs...) }
func Ruby(attrs ...Attrs) Builder   { return markup.Tag("ruby", attrs...) }
func Rt(attrs ...Attrs) Builder     { return markup.Tag("rt", attrs...) }
func Rp(attrs ...Attrs) Builder     { return markup.Tag("rp", attrs...) }
func Bdi(attrs ...Attrs) Builder    { return markup.Tag("bdi", attrs...) }
func Bdo(attrs ...Attrs) Builder    { return markup.Tag("bdo", attrs...) }
func Data(attrs ...Attrs) Builder   { return markup.Tag("data", attrs...) }

// Table elements

func Table(attrs ...Attrs) Builder    { return markup.Tag("table", attrs...) }
func Caption(attrs ...Attrs) Builder  { return markup.Tag("caption", attrs...) }
func Thead(attrs ...Attrs) Builder    { return markup.Tag("thead", attrs...) }
func Tbody(attrs ...Attrs) Builder    { return markup.Tag("tbody", attrs...) }
func Tfoot(attrs ...Attrs) Builder    { return markup.Tag("tfoot", attrs...) }
func Tr(attrs ...Attrs) Builder       { return markup.Tag("tr", attrs...) }
func Th(attrs ...Attrs) Builder       { return markup.Tag("th", attrs...) }
func Td(attrs ...Attrs) Builder       { return markup.Tag("td", attrs...) }
func Colgroup(attrs ...Attrs) Builder { return markup.Tag("colgroup", attrs...) }

// Form elements

func Form(attrs ...Attrs) Builder     { return markup.Tag("form", attrs...) }
func Label(attrs ...Attrs) Builder    { return markup.Tag("label", attrs...) }
func Button(attrs ...Attrs) Builder   { return markup.Tag("button", attrs...) }
func Select(attrs ...Attrs) Builder   { return markup.Tag("select", attrs...) }
func Option(attrs ...Attrs) Builder   { return markup.Tag("option", attrs...) }
func Optgroup(attrs ...Attrs) Builder { return markup.Tag("optgroup", attrs...) }
func Textarea(attrs ...Attrs) Builder { return markup.Tag("textarea", attrs...) }
func Fieldset(attrs ...Attrs) Builder { return markup.Tag("fieldset", attrs...) }
func Legend(attrs ...Attrs) Builder   { return markup.Tag("legend", attrs...) }
func Datalist(attrs ...Attrs) Builder { return markup.Tag("datalist", attrs...) }
func Output(attrs ...Attrs) Builder   { return markup.Tag("output", attrs...) }
func Progress(attrs ...Attrs) Builder { return markup.Tag("progress", attrs...) }
func Meter(attrs ...Attrs) Builder    { return markup.Tag("meter", attrs...) }

// Media and embedded content

func Audio(attrs ...Attrs) Builder   { return markup.Tag("audio", attrs...) }
func Video(attrs ...Attrs) Builder   { return markup.Tag("video", attrs...) }
func Picture(attrs ...Attrs) Builder { return markup.Tag("picture", attrs...) }
func Canvas(attrs ...Attrs) Builder  { return markup.Tag("canvas", attrs...) }
func Iframe(attrs ...Attrs) Builder  { return markup.Tag("iframe", attrs...) }
func Object(attrs ...Attrs) Builder  { return markup.Tag("object", attrs...) }
func Svg(attrs ...Attrs) Builder     { return markup.Tag("svg", attrs...) }
func Map(attrs ...Attrs) Builder     { return markup.Tag("map", attrs...) }

// Interactive elements

func Details(attrs ...Attrs) Builder { return markup.Tag("details", attrs...) }
func Summary(attrs ...Attrs) Builder { return markup.Tag("summary", attrs...) }
func Dialog(attrs ...Attrs) Builder  { return markup.Tag("dialog", attrs...) }

// Void elements

func Area(attrs ...Attrs) Void   { return markup.VoidTag("area", attrs...) }
func Base(attrs ...Attrs) Void   { return markup.VoidTag("base", attrs...) }
func Br(attrs ...Attrs) Void     { return markup.VoidTag("br", attrs...) }
func Col(attrs ...Attrs) Void    { return markup.VoidTag("col", attrs...) }
func Embed(attrs ...Attrs) Void  { return markup.VoidTag("embed", attrs...) }
func Hr(attrs ...Attrs) Void     { return markup.VoidTag("hr", attrs...) }
func Img(attrs ...Attrs) Void    { return markup.VoidTag("img", attrs...) }
func Input(attrs ...Attrs) Void  { return markup.VoidTag("input", attrs...) }
func Link(attrs ...Attrs) Void   { return markup.VoidTag("link", attrs...) }
func Meta(attrs ...Attrs) Void   { return markup.VoidTag("meta", attrs...) }
func Param(attrs ...Attrs) Void  { return markup.VoidTag("param", attrs...) }
func Source(attrs ...Attrs) Void { return markup.VoidTag("source", attrs...) }
func Track(attrs ...Attrs) Void  { return markup.VoidTag("track", attrs...) }
func Wbr(attrs ...Attrs) Void    { return markup.VoidTag("wbr", attrs...) }
