package vdom

// voidElements are HTML elements that never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string, EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.applyAttr(v)

		case []Attr:
			for _, a := range v {
				node.applyAttr(a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, &VNode{
				Kind: KindText,
				Text: v,
			})

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

func (v *VNode) applyAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	}
	v.Props[a.Key] = a.Value
}

// Document structure elements

func Html(args ...any) *VNode  { return createElement("html", args) }
func Head(args ...any) *VNode  { return createElement("head", args) }
func Body(args ...any) *VNode  { return createElement("body", args) }
func Title(args ...any) *VNode { return createElement("title", args) }
func Meta(args ...any) *VNode  { return createElement("meta", args) }
func Link(args ...any) *VNode  { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }
func Style(args ...any) *VNode  { return createElement("style", args) }

// Sectioning elements

func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Article(args ...any) *VNode { return createElement("article", args) }
func Aside(args ...any) *VNode   { return createElement("aside", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }
func H4(args ...any) *VNode      { return createElement("h4", args) }
func H5(args ...any) *VNode      { return createElement("h5", args) }
func H6(args ...any) *VNode      { return createElement("h6", args) }

// Grouping elements

func Div(args ...any) *VNode        { return createElement("div", args) }
func P(args ...any) *VNode          { return createElement("p", args) }
func Span(args ...any) *VNode       { return createElement("span", args) }
func Pre(args ...any) *VNode        { return createElement("pre", args) }
func Blockquote(args ...any) *VNode { return createElement("blockquote", args) }
func Ul(args ...any) *VNode         { return createElement("ul", args) }
func Ol(args ...any) *VNode         { return createElement("ol", args) }
func Li(args ...any) *VNode         { return createElement("li", args) }
func Dl(args ...any) *VNode         { return createElement("dl", args) }
func Dt(args ...any) *VNode         { return createElement("dt", args) }
func Dd(args ...any) *VNode         { return createElement("dd", args) }
func Hr(args ...any) *VNode         { return createElement("hr", args) }
func Figure(args ...any) *VNode     { return createElement("figure", args) }
func Figcaption(args ...any) *VNode { return createElement("figcaption", args) }

// Text-level elements

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func B(args ...any) *VNode      { return createElement("b", args) }
func I(args ...any) *VNode      { return createElement("i", args) }
func Small(args ...any) *VNode  { return createElement("small", args) }
func Mark(args ...any) *VNode   { return createElement("mark", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Kbd(args ...any) *VNode    { return createElement("kbd", args) }
func Abbr(args ...any) *VNode   { return createElement("abbr", args) }
func Cite(args ...any) *VNode   { return createElement("cite", args) }
func Q(args ...any) *VNode      { return createElement("q", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }

// Embedded content

func Img(args ...any) *VNode    { return createElement("img", args) }
func Iframe(args ...any) *VNode { return createElement("iframe", args) }
func Video(args ...any) *VNode  { return createElement("video", args) }
func Audio(args ...any) *VNode  { return createElement("audio", args) }
func Source(args ...any) *VNode { return createElement("source", args) }
func Canvas(args ...any) *VNode { return createElement("canvas", args) }
func Svg(args ...any) *VNode    { return createElement("svg", args) }

// Table elements

func Table(args ...any) *VNode { return createElement("table", args) }
func Thead(args ...any) *VNode { return createElement("thead", args) }
func Tbody(args ...any) *VNode { return createElement("tbody", args) }
func Tfoot(args ...any) *VNode { return createElement("tfoot", args) }
func Tr(args ...any) *VNode    { return createElement("tr", args) }
func Th(args ...any) *VNode    { return createElement("th", args) }
func Td(args ...any) *VNode    { return createElement("td", args) }
func Caption(args ...any) *VNode { return createElement("caption", args) }

// Form elements

func Form(args ...any) *VNode     { return createElement("form", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Textarea(args ...any) *VNode { return createElement("textarea", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Select(args ...any) *VNode   { return createElement("select", args) }
func Option(args ...any) *VNode   { return createElement("option", args) }
func Optgroup(args ...any) *VNode { return createElement("optgroup", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }
func Fieldset(args ...any) *VNode { return createElement("fieldset", args) }
func Legend(args ...any) *VNode   { return createElement("legend", args) }
func Datalist(args ...any) *VNode { return createElement("datalist", args) }
func Output(args ...any) *VNode   { return createElement("output", args) }
func Progress(args ...any) *VNode { return createElement("progress", args) }
func Meter(args ...any) *VNode    { return createElement("meter", args) }

// Interactive elements

func Details(args ...any) *VNode { return createElement("details", args) }
func Summary(args ...any) *VNode { return createElement("summary", args) }
func Dialog(args ...any) *VNode  { return createElement("dialog", args) }

// El creates an element with an arbitrary tag, for tags without a
// dedicated constructor.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }
