package vdom

import (
	"strings"
	"testing"
)

func render(t *testing.T, node *VNode) string {
	t.Helper()
	out, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return out
}

func TestRenderElement(t *testing.T) {
	out := render(t, Div(ID("app"), Class("box"), Span("hi")))
	want := `<div class="box" id="app"><span>hi</span></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderEscapesText(t *testing.T) {
	out := render(t, P(`<script>alert("x")</script>`))
	if strings.Contains(out, "<script>") {
		t.Errorf("text must be escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected entity-escaped text, got %q", out)
	}
}

func TestRenderEscapesAttrs(t *testing.T) {
	out := render(t, Div(Data("v", `"><img src=x>`)))
	if strings.Contains(out, `"><img`) {
		t.Errorf("attribute must be escaped, got %q", out)
	}
}

func TestRenderRawIsNotEscaped(t *testing.T) {
	out := render(t, Div(Raw("<b>bold</b>")))
	if out != "<div><b>bold</b></div>" {
		t.Errorf("got %q", out)
	}
}

func TestRenderVoidElement(t *testing.T) {
	out := render(t, Img(Src("/a.png"), Alt("a")))
	want := `<img alt="a" src="/a.png">`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderBooleanAttrs(t *testing.T) {
	out := render(t, Input(Type("checkbox"), Checked(true), Disabled(false)))
	if !strings.Contains(out, " checked") {
		t.Errorf("true boolean attr must render bare, got %q", out)
	}
	if strings.Contains(out, "disabled") {
		t.Errorf("false boolean attr must be omitted, got %q", out)
	}
}

func TestRenderSkipsEventHandlers(t *testing.T) {
	out := render(t, Button(OnClick(func() {}), "go"))
	if strings.Contains(out, "onclick") {
		t.Errorf("handlers must not appear in markup, got %q", out)
	}
}

func TestRenderFragmentHasNoWrapper(t *testing.T) {
	out := render(t, Fragment(Span("a"), Span("b")))
	if out != "<span>a</span><span>b</span>" {
		t.Errorf("got %q", out)
	}
}

func TestRenderNilNode(t *testing.T) {
	out := render(t, Div(If(false, Span("hidden")), "x"))
	if out != "<div>x</div>" {
		t.Errorf("got %q", out)
	}
}

func TestRenderDynBindingsCurrentValue(t *testing.T) {
	label := "now"
	out := render(t, Div(
		DynAttr("title", func() string { return label }),
		DynText(func() string { return label }),
	))
	want := `<div title="now">now</div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
