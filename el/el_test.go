package el_test

import (
	"testing"

	. "github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/vdom"
)

func TestDSLBuildsVNodes(t *testing.T) {
	page := Div(
		ID("root"),
		H1("Rynex"),
		Ul(Range([]string{"a", "b", "c"}, func(s string, i int) *VNode {
			return Li(Key(i), s)
		})),
		Button(OnClick(func() {}), "Go"),
	)

	if page.Tag != "div" {
		t.Fatalf("expected div, got %q", page.Tag)
	}
	if len(page.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(page.Children))
	}

	list := page.Children[1]
	if list.Tag != "ul" || len(list.Children) != 3 {
		t.Errorf("unexpected list: %+v", list)
	}
	if list.Children[2].Key != "2" {
		t.Errorf("expected key 2, got %q", list.Children[2].Key)
	}
}

func TestDSLRendersThroughVdom(t *testing.T) {
	out, err := vdom.NewRenderer(vdom.RendererConfig{}).RenderToString(
		P(Class("lead"), "hello"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if out != `<p class="lead">hello</p>` {
		t.Errorf("got %q", out)
	}
}
