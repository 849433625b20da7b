package ui

import (
	"strings"
	"testing"

	"github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/reactive"
	"github.com/razen-core/rynex/pkg/vdom"
)

func render(t *testing.T, node *el.VNode) string {
	t.Helper()
	out, err := vdom.NewRenderer(vdom.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return out
}

func TestButtonDefaults(t *testing.T) {
	out := render(t, Button(WithLabel("Save")))

	if !strings.Contains(out, "rx-button--default") {
		t.Errorf("expected default variant class, got %q", out)
	}
	if !strings.Contains(out, "rx-button--md") {
		t.Errorf("expected md size class, got %q", out)
	}
	if !strings.Contains(out, ">Save<") {
		t.Errorf("expected label, got %q", out)
	}
	if strings.Contains(out, "disabled") {
		t.Errorf("default button must not be disabled, got %q", out)
	}
}

func TestButtonVariantsAndState(t *testing.T) {
	out := render(t, Button(Destructive(), WithSize(SizeLg), WithLoading(true), WithLabel("Delete")))

	if !strings.Contains(out, "rx-button--destructive") {
		t.Errorf("expected destructive class, got %q", out)
	}
	if !strings.Contains(out, "rx-button--lg") {
		t.Errorf("expected lg class, got %q", out)
	}
	if !strings.Contains(out, "disabled") {
		t.Errorf("loading button must be disabled, got %q", out)
	}
	if !strings.Contains(out, `data-loading="true"`) {
		t.Errorf("expected data-loading, got %q", out)
	}
}

func TestTabsRendersActivePanelOnly(t *testing.T) {
	out := render(t, Tabs(
		TabsValue("two"),
		TabsItems(
			TabItem{Value: "one", Label: "One", Content: el.P(el.Text("first"))},
			TabItem{Value: "two", Label: "Two", Content: el.P(el.Text("second"))},
		),
	))

	if !strings.Contains(out, "second") {
		t.Errorf("expected active panel content, got %q", out)
	}
	if strings.Contains(out, "first") {
		t.Errorf("inactive panel must not render, got %q", out)
	}
	if !strings.Contains(out, `aria-selected="true"`) {
		t.Errorf("expected selected trigger, got %q", out)
	}
	if !strings.Contains(out, `role="tablist"`) {
		t.Errorf("expected tablist role, got %q", out)
	}
}

func TestTabsDefaultsToFirstTab(t *testing.T) {
	out := render(t, Tabs(TabsItems(
		TabItem{Value: "a", Label: "A", Content: el.P(el.Text("alpha"))},
		TabItem{Value: "b", Label: "B", Content: el.P(el.Text("beta"))},
	)))

	if !strings.Contains(out, "alpha") {
		t.Errorf("expected first panel by default, got %q", out)
	}
}

func TestTabsBind(t *testing.T) {
	state := reactive.NewReactive(map[string]any{"tab": "b"})

	var cfg tabsConfig
	TabsBind(state, "tab")(&cfg)

	if cfg.value != "b" {
		t.Errorf("expected bound value %q, got %q", "b", cfg.value)
	}
	cfg.onChange("a")
	reactive.Settle()
	if got := state.Peek("tab"); got != "a" {
		t.Errorf("expected state updated to %q, got %v", "a", got)
	}
}

func TestAccordionRendersOpenContent(t *testing.T) {
	out := render(t, Accordion(
		AccordionOpenItems("faq-1"),
		AccordionItems(
			AccordionItem{Value: "faq-1", Trigger: "What is it?", Content: el.P(el.Text("a framework"))},
			AccordionItem{Value: "faq-2", Trigger: "Is it fast?", Content: el.P(el.Text("yes"))},
		),
	))

	if !strings.Contains(out, "a framework") {
		t.Errorf("expected open content, got %q", out)
	}
	if strings.Contains(out, ">yes<") {
		t.Errorf("closed content must not render, got %q", out)
	}
	if !strings.Contains(out, `aria-expanded="true"`) {
		t.Errorf("expected expanded trigger, got %q", out)
	}
	if !strings.Contains(out, `data-state="closed"`) {
		t.Errorf("expected closed item state, got %q", out)
	}
}

func TestAccordionBindSingle(t *testing.T) {
	state := reactive.NewReactive(map[string]any{"open": []string{"a"}})

	var cfg accordionConfig
	AccordionBind(state, "open", false)(&cfg)

	if len(cfg.openItems) != 1 || cfg.openItems[0] != "a" {
		t.Fatalf("expected bound open items, got %v", cfg.openItems)
	}

	// Opening b replaces a in single mode.
	cfg.onToggle("b", true)
	reactive.Settle()
	got, _ := state.Peek("open").([]string)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected [b], got %v", got)
	}
}

func TestAccordionBindMultiple(t *testing.T) {
	state := reactive.NewReactive(map[string]any{"open": []string{"a"}})

	var cfg accordionConfig
	AccordionBind(state, "open", true)(&cfg)

	cfg.onToggle("b", true)
	reactive.Settle()
	got, _ := state.Peek("open").([]string)
	if len(got) != 2 {
		t.Fatalf("expected two open items, got %v", got)
	}

	cfg.onToggle("a", false)
	reactive.Settle()
	got, _ = state.Peek("open").([]string)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected [b], got %v", got)
	}
}

func TestDialogClosedRendersNothing(t *testing.T) {
	out := render(t, Dialog(DialogTitle("Confirm")))
	if out != "" {
		t.Errorf("closed dialog must render nothing, got %q", out)
	}
}

func TestDialogOpen(t *testing.T) {
	out := render(t, Dialog(
		DialogOpen(true),
		DialogTitle("Delete project"),
		DialogDescription("This cannot be undone."),
		DialogContent(el.P(el.Text("Are you sure?"))),
		DialogFooter(Button(Destructive(), WithLabel("Delete"))),
	))

	if !strings.Contains(out, `role="dialog"`) {
		t.Errorf("expected dialog role, got %q", out)
	}
	if !strings.Contains(out, "Delete project") {
		t.Errorf("expected title, got %q", out)
	}
	if !strings.Contains(out, "This cannot be undone.") {
		t.Errorf("expected description, got %q", out)
	}
	if !strings.Contains(out, "rx-dialog__overlay") {
		t.Errorf("expected overlay, got %q", out)
	}
	if !strings.Contains(out, `aria-label="Close"`) {
		t.Errorf("expected close button, got %q", out)
	}
}

func TestDialogHideClose(t *testing.T) {
	out := render(t, Dialog(DialogOpen(true), DialogHideClose()))
	if strings.Contains(out, `aria-label="Close"`) {
		t.Errorf("close button must be hidden, got %q", out)
	}
}

func TestDialogBind(t *testing.T) {
	state := reactive.NewReactive(map[string]any{"open": true})

	var cfg dialogConfig
	DialogBind(state, "open")(&cfg)

	if !cfg.open {
		t.Fatal("expected bound open state")
	}
	cfg.onOpenChange(false)
	reactive.Settle()
	if got := state.Peek("open"); got != false {
		t.Errorf("expected state closed, got %v", got)
	}
}
