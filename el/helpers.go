// This file re-exports vdom helpers, attributes, and events for the el package.
package el

import "github.com/razen-core/rynex/pkg/vdom"

// Node helpers

func Text(content string) *VNode                 { return vdom.Text(content) }
func Textf(format string, args ...any) *VNode    { return vdom.Textf(format, args...) }
func Raw(html string) *VNode                     { return vdom.Raw(html) }
func Fragment(children ...any) *VNode            { return vdom.Fragment(children...) }
func If(condition bool, node *VNode) *VNode      { return vdom.If(condition, node) }
func IfElse(c bool, ifTrue, ifFalse *VNode) *VNode {
	return vdom.IfElse(c, ifTrue, ifFalse)
}
func When(condition bool, fn func() *VNode) *VNode { return vdom.When(condition, fn) }
func Nothing() *VNode                              { return vdom.Nothing() }
func Key(key any) Attr                             { return vdom.Key(key) }

func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}
func Repeat(n int, fn func(i int) *VNode) []*VNode { return vdom.Repeat(n, fn) }

// Reactive bindings

func DynText(getter func() string) *VNode        { return vdom.DynText(getter) }
func DynAttr(name string, getter func() string) Attr {
	return vdom.DynAttr(name, getter)
}

// Attributes

func CN(classes ...string) string { return vdom.CN(classes...) }

func ID(id string) Attr                   { return vdom.ID(id) }
func Class(classes ...string) Attr        { return vdom.Class(classes...) }
func ClassIf(pairs ...ClassPair) Attr     { return vdom.ClassIf(pairs...) }
func StyleAttr(style string) Attr         { return vdom.StyleAttr(style) }
func Data(key, value string) Attr         { return vdom.Data(key, value) }
func Custom(key string, value any) Attr   { return vdom.Custom(key, value) }
func Href(url string) Attr                { return vdom.Href(url) }
func Target(target string) Attr           { return vdom.Target(target) }
func Rel(rel string) Attr                 { return vdom.Rel(rel) }
func Src(url string) Attr                 { return vdom.Src(url) }
func Alt(text string) Attr                { return vdom.Alt(text) }
func Type(t string) Attr                  { return vdom.Type(t) }
func Name(name string) Attr               { return vdom.Name(name) }
func Value(value any) Attr                { return vdom.Value(value) }
func Placeholder(text string) Attr        { return vdom.Placeholder(text) }
func Disabled(disabled bool) Attr         { return vdom.Disabled(disabled) }
func Checked(checked bool) Attr           { return vdom.Checked(checked) }
func RequiredAttr(required bool) Attr     { return vdom.Required(required) }
func For(id string) Attr                  { return vdom.For(id) }
func Role(role string) Attr               { return vdom.Role(role) }
func AriaLabel(label string) Attr         { return vdom.AriaLabel(label) }
func AriaHidden(hidden bool) Attr         { return vdom.AriaHidden(hidden) }
func AriaExpanded(expanded bool) Attr     { return vdom.AriaExpanded(expanded) }
func AriaControls(id string) Attr         { return vdom.AriaControls(id) }
func AriaSelected(selected bool) Attr     { return vdom.AriaSelected(selected) }
func TabIndex(i int) Attr                 { return vdom.TabIndex(i) }

// Events

func OnClick(handler any) EventHandler      { return vdom.OnClick(handler) }
func OnDblClick(handler any) EventHandler   { return vdom.OnDblClick(handler) }
func OnMouseEnter(handler any) EventHandler { return vdom.OnMouseEnter(handler) }
func OnMouseLeave(handler any) EventHandler { return vdom.OnMouseLeave(handler) }
func OnKeyDown(handler any) EventHandler    { return vdom.OnKeyDown(handler) }
func OnKeyUp(handler any) EventHandler      { return vdom.OnKeyUp(handler) }
func OnInput(handler any) EventHandler      { return vdom.OnInput(handler) }
func OnChange(handler any) EventHandler     { return vdom.OnChange(handler) }
func OnSubmit(handler any) EventHandler     { return vdom.OnSubmit(handler) }
func OnFocus(handler any) EventHandler      { return vdom.OnFocus(handler) }
func OnBlur(handler any) EventHandler       { return vdom.OnBlur(handler) }
func On(name string, handler any) EventHandler {
	return vdom.On(name, handler)
}
