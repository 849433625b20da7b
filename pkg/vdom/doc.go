// Package vdom provides the DOM-representation and rendering layer for
// the Rynex framework.
//
// A VNode tree is built with element constructors (Div, Span, Button, …)
// and helper combinators (Text, If, Range). The tree renders to HTML via
// Renderer, and DynText/DynAttr nodes bind parts of the tree to reactive
// state: mounting a tree creates one effect per binding, so the host
// applier is told exactly which text or attribute to re-apply when the
// state it read changes.
package vdom
