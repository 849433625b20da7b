package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf creates a text node with fmt.Sprintf formatting.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a raw HTML node. The content is NOT escaped; never pass
// untrusted input.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(children))}
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

// If returns node when condition holds, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue when condition holds, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When lazily evaluates fn only when condition holds, for branches whose
// construction is expensive or invalid when the condition is false.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps items to child nodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Repeat produces n nodes from an index function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Key sets the reconciliation key for a node.
func Key(key any) Attr {
	return Attr{Key: "key", Value: fmt.Sprint(key)}
}

// Nothing returns an empty fragment, for branches that render nothing.
func Nothing() *VNode {
	return &VNode{Kind: KindFragment}
}
