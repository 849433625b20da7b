package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // For KindText and KindRaw

	// TextBinding, when non-nil on a KindText node, computes the text
	// reactively. Attribute bindings live in Props under "bind:" keys.
	// Mount turns each binding into an effect.
	TextBinding func() string
}

// Props holds attributes and event handlers.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}
