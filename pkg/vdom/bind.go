package vdom

import (
	"fmt"
	"strconv"

	"github.com/razen-core/rynex/pkg/reactive"
)

// DynText creates a text node whose content is computed reactively.
// When the tree is mounted, the getter runs inside a tracked effect, so
// the text re-applies whenever reactive state it read changes.
func DynText(getter func() string) *VNode {
	return &VNode{Kind: KindText, TextBinding: getter}
}

// DynTextf is DynText over a format string with reactive arguments.
func DynTextf(format string, getters ...func() any) *VNode {
	return DynText(func() string {
		args := make([]any, len(getters))
		for i, g := range getters {
			args[i] = g()
		}
		return fmt.Sprintf(format, args...)
	})
}

// DynAttr binds one attribute of a node to a reactive getter.
func DynAttr(name string, getter func() string) Attr {
	return Attr{Key: "bind:" + name, Value: getter}
}

// Applier is the host-side surface the binding layer drives. The browser
// runtime implements it over real DOM nodes; tests implement it with a
// recorder. Paths address nodes by child indices from the mount root
// (e.g. "0.2.1").
type Applier interface {
	SetText(path string, text string)
	SetAttr(path string, name, value string)
}

// Binding holds the live effects created by Mount. Stopping it detaches
// every binding from the reactive state it read.
type Binding struct {
	effects []*reactive.Effect
}

// Stop tears down all effects created for the mounted tree.
// Safe to call more than once.
func (b *Binding) Stop() {
	for _, e := range b.effects {
		e.Stop()
	}
}

// Mount walks the tree and creates one effect per reactive binding
// (DynText nodes and bind: attributes), applying the current value
// immediately and re-applying through the applier whenever a dependency
// changes.
func Mount(root *VNode, a Applier) *Binding {
	b := &Binding{}
	mountNode(root, a, "", b)
	return b
}

func mountNode(node *VNode, a Applier, path string, b *Binding) {
	if node == nil {
		return
	}

	if node.Kind == KindText && node.TextBinding != nil {
		getter := node.TextBinding
		nodePath := path
		b.effects = append(b.effects, reactive.CreateEffect(func() reactive.Cleanup {
			a.SetText(nodePath, getter())
			return nil
		}))
	}

	if node.Kind == KindElement {
		for key, value := range node.Props {
			name, ok := bindingName(key)
			if !ok {
				continue
			}
			getter, ok := value.(func() string)
			if !ok {
				continue
			}
			attrName := name
			nodePath := path
			b.effects = append(b.effects, reactive.CreateEffect(func() reactive.Cleanup {
				a.SetAttr(nodePath, attrName, getter())
				return nil
			}))
		}
	}

	for i, child := range node.Children {
		childPath := strconv.Itoa(i)
		if path != "" {
			childPath = path + "." + childPath
		}
		mountNode(child, a, childPath, b)
	}
}

// bindingName extracts the attribute name from a "bind:" prop key.
func bindingName(key string) (string, bool) {
	const prefix = "bind:"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return key[len(prefix):], true
	}
	return "", false
}
