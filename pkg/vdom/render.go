package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Development only; it increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer renders VNode trees to HTML. Event handler props and reactive
// bindings are skipped in the markup; bindings render their current value
// once and live updates happen through Mount.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return r.renderElement(w, node, depth)
	case KindText:
		return r.renderText(w, node)
	case KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if IsVoidElement(node.Tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	pretty := r.config.Pretty && len(node.Children) > 0 && !isInlineElement(node.Tag)
	if pretty {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if pretty {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", node.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func (r *Renderer) renderText(w io.Writer, node *VNode) error {
	text := node.Text
	if node.TextBinding != nil {
		text = node.TextBinding()
	}
	_, err := io.WriteString(w, escapeHTML(text))
	return err
}

// renderAttributes writes static attributes, then reactive "bind:"
// attributes with their current values. Event handler props are dropped;
// boolean attributes render bare when true and not at all when false.
func (r *Renderer) renderAttributes(w io.Writer, node *VNode) error {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		if strings.HasPrefix(key, "on") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]
		if name, ok := bindingName(key); ok {
			getter, ok := value.(func() string)
			if !ok {
				continue
			}
			if err := writeAttr(w, name, getter()); err != nil {
				return err
			}
			continue
		}
		if err := writeAttr(w, key, value); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(w io.Writer, key string, value any) error {
	switch v := value.(type) {
	case bool:
		if !v {
			return nil
		}
		_, err := fmt.Fprintf(w, " %s", key)
		return err
	case nil:
		return nil
	default:
		_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(fmt.Sprint(v)))
		return err
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

// inlineElements render without pretty-mode line breaks around children.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "cite": true, "code": true,
	"em": true, "i": true, "kbd": true, "mark": true, "q": true,
	"small": true, "span": true, "strong": true, "label": true,
	"button": true, "td": true, "th": true, "li": true,
	"title": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "p": true, "option": true, "legend": true,
	"summary": true, "caption": true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}
