package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassIf conditionally includes a class, joining only the classes whose
// condition holds.
func ClassIf(pairs ...ClassPair) Attr {
	var names []string
	for _, p := range pairs {
		if p.When {
			names = append(names, p.Name)
		}
	}
	return attr("class", strings.Join(names, " "))
}

// ClassPair is a class name with its inclusion condition.
type ClassPair struct {
	Name string
	When bool
}

// CN joins class name fragments, skipping empty ones.
func CN(classes ...string) string {
	var names []string
	for _, c := range classes {
		if c != "" {
			names = append(names, c)
		}
	}
	return strings.Join(names, " ")
}

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Custom creates an attribute with an arbitrary key.
func Custom(key string, value any) Attr { return attr(key, value) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Required sets the required attribute.
func Required(required bool) Attr { return attr("required", required) }

// For sets the for attribute (label targets).
func For(id string) Attr { return attr("for", id) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// TabIndex sets the tabindex attribute.
func TabIndex(i int) Attr { return attr("tabindex", i) }
