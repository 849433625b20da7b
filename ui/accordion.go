package ui

import (
	"github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/reactive"
)

// AccordionOption configures an Accordion component.
type AccordionOption func(*accordionConfig)

type accordionConfig struct {
	openItems []string
	onToggle  func(value string, open bool)
	items     []AccordionItem
	className string
}

// AccordionItem represents an accordion section.
type AccordionItem struct {
	Value   string
	Trigger string
	Content *el.VNode
}

// AccordionOpenItems sets the currently open items.
func AccordionOpenItems(items ...string) AccordionOption {
	return func(c *accordionConfig) {
		c.openItems = items
	}
}

// AccordionOnToggle sets the toggle handler.
func AccordionOnToggle(handler func(value string, open bool)) AccordionOption {
	return func(c *accordionConfig) {
		c.onToggle = handler
	}
}

// AccordionBind wires the open set to a reactive field holding []string.
// Toggling an item writes the updated slice back, one open item when
// multiple is false.
func AccordionBind(state *reactive.Reactive, field string, multiple bool) AccordionOption {
	return func(c *accordionConfig) {
		if open, ok := state.Get(field).([]string); ok {
			c.openItems = open
		}
		c.onToggle = func(value string, open bool) {
			current, _ := state.Peek(field).([]string)
			var next []string
			if multiple {
				for _, v := range current {
					if v != value {
						next = append(next, v)
					}
				}
			}
			if open {
				next = append(next, value)
			}
			state.Set(field, next)
		}
	}
}

// AccordionItems sets the accordion items.
func AccordionItems(items ...AccordionItem) AccordionOption {
	return func(c *accordionConfig) {
		c.items = items
	}
}

// AccordionClass adds additional CSS classes.
func AccordionClass(className string) AccordionOption {
	return func(c *accordionConfig) {
		c.className = className
	}
}

// Accordion renders collapsible sections; only open items render content.
func Accordion(opts ...AccordionOption) *el.VNode {
	var cfg accordionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	openSet := make(map[string]bool, len(cfg.openItems))
	for _, item := range cfg.openItems {
		openSet[item] = true
	}

	container := []any{
		el.Class(el.CN("rx-accordion", cfg.className)),
	}

	for _, item := range cfg.items {
		item := item
		isOpen := openSet[item.Value]

		triggerAttrs := []any{
			el.Type("button"),
			el.Class("rx-accordion__trigger"),
			el.AriaExpanded(isOpen),
			el.Data("state", stateAttr(isOpen)),
		}
		if cfg.onToggle != nil {
			triggerAttrs = append(triggerAttrs, el.OnClick(func() {
				cfg.onToggle(item.Value, !isOpen)
			}))
		}
		triggerAttrs = append(triggerAttrs, el.Text(item.Trigger))

		header := el.H3(
			el.Class("rx-accordion__header"),
			el.El("button", triggerAttrs...),
		)

		var content *el.VNode
		if isOpen && item.Content != nil {
			content = el.Div(
				el.Class("rx-accordion__content"),
				el.Data("state", "open"),
				item.Content,
			)
		}

		container = append(container, el.Div(
			el.Class("rx-accordion__item"),
			el.Data("state", stateAttr(isOpen)),
			header,
			content,
		))
	}

	return el.Div(container...)
}
