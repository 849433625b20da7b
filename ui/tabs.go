package ui

import (
	"github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/reactive"
)

// TabsOption configures a Tabs component.
type TabsOption func(*tabsConfig)

type tabsConfig struct {
	value     string
	onChange  func(string)
	tabs      []TabItem
	className string
}

// TabItem represents a tab with its content.
type TabItem struct {
	Value    string
	Label    string
	Disabled bool
	Content  *el.VNode
}

// TabsValue sets the active tab value.
func TabsValue(value string) TabsOption {
	return func(c *tabsConfig) {
		c.value = value
	}
}

// TabsOnChange sets the tab change handler.
func TabsOnChange(handler func(string)) TabsOption {
	return func(c *tabsConfig) {
		c.onChange = handler
	}
}

// TabsBind wires the active tab to a reactive field: the current value
// is read from the field and tab clicks write back to it.
func TabsBind(state *reactive.Reactive, field string) TabsOption {
	return func(c *tabsConfig) {
		if v, ok := state.Get(field).(string); ok {
			c.value = v
		}
		c.onChange = func(value string) {
			state.Set(field, value)
		}
	}
}

// TabsItems sets the tab items.
func TabsItems(tabs ...TabItem) TabsOption {
	return func(c *tabsConfig) {
		c.tabs = tabs
	}
}

// TabsClass adds additional CSS classes.
func TabsClass(className string) TabsOption {
	return func(c *tabsConfig) {
		c.className = className
	}
}

// Tabs renders a tab list with the active tab's panel.
func Tabs(opts ...TabsOption) *el.VNode {
	var cfg tabsConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Default to the first tab when no value is set.
	activeValue := cfg.value
	if activeValue == "" && len(cfg.tabs) > 0 {
		activeValue = cfg.tabs[0].Value
	}

	triggers := []any{
		el.Class("rx-tabs__list"),
		el.Role("tablist"),
	}

	for _, tab := range cfg.tabs {
		tab := tab
		isActive := tab.Value == activeValue

		attrs := []any{
			el.Role("tab"),
			el.Type("button"),
			el.Class(el.CN("rx-tabs__trigger", activeClass(isActive, "rx-tabs__trigger--active"))),
			el.Data("state", tabState(isActive)),
			el.AriaSelected(isActive),
		}

		if tab.Disabled {
			attrs = append(attrs, el.Disabled(true))
		} else if cfg.onChange != nil {
			attrs = append(attrs, el.OnClick(func() {
				cfg.onChange(tab.Value)
			}))
		}

		attrs = append(attrs, el.Text(tab.Label))
		triggers = append(triggers, el.El("button", attrs...))
	}

	tabList := el.Div(triggers...)

	var activePanel *el.VNode
	for _, tab := range cfg.tabs {
		if tab.Value == activeValue && tab.Content != nil {
			activePanel = el.Div(
				el.Role("tabpanel"),
				el.Class("rx-tabs__panel"),
				el.Data("state", "active"),
				tab.Content,
			)
			break
		}
	}

	return el.Div(
		el.Class(el.CN("rx-tabs", cfg.className)),
		tabList,
		activePanel,
	)
}

func tabState(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func activeClass(active bool, name string) string {
	if active {
		return name
	}
	return ""
}
