package ui

import (
	"github.com/razen-core/rynex/el"
)

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   Variant
	size      Size
	disabled  bool
	loading   bool
	className string
	children  []any
	onClick   func()
	attrs     map[string]string
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant: VariantDefault,
		size:    SizeMd,
	}
}

// WithVariant sets the button variant.
func WithVariant(v Variant) ButtonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

// Primary sets the button to primary variant.
func Primary() ButtonOption {
	return WithVariant(VariantPrimary)
}

// Secondary sets the button to secondary variant.
func Secondary() ButtonOption {
	return WithVariant(VariantSecondary)
}

// Destructive sets the button to destructive variant.
func Destructive() ButtonOption {
	return WithVariant(VariantDestructive)
}

// Outline sets the button to outline variant.
func Outline() ButtonOption {
	return WithVariant(VariantOutline)
}

// Ghost sets the button to ghost variant.
func Ghost() ButtonOption {
	return WithVariant(VariantGhost)
}

// WithSize sets the button size.
func WithSize(s Size) ButtonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// WithDisabled sets the disabled state.
func WithDisabled(d bool) ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = d
	}
}

// WithLoading marks the button as busy; it renders disabled with a
// data-loading attribute for the stylesheet to pick up.
func WithLoading(l bool) ButtonOption {
	return func(c *buttonConfig) {
		c.loading = l
	}
}

// WithOnClick sets the click handler.
func WithOnClick(handler func()) ButtonOption {
	return func(c *buttonConfig) {
		c.onClick = handler
	}
}

// WithChildren sets the button children.
func WithChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.children = children
	}
}

// WithLabel sets a plain-text label.
func WithLabel(label string) ButtonOption {
	return WithChildren(el.Text(label))
}

// WithClass adds additional CSS classes.
func WithClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = className
	}
}

// WithAttr adds a custom data attribute.
func WithAttr(name, value string) ButtonOption {
	return func(c *buttonConfig) {
		if c.attrs == nil {
			c.attrs = make(map[string]string)
		}
		c.attrs[name] = value
	}
}

// Button renders a button element with the configured options.
func Button(opts ...ButtonOption) *el.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := el.CN(
		"rx-button",
		"rx-button--"+string(cfg.variant),
		"rx-button--"+string(cfg.size),
		cfg.className,
	)

	attrs := []any{
		el.Type("button"),
		el.Class(classes),
	}

	if cfg.disabled || cfg.loading {
		attrs = append(attrs, el.Disabled(true))
	}
	if cfg.loading {
		attrs = append(attrs, el.Data("loading", "true"))
	}
	if cfg.onClick != nil && !cfg.disabled && !cfg.loading {
		attrs = append(attrs, el.OnClick(cfg.onClick))
	}
	for name, value := range cfg.attrs {
		attrs = append(attrs, el.Data(name, value))
	}

	attrs = append(attrs, cfg.children...)

	return el.El("button", attrs...)
}
