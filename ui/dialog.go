package ui

import (
	"github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/reactive"
)

// DialogOption configures a Dialog component.
type DialogOption func(*dialogConfig)

type dialogConfig struct {
	open            bool
	onOpenChange    func(bool)
	title           string
	description     string
	content         *el.VNode
	footer          *el.VNode
	showCloseButton bool
	className       string
}

func defaultDialogConfig() dialogConfig {
	return dialogConfig{
		showCloseButton: true,
	}
}

// DialogOpen sets the open state.
func DialogOpen(open bool) DialogOption {
	return func(c *dialogConfig) {
		c.open = open
	}
}

// DialogOnOpenChange sets the open change handler.
func DialogOnOpenChange(handler func(bool)) DialogOption {
	return func(c *dialogConfig) {
		c.onOpenChange = handler
	}
}

// DialogBind wires the open state to a reactive bool field.
func DialogBind(state *reactive.Reactive, field string) DialogOption {
	return func(c *dialogConfig) {
		if open, ok := state.Get(field).(bool); ok {
			c.open = open
		}
		c.onOpenChange = func(open bool) {
			state.Set(field, open)
		}
	}
}

// DialogTitle sets the dialog title.
func DialogTitle(title string) DialogOption {
	return func(c *dialogConfig) {
		c.title = title
	}
}

// DialogDescription sets the dialog description.
func DialogDescription(description string) DialogOption {
	return func(c *dialogConfig) {
		c.description = description
	}
}

// DialogContent sets the dialog body.
func DialogContent(content *el.VNode) DialogOption {
	return func(c *dialogConfig) {
		c.content = content
	}
}

// DialogFooter sets the dialog footer.
func DialogFooter(footer *el.VNode) DialogOption {
	return func(c *dialogConfig) {
		c.footer = footer
	}
}

// DialogHideClose removes the close button.
func DialogHideClose() DialogOption {
	return func(c *dialogConfig) {
		c.showCloseButton = false
	}
}

// DialogClass adds additional CSS classes.
func DialogClass(className string) DialogOption {
	return func(c *dialogConfig) {
		c.className = className
	}
}

// Dialog renders a modal dialog. A closed dialog renders nothing.
func Dialog(opts ...DialogOption) *el.VNode {
	cfg := defaultDialogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.open {
		return el.Nothing()
	}

	closeDialog := func() {
		if cfg.onOpenChange != nil {
			cfg.onOpenChange(false)
		}
	}

	panel := []any{
		el.Role("dialog"),
		el.Custom("aria-modal", "true"),
		el.Class(el.CN("rx-dialog__panel", cfg.className)),
		el.Data("state", "open"),
	}

	if cfg.title != "" {
		panel = append(panel, el.H2(el.Class("rx-dialog__title"), el.Text(cfg.title)))
	}
	if cfg.description != "" {
		panel = append(panel, el.P(el.Class("rx-dialog__description"), el.Text(cfg.description)))
	}
	if cfg.content != nil {
		panel = append(panel, el.Div(el.Class("rx-dialog__body"), cfg.content))
	}
	if cfg.footer != nil {
		panel = append(panel, el.Div(el.Class("rx-dialog__footer"), cfg.footer))
	}
	if cfg.showCloseButton {
		panel = append(panel, el.El("button",
			el.Type("button"),
			el.Class("rx-dialog__close"),
			el.AriaLabel("Close"),
			el.OnClick(closeDialog),
			el.Text("×"),
		))
	}

	return el.Div(
		el.Class("rx-dialog"),
		el.Div(
			el.Class("rx-dialog__overlay"),
			el.Data("state", "open"),
			el.OnClick(closeDialog),
		),
		el.Div(panel...),
	)
}
