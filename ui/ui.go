package ui

// Variant selects a component's visual treatment. Styling ships in the
// application's stylesheet; components only emit the class hooks.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantPrimary     Variant = "primary"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
)

// Size selects a component's size class hook.
type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

// stateAttr is the data-state value for open/closed widgets.
func stateAttr(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
