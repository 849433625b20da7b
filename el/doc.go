// Package el provides the declarative UI DSL for Rynex.
//
// It re-exports HTML element constructors, attribute helpers, event
// helpers, and common VDOM utilities from
// github.com/razen-core/rynex/pkg/vdom.
//
// Typical usage:
//
//	import (
//	    "github.com/razen-core/rynex/pkg/reactive"
//	    . "github.com/razen-core/rynex/el"
//	)
//
// This keeps the DSL in a dedicated package while the reactive APIs live
// in pkg/reactive.
package el
