// Package ui provides prebuilt components built on el and pkg/reactive.
//
// Components are plain functions configured with functional options and
// return a *VNode tree. They emit rx-* class hooks and data-state
// attributes; visual styling lives in the application's stylesheet.
//
//	state := reactive.NewReactive(map[string]any{"tab": "general"})
//
//	ui.Tabs(
//	    ui.TabsBind(state, "tab"),
//	    ui.TabsItems(
//	        ui.TabItem{Value: "general", Label: "General", Content: generalPanel()},
//	        ui.TabItem{Value: "advanced", Label: "Advanced", Content: advancedPanel()},
//	    ),
//	)
//
// The Bind options connect a component's state to a reactive field, so a
// re-render after reactive.Settle reflects user interaction.
package ui
