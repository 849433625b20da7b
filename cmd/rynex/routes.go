package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/razen-core/rynex/internal/config"
	"github.com/razen-core/rynex/internal/routescan"
)

func routesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the project's routes",
		Long: `Scan the routes directory and list the derived URL patterns.

Route files map to patterns by path:
  index.go          →  /
  about.go          →  /about
  users/[id].go     →  /users/:id
  docs/[...rest].go →  /docs/*rest

Examples:
  rynex routes
  rynex routes --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func runRoutes(jsonOut bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	routes, err := routescan.NewScanner(cfg.RoutesPath()).Scan()
	if err != nil {
		return err
	}

	if jsonOut {
		type routeJSON struct {
			Pattern  string   `json:"pattern"`
			File     string   `json:"file"`
			Params   []string `json:"params,omitempty"`
			CatchAll bool     `json:"catchAll,omitempty"`
			Layout   bool     `json:"layout,omitempty"`
		}
		out := make([]routeJSON, 0, len(routes))
		for _, route := range routes {
			out = append(out, routeJSON{
				Pattern:  route.Pattern,
				File:     route.FilePath,
				Params:   route.Params,
				CatchAll: route.IsCatchAll,
				Layout:   route.IsLayout,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(routes) == 0 {
		warn("No routes found in %s", cfg.Paths.Routes)
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-32s %s\n", "PATTERN", "FILE")
	for _, route := range routes {
		pattern := route.Pattern
		if route.IsLayout {
			pattern += "  (layout)"
		}
		fmt.Printf("  %-32s %s\n", pattern, filepath.Join(cfg.Paths.Routes, route.FilePath))
	}
	fmt.Println()
	success("%d routes", len(routes))

	return nil
}
