package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rxerrors "github.com/razen-core/rynex/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦═╗╦ ╦╔╗╔╔═╗═╗ ╦
  ╠╦╝╚╦╝║║║║╣ ╔╩╦╝
  ╩╚═ ╩ ╝╚╝╚═╝╩ ╚═
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "rynex",
		Short: "Build reactive web applications in Go",
		Long: `Rynex is a reactive UI framework for Go.

Build interactive web applications with fine-grained reactive
state, a declarative element API, and server-side rendering:

  • Reactive containers with automatic dependency tracking
  • Declarative HTML building with the el package
  • File-based routing
  • Hot reload development server
  • Production builds with hashed assets`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		createCmd(),
		devCmd(),
		buildCmd(),
		routesCmd(),
		validateCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var rxErr *rxerrors.RynexError
		if errors.As(err, &rxErr) {
			fmt.Fprintln(os.Stderr, rxErr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Rynex ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
