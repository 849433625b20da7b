package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/razen-core/rynex/internal/config"
	"github.com/razen-core/rynex/internal/dev"
)

func devCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with hot reload.

The dev server watches for file changes, recompiles, and
automatically refreshes connected browsers.

Features:
  • Hot reload on file change
  • Error overlay in browser
  • CSS updates without a full page reload
  • Prometheus metrics at /_rynex/metrics

Examples:
  rynex dev
  rynex dev --port=8080
  rynex dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host, openBrowser)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from rynex.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from rynex.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")

	return cmd
}

func runDev(port int, host string, openBrowser bool) error {
	if _, err := exec.LookPath("go"); err != nil {
		errorMsg("Go is not installed or not in PATH")
		info("Install Go from https://go.dev/dl/")
		return err
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}
	if openBrowser {
		cfg.Dev.OpenBrowser = true
	}

	printBanner()
	fmt.Println("  dev")
	fmt.Println()

	server := dev.NewServer(dev.ServerOptions{
		Config: cfg,
		OnBuildComplete: func(result dev.CompileResult) {
			if result.Success {
				success("Built in %s", result.Duration.Round(1000000))
			}
		},
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
		server.Stop()
	}()

	if cfg.Dev.OpenBrowser {
		go openURL(cfg.DevURL())
	}

	info("Serving at %s", cfg.DevURL())
	return server.Start(ctx)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
