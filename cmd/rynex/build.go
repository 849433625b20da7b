package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/razen-core/rynex/internal/build"
	"github.com/razen-core/rynex/internal/config"
)

func buildCmd() *cobra.Command {
	var (
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build for production",
		Long: `Build the application for production deployment.

This command:
  • Compiles the Go binary with optimizations
  • Copies static assets with content-hashed names
  • Generates an asset manifest

Examples:
  rynex build
  rynex build --output=dist
  rynex build --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from rynex.json)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuild(output string, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if output != "" {
		cfg.Build.Output = output
	}

	fmt.Println("  Building for production...")
	fmt.Println()

	builder := build.New(cfg, build.Options{
		OnProgress: func(step string) {
			info(step)
		},
	})

	if clean {
		info("Cleaning output directory...")
		builder.Clean()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	success("Build complete in %s", result.Duration.Round(1000000))
	fmt.Println()
	fmt.Println("  Output:")
	fmt.Printf("    %s/\n", cfg.Build.Output)
	fmt.Printf("    ├── app             # Go binary\n")
	fmt.Printf("    ├── assets/         # %d files (%s)\n", result.AssetCount, formatBytes(result.AssetBytes))
	fmt.Printf("    └── manifest.json\n")
	fmt.Println()
	fmt.Println("  To run:")
	fmt.Printf("    ./%s/app\n", cfg.Build.Output)
	fmt.Println()

	return nil
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
