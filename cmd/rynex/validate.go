package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/razen-core/rynex/internal/config"
	"github.com/razen-core/rynex/internal/errors"
	"github.com/razen-core/rynex/internal/routescan"
	"github.com/razen-core/rynex/pkg/form"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the project for problems",
		Long: `Validate the project configuration, layout, and routes.

Checks:
  • rynex.json parses and passes validation
  • The source directory and entry point exist
  • Route files produce no conflicting patterns

Examples:
  rynex validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}

	return cmd
}

func runValidate() error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	findings := 0
	fail := func(format string, args ...any) {
		errorMsg(format, args...)
		findings++
	}

	fmt.Println("  Validating project...")
	fmt.Println()

	// Configuration values.
	if err := cfg.Validate(); err != nil {
		fail("config: %v", err)
	} else {
		success("rynex.json is valid")
	}

	fieldErrs := form.ValidateFields(map[string]any{
		"dev.port":     cfg.Dev.Port,
		"dev.host":     cfg.Dev.Host,
		"paths.source": cfg.Paths.Source,
		"build.output": cfg.Build.Output,
	}, form.Fields{
		"dev.port":     form.Rules(form.Range(1, 65535, "out of range")),
		"dev.host":     form.Rules(form.Required("is empty")),
		"paths.source": form.Rules(form.Required("is empty")),
		"build.output": form.Rules(form.Required("is empty")),
	})
	for _, fe := range fieldErrs {
		fail("config: %s", fe.Error())
	}

	// Source layout.
	if _, err := os.Stat(cfg.SourcePath()); os.IsNotExist(err) {
		fail("source directory %s does not exist", cfg.Paths.Source)
	} else {
		entry := filepath.Join(cfg.SourcePath(), "main.go")
		if _, err := os.Stat(entry); os.IsNotExist(err) {
			rxErr := errors.New("RX501").
				WithSuggestion("Create " + filepath.Join(cfg.Paths.Source, "main.go"))
			fail("%v", rxErr)
		} else {
			success("Entry point found")
		}
	}

	// Routes.
	routes, err := routescan.NewScanner(cfg.RoutesPath()).Scan()
	if err != nil {
		fail("routes: %v", err)
	} else {
		success("%d routes, no conflicts", len(routes))
	}

	fmt.Println()
	if findings > 0 {
		return errors.New("RX500").
			WithDetail(fmt.Sprintf("%d checks failed", findings))
	}
	success("Project is valid")
	return nil
}
